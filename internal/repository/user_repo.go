package repository

import (
	"context"
	"strings"

	"github.com/hemadri138/veritas-project/internal/db"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// UserRepo is the credential store.
type UserRepo struct {
	DB db.Conn
}

func NewUserRepo(c db.Conn) *UserRepo {
	return &UserRepo{DB: c}
}

// Register checks availability and inserts in one transaction. A taken
// username or email is ErrDuplicateUser whether the check or the unique
// index catches it.
func (r *UserRepo) Register(ctx context.Context, user model.User) (model.User, error) {
	var created model.User
	err := db.RunInTx(ctx, r.DB, func(tx pgx.Tx) error {
		users := NewUserRepo(tx)

		exists, err := users.Exists(ctx, user.Username, user.Email)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateUser
		}

		created, err = users.Create(ctx, user)
		return err
	})
	if err != nil {
		return model.User{}, err
	}
	return created, nil
}

// Exists reports whether either the username or the email is already taken.
func (r *UserRepo) Exists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	stmt := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR LOWER(email) = LOWER($2))`

	err := r.DB.QueryRow(ctx, stmt, username, email).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "checking user existence")
	}
	return exists, nil
}

func (r *UserRepo) Create(ctx context.Context, user model.User) (model.User, error) {
	stmt := `
        INSERT INTO users (username, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING user_id, created_at
    `
	user.Email = strings.ToLower(user.Email)
	err := r.DB.QueryRow(ctx, stmt, user.Username, user.Email, user.PasswordHash).Scan(
		&user.ID,
		&user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, ErrDuplicateUser
		}
		return model.User{}, errors.Wrap(err, "creating user")
	}
	return user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	stmt := `SELECT user_id, username, email, password_hash, created_at FROM users WHERE username = $1`

	err := r.DB.QueryRow(ctx, stmt, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, errors.Wrap(err, "getting user by username")
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	stmt := `SELECT user_id, username, email, password_hash, created_at FROM users WHERE user_id = $1`

	err := r.DB.QueryRow(ctx, stmt, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, errors.Wrap(err, "getting user by id")
	}
	return user, nil
}
