package repository

import (
	"context"

	"github.com/hemadri138/veritas-project/internal/db"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type ClaimRepo struct {
	DB db.Querier
}

func NewClaimRepo(q db.Querier) *ClaimRepo {
	return &ClaimRepo{DB: q}
}

// Create inserts a pending claim and returns it joined with its author.
func (r *ClaimRepo) Create(ctx context.Context, author model.Identity, req model.CreateClaimRequest) (model.Claim, error) {
	stmt := `
        INSERT INTO claims (submitted_by, source_url, claim_statement, status)
        VALUES ($1, $2, $3, $4)
        RETURNING claim_id, source_url, claim_statement, status, submitted_by, created_at
    `
	var claim model.Claim
	err := r.DB.QueryRow(ctx, stmt, author.UserID, req.SourceURL, req.Statement, model.ClaimStatusPending).Scan(
		&claim.ID,
		&claim.SourceURL,
		&claim.Statement,
		&claim.Status,
		&claim.SubmittedByID,
		&claim.CreatedAt,
	)
	if err != nil {
		return model.Claim{}, errors.Wrap(err, "creating claim")
	}
	claim.SubmittedByUsername = author.Username
	return claim, nil
}

// ListRecent returns a page of claims, newest first.
func (r *ClaimRepo) ListRecent(ctx context.Context, limit, offset int) ([]model.Claim, error) {
	stmt := `
        SELECT c.claim_id, c.source_url, c.claim_statement, c.status,
               c.submitted_by, u.username, c.created_at
        FROM claims c
        JOIN users u ON c.submitted_by = u.user_id
        ORDER BY c.created_at DESC, c.claim_id DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.DB.Query(ctx, stmt, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "querying claims")
	}
	defer rows.Close()

	claims := []model.Claim{}
	for rows.Next() {
		var claim model.Claim
		err := rows.Scan(
			&claim.ID, &claim.SourceURL, &claim.Statement, &claim.Status,
			&claim.SubmittedByID, &claim.SubmittedByUsername, &claim.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scanning claim")
		}
		claims = append(claims, claim)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating claims")
	}
	return claims, nil
}

func (r *ClaimRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM claims`).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, "counting claims")
	}
	return total, nil
}

func (r *ClaimRepo) GetByID(ctx context.Context, id int64) (model.Claim, error) {
	stmt := `
        SELECT c.claim_id, c.source_url, c.claim_statement, c.status,
               c.submitted_by, u.username, c.created_at
        FROM claims c
        JOIN users u ON c.submitted_by = u.user_id
        WHERE c.claim_id = $1
    `
	var claim model.Claim
	err := r.DB.QueryRow(ctx, stmt, id).Scan(
		&claim.ID, &claim.SourceURL, &claim.Statement, &claim.Status,
		&claim.SubmittedByID, &claim.SubmittedByUsername, &claim.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Claim{}, ErrClaimNotFound
		}
		return model.Claim{}, errors.Wrap(err, "getting claim")
	}
	return claim, nil
}
