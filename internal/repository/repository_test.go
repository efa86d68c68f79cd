package repository

import (
	"context"
	"testing"
	"time"

	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestVoteRepoTally(t *testing.T) {
	ctx := context.Background()

	t.Run("sparse groups become a dense tally", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT vote_type, COUNT").
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"vote_type", "count"}).
				AddRow(model.VoteTrue, int64(3)))

		tally, err := NewVoteRepo(mock).Tally(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, model.VoteTally{True: 3, False: 0, Misleading: 0}, tally)
	})

	t.Run("no votes", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM votes").
			WithArgs(int64(8)).
			WillReturnRows(pgxmock.NewRows([]string{"vote_type", "count"}))

		tally, err := NewVoteRepo(mock).Tally(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, model.VoteTally{}, tally)
		assert.Zero(t, tally.Total())
	})

	t.Run("sum matches vote count", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("GROUP BY vote_type").
			WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"vote_type", "count"}).
				AddRow(model.VoteFalse, int64(2)).
				AddRow(model.VoteMisleading, int64(5)).
				AddRow(model.VoteTrue, int64(1)))

		tally, err := NewVoteRepo(mock).Tally(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(8), tally.Total())
	})

	t.Run("query failure", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM votes").
			WithArgs(int64(1)).
			WillReturnError(errors.New("connection reset"))

		_, err := NewVoteRepo(mock).Tally(ctx, 1)
		assert.Error(t, err)
	})
}

func TestVoteRepoCast(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("valid vote", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO votes").
			WithArgs(int64(3), int64(4), model.VoteMisleading).
			WillReturnRows(pgxmock.NewRows([]string{"vote_id", "created_at"}).AddRow(int64(11), now))

		vote, err := NewVoteRepo(mock).Cast(ctx, model.Vote{ClaimID: 3, UserID: 4, VoteType: model.VoteMisleading})
		require.NoError(t, err)
		assert.Equal(t, int64(11), vote.ID)
		assert.Equal(t, now, vote.CreatedAt)
	})

	t.Run("unknown category never reaches the database", func(t *testing.T) {
		mock := newMock(t)

		_, err := NewVoteRepo(mock).Cast(ctx, model.Vote{ClaimID: 3, UserID: 4, VoteType: "satire"})
		assert.ErrorIs(t, err, ErrInvalidVoteType)
	})
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("exists", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice", "alice@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		exists, err := NewUserRepo(mock).Exists(ctx, "alice", "alice@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("create lowercases email", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(1), now))

		user, err := NewUserRepo(mock).Create(ctx, model.User{Username: "alice", Email: "Alice@Example.com", PasswordHash: "hash"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, now, user.CreatedAt)
	})

	t.Run("create unique violation", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		_, err := NewUserRepo(mock).Create(ctx, model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("register commits", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice", "alice@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(3), now))
		mock.ExpectCommit()

		user, err := NewUserRepo(mock).Register(ctx, model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("register taken rolls back", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice", "alice@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := NewUserRepo(mock).Register(ctx, model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("register unique violation rolls back", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("bob", "bob@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("bob", "bob@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		_, err := NewUserRepo(mock).Register(ctx, model.User{Username: "bob", Email: "bob@example.com", PasswordHash: "hash"})
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("get by username", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE username").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "username", "email", "password_hash", "created_at"}).
				AddRow(int64(1), "alice", "alice@example.com", "hash", now))

		user, err := NewUserRepo(mock).GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, model.Identity{UserID: 1, Username: "alice"}, user.Identity())
	})

	t.Run("get by username missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE username").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		_, err := NewUserRepo(mock).GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("get by id missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE user_id").
			WithArgs(int64(42)).
			WillReturnError(pgx.ErrNoRows)

		_, err := NewUserRepo(mock).GetByID(ctx, 42)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestClaimRepo(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	claimCols := []string{"claim_id", "source_url", "claim_statement", "status", "submitted_by", "username", "created_at"}

	t.Run("create is pending", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO claims").
			WithArgs(int64(5), "https://example.com/a", "The moon is cheese", model.ClaimStatusPending).
			WillReturnRows(pgxmock.NewRows([]string{"claim_id", "source_url", "claim_statement", "status", "submitted_by", "created_at"}).
				AddRow(int64(1), "https://example.com/a", "The moon is cheese", model.ClaimStatusPending, int64(5), now))

		claim, err := NewClaimRepo(mock).Create(ctx,
			model.Identity{UserID: 5, Username: "bob"},
			model.CreateClaimRequest{SourceURL: "https://example.com/a", Statement: "The moon is cheese"})
		require.NoError(t, err)
		assert.Equal(t, model.ClaimStatusPending, claim.Status)
		assert.Equal(t, "bob", claim.SubmittedByUsername)
	})

	t.Run("list recent", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("ORDER BY c.created_at DESC").
			WithArgs(20, 0).
			WillReturnRows(pgxmock.NewRows(claimCols).
				AddRow(int64(2), "https://b.example", "newer", model.ClaimStatusPending, int64(1), "alice", now).
				AddRow(int64(1), "https://a.example", "older", model.ClaimStatusPending, int64(1), "alice", now.Add(-time.Hour)))

		claims, err := NewClaimRepo(mock).ListRecent(ctx, 20, 0)
		require.NoError(t, err)
		require.Len(t, claims, 2)
		assert.Equal(t, int64(2), claims[0].ID)
		assert.Equal(t, "alice", claims[1].SubmittedByUsername)
	})

	t.Run("list beyond the end is empty not nil", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM claims c").
			WithArgs(20, 100).
			WillReturnRows(pgxmock.NewRows(claimCols))

		claims, err := NewClaimRepo(mock).ListRecent(ctx, 20, 100)
		require.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Empty(t, claims)
	})

	t.Run("count", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(45)))

		total, err := NewClaimRepo(mock).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(45), total)
	})

	t.Run("get missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("WHERE c.claim_id").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		_, err := NewClaimRepo(mock).GetByID(ctx, 404)
		assert.ErrorIs(t, err, ErrClaimNotFound)
	})

	t.Run("get wraps other errors", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("WHERE c.claim_id").
			WithArgs(int64(1)).
			WillReturnError(errors.New("boom"))

		_, err := NewClaimRepo(mock).GetByID(ctx, 1)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrClaimNotFound)
		assert.Contains(t, err.Error(), "getting claim")
	})
}

func TestEvidenceRepo(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	link := "https://fact.example/check"
	comment := "Primary source disagrees"

	t.Run("create", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO evidence").
			WithArgs(int64(3), int64(9), &link, &comment).
			WillReturnRows(pgxmock.NewRows([]string{"evidence_id", "submitted_at"}).AddRow(int64(12), now))

		ev, err := NewEvidenceRepo(mock).Create(ctx,
			model.Identity{UserID: 9, Username: "carol"},
			model.Evidence{ClaimID: 3, Link: &link, Comment: &comment})
		require.NoError(t, err)
		assert.Equal(t, int64(12), ev.ID)
		assert.Equal(t, int64(9), ev.UserID)
		assert.Equal(t, "carol", ev.SubmittedByUsername)
	})

	t.Run("list for claim", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("ORDER BY e.submitted_at DESC").
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows([]string{"evidence_id", "claim_id", "user_id", "evidence_link", "comment", "username", "submitted_at"}).
				AddRow(int64(2), int64(3), int64(9), &link, &comment, "carol", now).
				AddRow(int64(1), int64(3), int64(8), &link, &comment, "dave", now.Add(-time.Minute)))

		items, err := NewEvidenceRepo(mock).ListForClaim(ctx, 3)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "carol", items[0].SubmittedByUsername)
		assert.True(t, items[0].SubmittedAt.After(items[1].SubmittedAt))
	})

	t.Run("list for claim without evidence", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM evidence e").
			WithArgs(int64(4)).
			WillReturnRows(pgxmock.NewRows([]string{"evidence_id", "claim_id", "user_id", "evidence_link", "comment", "username", "submitted_at"}))

		items, err := NewEvidenceRepo(mock).ListForClaim(ctx, 4)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
