package repository

import (
	"context"

	"github.com/hemadri138/veritas-project/internal/db"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/pkg/errors"
)

type EvidenceRepo struct {
	DB db.Querier
}

func NewEvidenceRepo(q db.Querier) *EvidenceRepo {
	return &EvidenceRepo{DB: q}
}

func (r *EvidenceRepo) Create(ctx context.Context, author model.Identity, evidence model.Evidence) (model.Evidence, error) {
	stmt := `
        INSERT INTO evidence (claim_id, user_id, evidence_link, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING evidence_id, submitted_at
    `
	evidence.UserID = author.UserID
	err := r.DB.QueryRow(ctx, stmt, evidence.ClaimID, author.UserID, evidence.Link, evidence.Comment).Scan(
		&evidence.ID,
		&evidence.SubmittedAt,
	)
	if err != nil {
		return model.Evidence{}, errors.Wrap(err, "creating evidence")
	}
	evidence.SubmittedByUsername = author.Username
	return evidence, nil
}

// ListForClaim returns every evidence item of a claim, newest first.
func (r *EvidenceRepo) ListForClaim(ctx context.Context, claimID int64) ([]model.Evidence, error) {
	stmt := `
        SELECT e.evidence_id, e.claim_id, e.user_id, e.evidence_link, e.comment,
               u.username, e.submitted_at
        FROM evidence e
        JOIN users u ON e.user_id = u.user_id
        WHERE e.claim_id = $1
        ORDER BY e.submitted_at DESC, e.evidence_id DESC
    `
	rows, err := r.DB.Query(ctx, stmt, claimID)
	if err != nil {
		return nil, errors.Wrap(err, "querying evidence")
	}
	defer rows.Close()

	items := []model.Evidence{}
	for rows.Next() {
		var e model.Evidence
		err := rows.Scan(&e.ID, &e.ClaimID, &e.UserID, &e.Link, &e.Comment, &e.SubmittedByUsername, &e.SubmittedAt)
		if err != nil {
			return nil, errors.Wrap(err, "scanning evidence")
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating evidence")
	}
	return items, nil
}
