package repository

import (
	"context"

	"github.com/hemadri138/veritas-project/internal/db"
	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/pkg/errors"
)

// VoteRepo aggregates votes. Cast is the insertion contract for whatever
// collaborator records votes; nothing in the HTTP surface calls it.
type VoteRepo struct {
	DB db.Querier
}

func NewVoteRepo(q db.Querier) *VoteRepo {
	return &VoteRepo{DB: q}
}

func (r *VoteRepo) Cast(ctx context.Context, vote model.Vote) (model.Vote, error) {
	if _, err := model.ParseVoteType(string(vote.VoteType)); err != nil {
		return model.Vote{}, errors.Wrap(ErrInvalidVoteType, err.Error())
	}

	stmt := `
        INSERT INTO votes (claim_id, user_id, vote_type)
        VALUES ($1, $2, $3)
        RETURNING vote_id, created_at
    `
	err := r.DB.QueryRow(ctx, stmt, vote.ClaimID, vote.UserID, vote.VoteType).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		return model.Vote{}, errors.Wrap(err, "casting vote")
	}
	return vote, nil
}

// Tally counts a claim's votes per category.
func (r *VoteRepo) Tally(ctx context.Context, claimID int64) (model.VoteTally, error) {
	stmt := `
        SELECT vote_type, COUNT(*)
        FROM votes
        WHERE claim_id = $1
        GROUP BY vote_type
    `
	rows, err := r.DB.Query(ctx, stmt, claimID)
	if err != nil {
		return model.VoteTally{}, errors.Wrap(err, "querying vote counts")
	}
	defer rows.Close()

	var counts []model.VoteCount
	for rows.Next() {
		var c model.VoteCount
		if err := rows.Scan(&c.VoteType, &c.Count); err != nil {
			return model.VoteTally{}, errors.Wrap(err, "scanning vote count")
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return model.VoteTally{}, errors.Wrap(err, "iterating vote counts")
	}

	return model.TallyVotes(counts), nil
}
