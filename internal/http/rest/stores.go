package rest

import (
	"context"

	"github.com/hemadri138/veritas-project/internal/model"
)

type UserStore interface {
	Register(ctx context.Context, user model.User) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
}

type ClaimStore interface {
	Create(ctx context.Context, author model.Identity, req model.CreateClaimRequest) (model.Claim, error)
	ListRecent(ctx context.Context, limit, offset int) ([]model.Claim, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Claim, error)
}

type VoteTallier interface {
	Tally(ctx context.Context, claimID int64) (model.VoteTally, error)
}

type EvidenceStore interface {
	Create(ctx context.Context, author model.Identity, evidence model.Evidence) (model.Evidence, error)
	ListForClaim(ctx context.Context, claimID int64) ([]model.Evidence, error)
}
