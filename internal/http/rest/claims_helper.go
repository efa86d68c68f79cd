package rest

import (
	"context"
	"strings"

	"github.com/hemadri138/veritas-project/internal/model"
	"github.com/hemadri138/veritas-project/internal/repository"
	"github.com/hemadri138/veritas-project/util"
	"github.com/hemadri138/veritas-project/util/values"
	"github.com/pkg/errors"
)

var errEmptyEvidence = errors.New("evidence needs a link or a comment")

func (api *API) SubmitClaimHelper(ctx context.Context, author model.Identity, req model.CreateClaimRequest) (model.Claim, string, string, error) {
	if author.UserID == 0 {
		return model.Claim{}, values.NotAuthorised, "access denied", errTokenInvalid
	}

	req.SourceURL = strings.TrimSpace(req.SourceURL)
	req.Statement = strings.TrimSpace(req.Statement)
	if err := util.ValidateStruct(req); err != nil {
		return model.Claim{}, values.BadRequestBody, util.ValidationMessage(err), err
	}

	claim, err := api.Claims.Create(ctx, author, req)
	if err != nil {
		return model.Claim{}, values.Error, "Failed to create claim", err
	}
	return claim, values.Created, "Claim created successfully", nil
}

func (api *API) ListRecentClaimsHelper(ctx context.Context, params model.ListClaimsParams) (model.ClaimList, string, string, error) {
	total, err := api.Claims.Count(ctx)
	if err != nil {
		return model.ClaimList{}, values.Error, "Failed to count claims", err
	}

	claims, err := api.Claims.ListRecent(ctx, params.Limit, params.Offset)
	if err != nil {
		return model.ClaimList{}, values.Error, "Failed to fetch claims", err
	}
	if claims == nil {
		claims = []model.Claim{}
	}

	return model.ClaimList{
		Claims:     claims,
		Pagination: model.NewPagination(total, params.Limit, params.Offset),
	}, values.Success, "Claims fetched successfully", nil
}

// GetClaimDetailHelper merges the claim, its vote tally and its evidence.
// The three reads are independent and may observe different points in time.
func (api *API) GetClaimDetailHelper(ctx context.Context, claimID int64) (model.ClaimDetail, string, string, error) {
	claim, status, message, err := api.findClaim(ctx, claimID)
	if err != nil {
		return model.ClaimDetail{}, status, message, err
	}

	tally, err := api.Votes.Tally(ctx, claimID)
	if err != nil {
		return model.ClaimDetail{}, values.Error, "Failed to tally votes", err
	}

	evidence, err := api.Evidence.ListForClaim(ctx, claimID)
	if err != nil {
		return model.ClaimDetail{}, values.Error, "Failed to fetch evidence", err
	}
	if evidence == nil {
		evidence = []model.Evidence{}
	}

	return model.ClaimDetail{
		Claim:    claim,
		Votes:    tally,
		Evidence: evidence,
	}, values.Success, "Claim fetched successfully", nil
}

func (api *API) AddEvidenceHelper(ctx context.Context, author model.Identity, claimID int64, req model.CreateEvidenceRequest) (model.Evidence, string, string, error) {
	if author.UserID == 0 {
		return model.Evidence{}, values.NotAuthorised, "access denied", errTokenInvalid
	}

	req.Link = strings.TrimSpace(req.Link)
	req.Comment = strings.TrimSpace(req.Comment)
	if req.Link == "" && req.Comment == "" {
		return model.Evidence{}, values.BadRequestBody, "Evidence link or comment is required", errEmptyEvidence
	}
	if err := util.ValidateStruct(req); err != nil {
		return model.Evidence{}, values.BadRequestBody, util.ValidationMessage(err), err
	}

	if _, status, message, err := api.findClaim(ctx, claimID); err != nil {
		return model.Evidence{}, status, message, err
	}

	evidence, err := api.Evidence.Create(ctx, author, model.Evidence{
		ClaimID: claimID,
		Link:    util.StringPtr(req.Link),
		Comment: util.StringPtr(req.Comment),
	})
	if err != nil {
		return model.Evidence{}, values.Error, "Failed to add evidence", err
	}
	return evidence, values.Created, "Evidence added successfully", nil
}

func (api *API) ListEvidenceHelper(ctx context.Context, claimID int64) ([]model.Evidence, string, string, error) {
	if _, status, message, err := api.findClaim(ctx, claimID); err != nil {
		return nil, status, message, err
	}

	evidence, err := api.Evidence.ListForClaim(ctx, claimID)
	if err != nil {
		return nil, values.Error, "Failed to fetch evidence", err
	}
	if evidence == nil {
		evidence = []model.Evidence{}
	}
	return evidence, values.Success, "Evidence fetched successfully", nil
}

func (api *API) findClaim(ctx context.Context, claimID int64) (model.Claim, string, string, error) {
	if claimID <= 0 {
		return model.Claim{}, values.NotFound, "Claim not found", repository.ErrClaimNotFound
	}

	claim, err := api.Claims.GetByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return model.Claim{}, values.NotFound, "Claim not found", err
		}
		return model.Claim{}, values.Error, "Failed to fetch claim", err
	}
	return claim, values.Success, "", nil
}
