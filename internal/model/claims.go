package model

import (
	"time"
)

type ClaimStatus string

// Claims are created pending; no operation moves them to another status.
const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusVerified ClaimStatus = "verified"
	ClaimStatusDisputed ClaimStatus = "disputed"
)

type Claim struct {
	ID                  int64       `json:"claim_id"`
	SourceURL           string      `json:"source_url"`
	Statement           string      `json:"claim_statement"`
	Status              ClaimStatus `json:"status"`
	SubmittedByID       int64       `json:"submitted_by_id"`
	SubmittedByUsername string      `json:"submitted_by_username"`
	CreatedAt           time.Time   `json:"created_at"`
}

type CreateClaimRequest struct {
	SourceURL string `json:"source_url" validate:"notblank,max=2048"`
	Statement string `json:"claim_statement" validate:"notblank,max=5000"`
}

const (
	DefaultPageLimit  = 20
	DefaultPageOffset = 0
)

type ListClaimsParams struct {
	Limit  int `json:"limit" url:"limit,omitempty"`
	Offset int `json:"offset" url:"offset,omitempty"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

func NewPagination(total int64, limit, offset int) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset)+int64(limit) < total,
	}
}

type ClaimList struct {
	Claims     []Claim    `json:"claims"`
	Pagination Pagination `json:"pagination"`
}

type ClaimDetail struct {
	Claim    Claim      `json:"claim"`
	Votes    VoteTally  `json:"votes"`
	Evidence []Evidence `json:"evidence"`
}
