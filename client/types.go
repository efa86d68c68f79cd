package client

import "github.com/hemadri138/veritas-project/internal/model"

// Request and response types shared with the server.
type (
	User                  = model.User
	RegisterRequest       = model.RegisterRequest
	LoginRequest          = model.LoginRequest
	Claim                 = model.Claim
	ClaimStatus           = model.ClaimStatus
	ClaimList             = model.ClaimList
	ClaimDetail           = model.ClaimDetail
	CreateClaimRequest    = model.CreateClaimRequest
	ListClaimsParams      = model.ListClaimsParams
	Pagination            = model.Pagination
	VoteTally             = model.VoteTally
	Evidence              = model.Evidence
	CreateEvidenceRequest = model.CreateEvidenceRequest
)
