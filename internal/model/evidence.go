package model

import (
	"time"
)

type Evidence struct {
	ID                  int64     `json:"evidence_id"`
	ClaimID             int64     `json:"claim_id"`
	UserID              int64     `json:"user_id"`
	Link                *string   `json:"evidence_link"`
	Comment             *string   `json:"comment"`
	SubmittedByUsername string    `json:"submitted_by_username"`
	SubmittedAt         time.Time `json:"submitted_at"`
}

// CreateEvidenceRequest needs a link, a comment, or both.
type CreateEvidenceRequest struct {
	Link    string `json:"evidence_link" validate:"omitempty,weburl,max=2048"`
	Comment string `json:"comment" validate:"required_without=Link,max=5000"`
}
