package model

import (
	"fmt"
	"time"
)

type VoteType string

const (
	VoteTrue       VoteType = "true"
	VoteFalse      VoteType = "false"
	VoteMisleading VoteType = "misleading"
)

func ParseVoteType(s string) (VoteType, error) {
	switch v := VoteType(s); v {
	case VoteTrue, VoteFalse, VoteMisleading:
		return v, nil
	default:
		return "", fmt.Errorf("unknown vote type %q", s)
	}
}

type Vote struct {
	ID        int64     `json:"vote_id"`
	ClaimID   int64     `json:"claim_id"`
	UserID    int64     `json:"user_id"`
	VoteType  VoteType  `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteCount is one row of a per-category GROUP BY.
type VoteCount struct {
	VoteType VoteType
	Count    int64
}

// VoteTally always carries every category, zero when nobody voted that way.
type VoteTally struct {
	True       int64 `json:"true"`
	False      int64 `json:"false"`
	Misleading int64 `json:"misleading"`
}

// TallyVotes folds sparse grouped counts into the fixed three-category shape.
// Categories outside the enum are dropped.
func TallyVotes(counts []VoteCount) VoteTally {
	var tally VoteTally
	for _, c := range counts {
		if c.Count < 0 {
			continue
		}
		switch c.VoteType {
		case VoteTrue:
			tally.True += c.Count
		case VoteFalse:
			tally.False += c.Count
		case VoteMisleading:
			tally.Misleading += c.Count
		}
	}
	return tally
}

func (t VoteTally) Total() int64 {
	return t.True + t.False + t.Misleading
}
