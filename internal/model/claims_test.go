package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name          string
		total         int64
		limit, offset int
		hasMore       bool
	}{
		{"first page of many", 45, 20, 0, true},
		{"exact last page", 40, 20, 20, false},
		{"partial last page", 45, 20, 40, false},
		{"beyond the end", 5, 20, 100, false},
		{"empty table", 0, 20, 0, false},
		{"one short of the end", 21, 20, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.total, tc.limit, tc.offset)
			assert.Equal(t, tc.hasMore, p.HasMore)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.offset, p.Offset)
		})
	}
}

func TestVoteTallyJSONShape(t *testing.T) {
	detail := ClaimDetail{Votes: TallyVotes([]VoteCount{{VoteType: VoteTrue, Count: 2}})}

	raw, err := json.Marshal(detail.Votes)
	require.NoError(t, err)
	assert.JSONEq(t, `{"true":2,"false":0,"misleading":0}`, string(raw))
}
