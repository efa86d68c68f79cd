package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTallyVotes(t *testing.T) {
	testCases := []struct {
		name   string
		counts []VoteCount
		want   VoteTally
	}{
		{
			name: "no votes",
			want: VoteTally{},
		},
		{
			name:   "only true votes",
			counts: []VoteCount{{VoteType: VoteTrue, Count: 4}},
			want:   VoteTally{True: 4},
		},
		{
			name: "all categories",
			counts: []VoteCount{
				{VoteType: VoteMisleading, Count: 2},
				{VoteType: VoteTrue, Count: 1},
				{VoteType: VoteFalse, Count: 9},
			},
			want: VoteTally{True: 1, False: 9, Misleading: 2},
		},
		{
			name: "unknown category ignored",
			counts: []VoteCount{
				{VoteType: "satire", Count: 3},
				{VoteType: VoteFalse, Count: 1},
			},
			want: VoteTally{False: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := TallyVotes(tc.counts)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got.True, int64(0))
			assert.GreaterOrEqual(t, got.False, int64(0))
			assert.GreaterOrEqual(t, got.Misleading, int64(0))
		})
	}
}

func TestVoteTallyTotal(t *testing.T) {
	tally := TallyVotes([]VoteCount{
		{VoteType: VoteTrue, Count: 3},
		{VoteType: VoteMisleading, Count: 5},
	})
	assert.Equal(t, int64(8), tally.Total())
}

func TestParseVoteType(t *testing.T) {
	for _, s := range []string{"true", "false", "misleading"} {
		v, err := ParseVoteType(s)
		require.NoError(t, err)
		assert.Equal(t, VoteType(s), v)
	}

	_, err := ParseVoteType("TRUE")
	assert.Error(t, err)
	_, err = ParseVoteType("")
	assert.Error(t, err)
}
