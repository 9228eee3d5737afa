package sejm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateVotingStats(t *testing.T) {
	testCases := []struct {
		sessions []votingSession
		expected VotingStats
	}{
		{
			sessions: []votingSession{
				{NumVotings: 10, NumVoted: 8, NumMissed: 2},
				{NumVotings: 5, NumVoted: 5, NumMissed: 0},
			},
			expected: VotingStats{TotalVotings: 15, Voted: 13, Missed: 2, PresencePct: 87},
		},
		{
			sessions: nil,
			expected: VotingStats{},
		},
		{
			// no division by zero when an MP never had a voting
			sessions: []votingSession{{NumVotings: 0, NumVoted: 0, NumMissed: 0}},
			expected: VotingStats{},
		},
		{
			sessions: []votingSession{{NumVotings: 3, NumVoted: 3}},
			expected: VotingStats{TotalVotings: 3, Voted: 3, PresencePct: 100},
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, aggregateVotingStats(test.sessions))
	}
}
