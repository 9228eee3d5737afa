package sejm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
)

// votingSession is the upstream per-session counter row.
type votingSession struct {
	NumVotings int `json:"numVotings"`
	NumVoted   int `json:"numVoted"`
	NumMissed  int `json:"numMissed"`
}

// VotingStats sums the per-session counters for one MP. Missing or
// malformed upstream data degrades to all-zero stats.
func (c *Client) VotingStats(ctx context.Context, id int) VotingStats {
	ctx, span := tracer.Start(ctx, "VotingStats")
	defer span.End()

	payload := c.getJSON(ctx, c.http, fmt.Sprintf("/MP/%d/votings/stats", id))
	if payload == nil {
		return VotingStats{}
	}

	var sessions []votingSession
	err := json.Unmarshal(payload, &sessions)
	if err != nil {
		slog.WarnContext(ctx, "voting stats have unexpected shape", "mp", id, "err", err)
		return VotingStats{}
	}
	return aggregateVotingStats(sessions)
}

func aggregateVotingStats(sessions []votingSession) VotingStats {
	var stats VotingStats
	for _, session := range sessions {
		stats.TotalVotings += session.NumVotings
		stats.Voted += session.NumVoted
		stats.Missed += session.NumMissed
	}
	if stats.TotalVotings > 0 {
		stats.PresencePct = int(math.Round(
			float64(stats.Voted) / float64(stats.TotalVotings) * 100,
		))
	}
	return stats
}
