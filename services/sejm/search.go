package sejm

import (
	"context"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

const minNameSimilarity = 0.82

// FindMPsByName matches MPs against an approximate name, best match
// first. Exact substrings always match; otherwise Jaro-Winkler
// similarity over the display name decides.
func (c *Client) FindMPsByName(ctx context.Context, query string) []MP {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type scored struct {
		mp    MP
		score float64
	}
	var matches []scored

	for _, mp := range c.MPs(ctx) {
		name := strings.ToLower(mp.FirstLastName)
		score := matchr.JaroWinkler(query, name, false)
		if strings.Contains(name, query) {
			score = 1
		}
		if score >= minNameSimilarity {
			matches = append(matches, scored{mp: mp, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]MP, len(matches))
	for i, match := range matches {
		result[i] = match.mp
	}
	return result
}
