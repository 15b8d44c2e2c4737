package services

import (
	"sort"
	"time"
)

const (
	DefaultHotLimit = 4
	MaxHotLimit     = 50
)

// RankingCandidate is built per ranking call from a stored plan and its counters.
type RankingCandidate struct {
	ID        string
	CreatedAt *time.Time
	Likes     int64
	Favorites int64
}

func (c RankingCandidate) Score() int64 {
	return c.Likes + c.Favorites
}

// ClampHotLimit maps non-positive limits to DefaultHotLimit and caps at MaxHotLimit.
func ClampHotLimit(limit int) int {
	if limit <= 0 {
		limit = DefaultHotLimit
	}
	if limit > MaxHotLimit {
		return MaxHotLimit
	}
	return limit
}

// RankByPopularity orders by score descending, then by creation time descending
// with missing timestamps last, and keeps the first ClampHotLimit(limit). The
// input slice is not modified.
func RankByPopularity(candidates []RankingCandidate, limit int) []RankingCandidate {
	n := ClampHotLimit(limit)
	if len(candidates) == 0 {
		return []RankingCandidate{}
	}

	ranked := make([]RankingCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score() != b.Score() {
			return a.Score() > b.Score()
		}
		switch {
		case a.CreatedAt == nil:
			return false
		case b.CreatedAt == nil:
			return true
		default:
			return a.CreatedAt.After(*b.CreatedAt)
		}
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
