package scoring

import (
	"sort"

	"genequest/backend/engine"
	"genequest/backend/store"
)

// ComputeTotal recomputes the total score from its components. It must equal
// the stored TotalScore; tests use it as a consistency oracle.
func ComputeTotal(p *engine.Progress) int {
	total := p.PretestScore*10 + p.PosttestScore*10
	for _, score := range p.LessonScores {
		total += score
	}
	return total
}

// Sort orders leaderboard rows in place: total score descending, ties broken
// by earlier completion (unfinished runs last), then earlier start, then
// user id ascending for a stable output.
func Sort(rows []store.LeaderboardRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return before(rows[i], rows[j])
	})
}

func before(a, b store.LeaderboardRow) bool {
	if a.Progress.TotalScore != b.Progress.TotalScore {
		return a.Progress.TotalScore > b.Progress.TotalScore
	}
	switch {
	case a.Progress.CompletedAt != nil && b.Progress.CompletedAt != nil:
		if !a.Progress.CompletedAt.Equal(*b.Progress.CompletedAt) {
			return a.Progress.CompletedAt.Before(*b.Progress.CompletedAt)
		}
	case a.Progress.CompletedAt != nil:
		return true
	case b.Progress.CompletedAt != nil:
		return false
	}
	if !a.Progress.StartedAt.Equal(b.Progress.StartedAt) {
		return a.Progress.StartedAt.Before(b.Progress.StartedAt)
	}
	return a.Progress.UserID < b.Progress.UserID
}

// Rank returns the user's 1-based leaderboard position, or 0 when the user
// has no row. The input is sorted in place.
func Rank(userID string, rows []store.LeaderboardRow) int {
	Sort(rows)
	for i, row := range rows {
		if row.Progress.UserID == userID {
			return i + 1
		}
	}
	return 0
}
