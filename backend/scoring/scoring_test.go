package scoring

import (
	"testing"
	"time"

	"genequest/backend/engine"
	"genequest/backend/models"
	"genequest/backend/store"

	"github.com/stretchr/testify/assert"
)

func row(userID string, total int, completedAt *time.Time, startedAt time.Time) store.LeaderboardRow {
	return store.LeaderboardRow{
		User: models.User{ID: userID, Username: userID},
		Progress: engine.Progress{
			UserID:      userID,
			TotalScore:  total,
			CompletedAt: completedAt,
			StartedAt:   startedAt,
		},
	}
}

func TestComputeTotal(t *testing.T) {
	p := engine.NewProgress("u1")
	p.PretestScore = 12
	p.PosttestScore = 17
	p.LessonScores = map[int]int{1: 75, 2: 80, 3: 90}

	assert.Equal(t, 12*10+17*10+75+80+90, ComputeTotal(p))
	assert.Equal(t, 0, ComputeTotal(engine.NewProgress("u2")))
}

func TestSortOrdersByScoreDescending(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []store.LeaderboardRow{
		row("low", 100, nil, base),
		row("high", 500, nil, base),
		row("mid", 300, nil, base),
	}
	Sort(rows)

	assert.Equal(t, "high", rows[0].User.ID)
	assert.Equal(t, "mid", rows[1].User.ID)
	assert.Equal(t, "low", rows[2].User.ID)
}

func TestSortTieBreaks(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	early := base.Add(1 * time.Hour)
	late := base.Add(5 * time.Hour)

	rows := []store.LeaderboardRow{
		// Same score: finished runs beat unfinished, earlier finish wins.
		row("unfinished", 400, nil, base),
		row("late-finish", 400, &late, base),
		row("early-finish", 400, &early, base),
		// Same score, both unfinished: earlier start wins.
		row("b-started-late", 200, nil, base.Add(time.Hour)),
		row("a-started-early", 200, nil, base),
		// Fully tied: user id ascending.
		row("zeta", 100, nil, base),
		row("alpha", 100, nil, base),
	}
	Sort(rows)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.User.ID
	}
	assert.Equal(t, []string{
		"early-finish", "late-finish", "unfinished",
		"a-started-early", "b-started-late",
		"alpha", "zeta",
	}, got)
}

func TestRank(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []store.LeaderboardRow{
		row("u1", 100, nil, base),
		row("u2", 300, nil, base),
		row("u3", 200, nil, base),
	}

	assert.Equal(t, 1, Rank("u2", rows))
	assert.Equal(t, 2, Rank("u3", rows))
	assert.Equal(t, 3, Rank("u1", rows))
	assert.Equal(t, 0, Rank("missing", rows))
}
