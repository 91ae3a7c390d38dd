package engine

import "time"

// Achievement tags are derived deterministically from progress state.
const (
	AchievementRookie   = "dna-rookie"    // pretest completed
	AchievementExplorer = "gene-explorer" // three or more lessons completed
	AchievementMaster   = "genome-master" // posttest score of 80% or higher
)

// Progress is the in-memory progress record owned by the engine. The store
// layer maps it to and from the persisted row. All mutations go through
// Session transitions; persistence is a side effect applied afterwards.
type Progress struct {
	UserID           string         `json:"user_id"`
	PretestScore     int            `json:"pretest_score"`
	PosttestScore    int            `json:"posttest_score"`
	TotalScore       int            `json:"total_score"`
	CompletedLessons []int          `json:"completed_lessons"`
	LessonScores     map[int]int    `json:"lesson_scores"`
	Achievements     []string       `json:"achievements"`
	CurrentLesson    int            `json:"current_lesson"`
	IsCompleted      bool           `json:"is_completed"`
	StartedAt        time.Time      `json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// NewProgress synthesizes the zero-value record used when a user has no
// persisted progress yet.
func NewProgress(userID string) *Progress {
	now := time.Now().UTC()
	return &Progress{
		UserID:           userID,
		CompletedLessons: []int{},
		LessonScores:     map[int]int{},
		Achievements:     []string{},
		CurrentLesson:    1,
		StartedAt:        now,
		UpdatedAt:        now,
	}
}

func (p *Progress) HasAchievement(tag string) bool {
	for _, a := range p.Achievements {
		if a == tag {
			return true
		}
	}
	return false
}

// addAchievement is idempotent: the set is append-only with no duplicates.
func (p *Progress) addAchievement(tag string) {
	if !p.HasAchievement(tag) {
		p.Achievements = append(p.Achievements, tag)
	}
}

func (p *Progress) hasCompletedLesson(lessonID int) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

func (p *Progress) touch() {
	p.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy, safe to hand to the sync controller while the
// session keeps mutating the original.
func (p *Progress) Clone() *Progress {
	cp := *p
	cp.CompletedLessons = append([]int{}, p.CompletedLessons...)
	cp.Achievements = append([]string{}, p.Achievements...)
	cp.LessonScores = make(map[int]int, len(p.LessonScores))
	for k, v := range p.LessonScores {
		cp.LessonScores[k] = v
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
