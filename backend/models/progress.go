package models

import (
	"time"

	"gorm.io/gorm"
)

// GameProgress is the persisted progress record, one row per user.
// CompletedLessons, LessonScores and Achievements are stored as JSON text
// and decoded at the store boundary.
type GameProgress struct {
	gorm.Model
	UserID           string `gorm:"uniqueIndex;not null"`
	PretestScore     int
	PosttestScore    int
	TotalScore       int
	CompletedLessons string `gorm:"default:'[]'"` // JSON array of lesson ids
	LessonScores     string `gorm:"default:'{}'"` // JSON object lesson id -> score
	Achievements     string `gorm:"default:'[]'"` // JSON array of tags
	CurrentLesson    int    `gorm:"default:1"`
	IsCompleted      bool
	StartedAt        time.Time
	CompletedAt      *time.Time
}

// TestResponse is an append-only log row per answered test question,
// kept for analysis only. It is never used to recompute scores.
type TestResponse struct {
	gorm.Model
	UserID         string `gorm:"index"`
	TestType       string `gorm:"index"` // pretest, posttest
	QuestionID     int
	SelectedAnswer string
	IsCorrect      bool
	TimeSpent      int // seconds
}
