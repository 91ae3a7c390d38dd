package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:student"` // student, teacher
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Class groups students under a teacher for scoped leaderboards.
type Class struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Code      string `gorm:"uniqueIndex;not null"`
	TeacherID string `gorm:"not null"`
	CreatedAt time.Time
}

type ClassMember struct {
	ID       uint   `gorm:"primaryKey"`
	ClassID  string `gorm:"uniqueIndex:idx_class_member"`
	UserID   string `gorm:"uniqueIndex:idx_class_member"`
	JoinedAt time.Time
}
