package store

import (
	"testing"
	"time"

	"genequest/backend/engine"
	"genequest/backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.ClassMember{},
		&models.GameProgress{},
		&models.TestResponse{},
	)
	assert.NoError(t, err)
	return NewGormStore(db)
}

func createUser(t *testing.T, s *GormStore, id string) {
	t.Helper()
	err := s.DB.Create(&models.User{ID: id, Username: id, PasswordHash: "x"}).Error
	assert.NoError(t, err)
}

func TestGetProgressMissing(t *testing.T) {
	s := newTestStore(t)
	p, err := s.GetProgress("nobody")
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestUpsertProgressRoundTrip(t *testing.T) {
	s := newTestStore(t)

	now := time.Now().UTC().Truncate(time.Second)
	p := engine.NewProgress("u1")
	p.PretestScore = 12
	p.TotalScore = 195
	p.CompletedLessons = []int{1, 2}
	p.LessonScores = map[int]int{1: 40, 2: 35}
	p.Achievements = []string{engine.AchievementRookie}
	p.CurrentLesson = 3
	p.StartedAt = now

	assert.NoError(t, s.UpsertProgress(p))

	got, err := s.GetProgress("u1")
	assert.NoError(t, err)
	assert.Equal(t, 12, got.PretestScore)
	assert.Equal(t, 195, got.TotalScore)
	assert.Equal(t, []int{1, 2}, got.CompletedLessons)
	assert.Equal(t, map[int]int{1: 40, 2: 35}, got.LessonScores)
	assert.Equal(t, []string{engine.AchievementRookie}, got.Achievements)
	assert.Equal(t, 3, got.CurrentLesson)

	// Second upsert updates the same row instead of inserting another one.
	p.TotalScore = 300
	assert.NoError(t, s.UpsertProgress(p))
	got, err = s.GetProgress("u1")
	assert.NoError(t, err)
	assert.Equal(t, 300, got.TotalScore)

	var count int64
	s.DB.Model(&models.GameProgress{}).Where("user_id = ?", "u1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestTestResponsesOrderedByInsert(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 3; i++ {
		err := s.AppendTestResponse(&models.TestResponse{
			UserID: "u1", TestType: "pretest", QuestionID: i,
		})
		assert.NoError(t, err)
	}
	s.AppendTestResponse(&models.TestResponse{UserID: "u1", TestType: "posttest", QuestionID: 1})

	rows, err := s.TestResponses("u1", "pretest")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.QuestionID)
	}
}

func TestLeaderboardScoping(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []string{"u1", "u2", "u3"} {
		createUser(t, s, id)
	}

	for i, id := range []string{"u1", "u2", "u3"} {
		p := engine.NewProgress(id)
		p.TotalScore = (i + 1) * 100
		assert.NoError(t, s.UpsertProgress(p))
	}

	class := models.Class{Name: "Bio 101", Code: "ABC123", TeacherID: "u3"}
	assert.NoError(t, s.CreateClass(&class))
	assert.NotEmpty(t, class.ID)
	assert.NoError(t, s.JoinClass(class.ID, "u1"))
	assert.NoError(t, s.JoinClass(class.ID, "u2"))

	all, err := s.Leaderboard("")
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "u3", all[0].User.ID) // highest score first

	scoped, err := s.Leaderboard(class.ID)
	assert.NoError(t, err)
	assert.Len(t, scoped, 2)

	members, err := s.ClassMembers(class.ID)
	assert.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestClassByCode(t *testing.T) {
	s := newTestStore(t)
	class := models.Class{Name: "Bio 101", Code: "JOINME", TeacherID: "t1"}
	assert.NoError(t, s.CreateClass(&class))

	found, err := s.ClassByCode("JOINME")
	assert.NoError(t, err)
	assert.Equal(t, class.ID, found.ID)

	missing, err := s.ClassByCode("NOPE")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJoinClassIdempotent(t *testing.T) {
	s := newTestStore(t)
	class := models.Class{Name: "Bio 101", Code: "TWICE1", TeacherID: "t1"}
	assert.NoError(t, s.CreateClass(&class))

	assert.NoError(t, s.JoinClass(class.ID, "u1"))
	assert.NoError(t, s.JoinClass(class.ID, "u1"))

	var count int64
	s.DB.Model(&models.ClassMember{}).Where("class_id = ?", class.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
