package store

import (
	"encoding/json"
	"errors"
	"time"

	"genequest/backend/engine"
	"genequest/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaderboardRow pairs a user with their decoded progress record.
type LeaderboardRow struct {
	User     models.User     `json:"user"`
	Progress engine.Progress `json:"progress"`
}

// ProgressStore is the persistence collaborator for progress records, test
// responses and classes. GetProgress returns (nil, nil) when the user has no
// record yet.
type ProgressStore interface {
	GetProgress(userID string) (*engine.Progress, error)
	UpsertProgress(p *engine.Progress) error
	AppendTestResponse(r *models.TestResponse) error
	TestResponses(userID, testType string) ([]models.TestResponse, error)
	Leaderboard(classID string) ([]LeaderboardRow, error)
	CreateClass(c *models.Class) error
	ClassByCode(code string) (*models.Class, error)
	JoinClass(classID, userID string) error
	ClassMembers(classID string) ([]LeaderboardRow, error)
}

// GormStore implements ProgressStore on a GORM database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetProgress(userID string) (*engine.Progress, error) {
	var row models.GameProgress
	err := s.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeProgress(&row)
}

func (s *GormStore) UpsertProgress(p *engine.Progress) error {
	var row models.GameProgress
	err := s.DB.Where("user_id = ?", p.UserID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.GameProgress{UserID: p.UserID}
		if encodeErr := encodeProgress(p, &row); encodeErr != nil {
			return encodeErr
		}
		return s.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}
	if encodeErr := encodeProgress(p, &row); encodeErr != nil {
		return encodeErr
	}
	return s.DB.Save(&row).Error
}

func (s *GormStore) AppendTestResponse(r *models.TestResponse) error {
	return s.DB.Create(r).Error
}

func (s *GormStore) TestResponses(userID, testType string) ([]models.TestResponse, error) {
	var rows []models.TestResponse
	err := s.DB.Where("user_id = ? AND test_type = ?", userID, testType).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) Leaderboard(classID string) ([]LeaderboardRow, error) {
	query := s.DB.Model(&models.GameProgress{}).
		Joins("JOIN users ON users.id = game_progresses.user_id").
		Order("game_progresses.total_score DESC")
	if classID != "" {
		query = query.
			Joins("JOIN class_members ON class_members.user_id = game_progresses.user_id").
			Where("class_members.class_id = ?", classID)
	}

	var progressRows []models.GameProgress
	if err := query.Find(&progressRows).Error; err != nil {
		return nil, err
	}
	return s.rowsFor(progressRows)
}

func (s *GormStore) CreateClass(c *models.Class) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now().UTC()
	return s.DB.Create(c).Error
}

func (s *GormStore) ClassByCode(code string) (*models.Class, error) {
	var c models.Class
	err := s.DB.Where("code = ?", code).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) JoinClass(classID, userID string) error {
	var existing models.ClassMember
	err := s.DB.Where("class_id = ? AND user_id = ?", classID, userID).First(&existing).Error
	if err == nil {
		return nil // already a member
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	member := models.ClassMember{ClassID: classID, UserID: userID, JoinedAt: time.Now().UTC()}
	return s.DB.Create(&member).Error
}

func (s *GormStore) ClassMembers(classID string) ([]LeaderboardRow, error) {
	var progressRows []models.GameProgress
	err := s.DB.Model(&models.GameProgress{}).
		Joins("JOIN class_members ON class_members.user_id = game_progresses.user_id").
		Where("class_members.class_id = ?", classID).
		Find(&progressRows).Error
	if err != nil {
		return nil, err
	}
	return s.rowsFor(progressRows)
}

func (s *GormStore) rowsFor(progressRows []models.GameProgress) ([]LeaderboardRow, error) {
	rows := make([]LeaderboardRow, 0, len(progressRows))
	for i := range progressRows {
		progress, err := decodeProgress(&progressRows[i])
		if err != nil {
			return nil, err
		}
		var user models.User
		if err := s.DB.Where("id = ?", progressRows[i].UserID).First(&user).Error; err != nil {
			continue // orphaned progress row
		}
		rows = append(rows, LeaderboardRow{User: user, Progress: *progress})
	}
	return rows, nil
}

// encodeProgress packs the engine record into the persisted row. The list
// and map fields travel as JSON text, the way question options do in the
// content tables of sibling services.
func encodeProgress(p *engine.Progress, row *models.GameProgress) error {
	completed, err := json.Marshal(p.CompletedLessons)
	if err != nil {
		return err
	}
	scores, err := json.Marshal(p.LessonScores)
	if err != nil {
		return err
	}
	achievements, err := json.Marshal(p.Achievements)
	if err != nil {
		return err
	}

	row.UserID = p.UserID
	row.PretestScore = p.PretestScore
	row.PosttestScore = p.PosttestScore
	row.TotalScore = p.TotalScore
	row.CompletedLessons = string(completed)
	row.LessonScores = string(scores)
	row.Achievements = string(achievements)
	row.CurrentLesson = p.CurrentLesson
	row.IsCompleted = p.IsCompleted
	row.StartedAt = p.StartedAt
	row.CompletedAt = p.CompletedAt
	return nil
}

func decodeProgress(row *models.GameProgress) (*engine.Progress, error) {
	p := engine.NewProgress(row.UserID)
	p.PretestScore = row.PretestScore
	p.PosttestScore = row.PosttestScore
	p.TotalScore = row.TotalScore
	p.CurrentLesson = row.CurrentLesson
	p.IsCompleted = row.IsCompleted
	p.StartedAt = row.StartedAt
	p.CompletedAt = row.CompletedAt
	p.UpdatedAt = row.UpdatedAt

	if row.CompletedLessons != "" {
		if err := json.Unmarshal([]byte(row.CompletedLessons), &p.CompletedLessons); err != nil {
			return nil, err
		}
	}
	if row.LessonScores != "" {
		if err := json.Unmarshal([]byte(row.LessonScores), &p.LessonScores); err != nil {
			return nil, err
		}
	}
	if row.Achievements != "" {
		if err := json.Unmarshal([]byte(row.Achievements), &p.Achievements); err != nil {
			return nil, err
		}
	}
	return p, nil
}
