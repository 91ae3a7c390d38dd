package controllers

import (
	"fmt"
	"strings"
	"time"

	"genequest/backend/models"
	"genequest/backend/scoring"
	"genequest/backend/store"
	"genequest/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// LeaderboardController serves class management and score rankings.
type LeaderboardController struct {
	Store store.ProgressStore
}

func NewLeaderboardController(st store.ProgressStore) *LeaderboardController {
	return &LeaderboardController{Store: st}
}

type rankedRow struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Done     bool   `json:"is_completed"`
}

func rankedRows(rows []store.LeaderboardRow) []rankedRow {
	scoring.Sort(rows)
	out := make([]rankedRow, 0, len(rows))
	for i, row := range rows {
		out = append(out, rankedRow{
			Rank:     i + 1,
			UserID:   row.User.ID,
			Username: row.User.Username,
			Score:    row.Progress.TotalScore,
			Done:     row.Progress.IsCompleted,
		})
	}
	return out
}

// GetLeaderboard returns the ranking, optionally scoped to one class.
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	classID := c.Query("class_id")
	rows, err := lc.Store.Leaderboard(classID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to load leaderboard")
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"leaderboard": rankedRows(rows),
	})
}

// ExportLeaderboard streams the ranking as an xlsx workbook for teachers.
func (lc *LeaderboardController) ExportLeaderboard(c *fiber.Ctx) error {
	classID := c.Query("class_id")
	rows, err := lc.Store.Leaderboard(classID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to load leaderboard")
	}
	scoring.Sort(rows)

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Rank", "Username", "Pretest", "Posttest", "Total", "Lessons Done", "Completed"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		values := []interface{}{
			i + 1,
			row.User.Username,
			row.Progress.PretestScore,
			row.Progress.PosttestScore,
			row.Progress.TotalScore,
			len(row.Progress.CompletedLessons),
			row.Progress.IsCompleted,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return utils.InternalServerError(c, "Failed to build workbook")
	}

	filename := fmt.Sprintf("leaderboard-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}

type createClassInput struct {
	Name string `json:"name"`
}

// CreateClass makes a new class owned by the calling teacher with a join code.
func (lc *LeaderboardController) CreateClass(c *fiber.Ctx) error {
	var input createClassInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return utils.BadRequest(c, "Class name is required")
	}

	teacherID, _ := c.Locals("user_id").(string)
	class := models.Class{
		Name:      strings.TrimSpace(input.Name),
		Code:      strings.ToUpper(uuid.NewString()[:8]),
		TeacherID: teacherID,
	}
	if err := lc.Store.CreateClass(&class); err != nil {
		return utils.InternalServerError(c, "Failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

type joinClassInput struct {
	Code string `json:"code"`
}

// JoinClass enrolls the calling student into the class behind a join code.
// Joining twice is a no-op.
func (lc *LeaderboardController) JoinClass(c *fiber.Ctx) error {
	var input joinClassInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	class, err := lc.Store.ClassByCode(strings.ToUpper(strings.TrimSpace(input.Code)))
	if err != nil {
		return utils.InternalServerError(c, "Failed to look up class")
	}
	if class == nil {
		return utils.NotFound(c, "No class with that code")
	}

	userID, _ := c.Locals("user_id").(string)
	if err := lc.Store.JoinClass(class.ID, userID); err != nil {
		return utils.InternalServerError(c, "Failed to join class")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

// GetClassMembers lists a class roster with each member's progress.
func (lc *LeaderboardController) GetClassMembers(c *fiber.Ctx) error {
	classID := c.Params("id")
	rows, err := lc.Store.ClassMembers(classID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to load class members")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"members": rankedRows(rows),
	})
}
