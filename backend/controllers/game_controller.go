package controllers

import (
	"errors"
	"strings"

	"genequest/backend/config"
	"genequest/backend/content"
	"genequest/backend/engine"
	"genequest/backend/models"
	"genequest/backend/scoring"
	"genequest/backend/store"
	"genequest/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Lessons without an interactive builder award a fixed drill bonus on
// completion when the client reports no score of its own.
const nonBuilderDrillBonus = 75

// GameController exposes the progression surface: tests, lesson steps,
// drills, completion and the per-user summary.
type GameController struct {
	Manager *engine.Manager
	Sync    *store.SyncController
	Store   store.ProgressStore
	Config  *config.Config
}

func NewGameController(manager *engine.Manager, sync *store.SyncController, st store.ProgressStore, cfg *config.Config) *GameController {
	return &GameController{Manager: manager, Sync: sync, Store: st, Config: cfg}
}

func (gc *GameController) sessionFor(c *fiber.Ctx) (string, *engine.Session) {
	userID, _ := c.Locals("user_id").(string)
	session := gc.Manager.Session(userID, func() *engine.Progress {
		return gc.Sync.Load(userID)
	})
	return userID, session
}

// engineError maps engine sentinels onto HTTP responses.
func engineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, engine.ErrLockedContent):
		return utils.Forbidden(c, err.Error())
	case errors.Is(err, engine.ErrOutOfOrderAnswer),
		errors.Is(err, engine.ErrStepMismatch),
		errors.Is(err, engine.ErrDuplicateCompletion),
		errors.Is(err, engine.ErrDrillNotScored):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, engine.ErrInvalidQuestionIndex),
		errors.Is(err, engine.ErrQuizIncomplete),
		errors.Is(err, engine.ErrInvalidDrillMove):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalServerError(c, err.Error())
	}
}

// GetProgress returns the current progress record. The degraded flag warns
// the client that recent writes may not have reached the database yet.
func (gc *GameController) GetProgress(c *fiber.Ctx) error {
	userID, session := gc.sessionFor(c)
	return c.JSON(fiber.Map{
		"success":  true,
		"progress": session.Progress(),
		"degraded": gc.Sync.Degraded(userID),
	})
}

// GetUnlocks reports what the user may start right now.
func (gc *GameController) GetUnlocks(c *fiber.Ctx) error {
	_, session := gc.sessionFor(c)
	return c.JSON(fiber.Map{
		"success": true,
		"unlocks": session.UnlockState(),
	})
}

type testAnswerInput struct {
	QuestionIndex  int    `json:"question_index"`
	SelectedAnswer string `json:"selected_answer"`
	TimeSpent      int    `json:"time_spent"`
}

// SubmitTestAnswer records one pretest or posttest answer. A successful
// answer is logged as a response row; finalization persists the progress.
func (gc *GameController) SubmitTestAnswer(c *fiber.Ctx) error {
	testType := c.Params("testType")
	bank := content.TestBank(testType)
	if bank == nil {
		return utils.NotFound(c, "Unknown test type")
	}

	var input testAnswerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	userID, session := gc.sessionFor(c)
	result, err := session.RecordTestAnswer(testType, input.QuestionIndex, input.SelectedAnswer)
	if err != nil {
		return engineError(c, err)
	}

	gc.Sync.SaveResponse(models.TestResponse{
		UserID:         userID,
		TestType:       testType,
		QuestionID:     bank[input.QuestionIndex].ID,
		SelectedAnswer: input.SelectedAnswer,
		IsCorrect:      result.IsCorrect,
		TimeSpent:      input.TimeSpent,
	})

	if result.Finalized {
		gc.Sync.Save(session.Progress())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  result,
	})
}

// GetTestResponses returns the user's logged answers for one test.
func (gc *GameController) GetTestResponses(c *fiber.Ctx) error {
	testType := c.Params("testType")
	if content.TestBank(testType) == nil {
		return utils.NotFound(c, "Unknown test type")
	}

	userID, _ := c.Locals("user_id").(string)
	rows, err := gc.Store.TestResponses(userID, testType)
	if err != nil {
		return utils.InternalServerError(c, "Failed to load responses")
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"responses": rows,
	})
}

type stepInput struct {
	FromStep string `json:"from_step"`
}

// AdvanceLessonStep moves a lesson from its recorded step to the next one.
func (gc *GameController) AdvanceLessonStep(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson id")
	}

	var input stepInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	_, session := gc.sessionFor(c)
	step, err := session.AdvanceLessonStep(lessonID, engine.LessonStep(input.FromStep))
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"step":    step,
	})
}

type drillInput struct {
	Action   string `json:"action"` // place, remove, check, reset, complete
	Strand   string `json:"strand"` // A or B
	Position int    `json:"position"`
	Base     string `json:"base"`
	// Score is the reported result for lessons without a builder. A pointer
	// so an explicit zero is distinguishable from an absent field.
	Score *int `json:"score"`
}

func parseStrand(s string) (engine.Strand, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return engine.StrandA, true
	case "B":
		return engine.StrandB, true
	default:
		return 0, false
	}
}

// DrillAction drives the interactive base-pairing builder for lesson one and
// records the reported completion score for the simulated drills of the
// later lessons.
func (gc *GameController) DrillAction(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson id")
	}

	var input drillInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	_, session := gc.sessionFor(c)

	if input.Action == "complete" {
		score := nonBuilderDrillBonus
		if input.Score != nil {
			score = *input.Score
		}
		if err := session.RecordDrillScore(lessonID, score); err != nil {
			return engineError(c, err)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"score":   score,
		})
	}

	drill, err := session.Drill(lessonID)
	if err != nil {
		return engineError(c, err)
	}

	var (
		paired    bool
		completed bool
	)
	switch input.Action {
	case "place":
		strand, ok := parseStrand(input.Strand)
		if !ok || len(input.Base) != 1 {
			return utils.BadRequest(c, "Invalid strand or base")
		}
		res, err := drill.PlaceBase(strand, input.Position, strings.ToUpper(input.Base)[0])
		if err != nil {
			return engineError(c, err)
		}
		paired, completed = res.Paired, res.Completed
	case "remove":
		strand, ok := parseStrand(input.Strand)
		if !ok {
			return utils.BadRequest(c, "Invalid strand")
		}
		if err := drill.RemoveBase(strand, input.Position); err != nil {
			return engineError(c, err)
		}
	case "check":
		_, completed = drill.CheckPairing()
	case "reset":
		drill.Reset()
	default:
		return utils.BadRequest(c, "Unknown drill action")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"strands":      drill.Snapshot(),
		"score":        drill.Score(),
		"paired_count": drill.PairedCount(),
		"paired":       paired,
		"completed":    completed,
	})
}

type completeInput struct {
	Answers map[int]string `json:"answers"` // question id -> selected value
}

// CompleteLesson finishes a lesson and persists the updated progress.
func (gc *GameController) CompleteLesson(c *fiber.Ctx) error {
	lessonID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson id")
	}

	var input completeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	_, session := gc.sessionFor(c)
	score, err := session.CompleteLesson(lessonID, input.Answers)
	if err != nil {
		return engineError(c, err)
	}

	gc.Sync.Save(session.Progress())

	return c.JSON(fiber.Map{
		"success":      true,
		"lesson_score": score,
		"progress":     session.Progress(),
	})
}

// GetSummary bundles progress, unlock state, leaderboard rank and the
// degraded flag into one dashboard payload.
func (gc *GameController) GetSummary(c *fiber.Ctx) error {
	userID, session := gc.sessionFor(c)

	rank := 0
	if rows, err := gc.Store.Leaderboard(""); err == nil {
		rank = scoring.Rank(userID, rows)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"progress": session.Progress(),
		"unlocks":  session.UnlockState(),
		"rank":     rank,
		"degraded": gc.Sync.Degraded(userID),
	})
}
