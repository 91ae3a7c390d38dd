package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"genequest/backend/config"
	"genequest/backend/content"
	"genequest/backend/engine"
	"genequest/backend/routes"
	"genequest/backend/store"
	"genequest/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	app  *fiber.App
	db   *gorm.DB
	cfg  *config.Config
	sync *store.SyncController
)

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	sync.Stop()
	os.Exit(code)
}

func setup() {
	cfg = &config.Config{
		JWTSecret:        "testsecret",
		ServerPort:       "8080",
		SyncFlushSeconds: 3600,
		SyncRetryBudget:  5,
	}

	var err error
	db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	if err := utils.Migrate(db); err != nil {
		panic(err)
	}

	logger := log.New(io.Discard, "", 0)
	manager := engine.NewManager()
	sync = store.NewSyncController(
		store.NewGormStore(db),
		logger,
		time.Duration(cfg.SyncFlushSeconds)*time.Second,
		cfg.SyncRetryBudget,
	)

	app = fiber.New()
	routes.SetupRoutes(app, db, cfg, sync, manager)
}

func request(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		json.Unmarshal(raw, &payload)
	}
	return resp.StatusCode, payload
}

func registerUser(t *testing.T, username, role string) string {
	t.Helper()
	status, payload := request(t, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
		"role":     role,
	})
	assert.Equal(t, fiber.StatusCreated, status)
	token, _ := payload["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

// answerWholeTest submits every question of a test in order, answering
// correctCount of them correctly.
func answerWholeTest(t *testing.T, token, testType string, correctCount int) {
	t.Helper()
	bank := content.TestBank(testType)
	for i, q := range bank {
		value := "X"
		if i < correctCount {
			value = q.CorrectAnswer
		}
		status, _ := request(t, "POST", "/api/game/tests/"+testType+"/answers", token,
			map[string]interface{}{"question_index": i, "selected_answer": value, "time_spent": 4})
		assert.Equal(t, fiber.StatusOK, status, "question %d", i)
	}
}

func completeLessonOverHTTP(t *testing.T, token string, lessonID int) {
	t.Helper()
	base := fmt.Sprintf("/api/game/lessons/%d", lessonID)

	status, _ := request(t, "POST", base+"/step", token, map[string]string{"from_step": "content"})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, "POST", base+"/drill", token, map[string]interface{}{"action": "complete", "score": 75})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, "POST", base+"/step", token, map[string]string{"from_step": "drill"})
	assert.Equal(t, fiber.StatusOK, status)

	lesson, _ := content.LessonByID(lessonID)
	answers := map[string]string{}
	for _, q := range lesson.QuizQuestions {
		answers[fmt.Sprintf("%d", q.ID)] = q.CorrectAnswer
	}
	status, payload := request(t, "POST", base+"/complete", token, map[string]interface{}{"answers": answers})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(100), payload["lesson_score"])
}

func TestRegisterAndLogin(t *testing.T) {
	registerUser(t, "login-user", "student")

	status, payload := request(t, "POST", "/api/auth/login", "", map[string]string{
		"username": "login-user",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, status)
	token, _ := payload["token"].(string)
	assert.NotEmpty(t, token)

	status, payload = request(t, "GET", "/api/auth/user", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	user, _ := payload["user"].(map[string]interface{})
	assert.Equal(t, "login-user", user["username"])

	status, _ = request(t, "POST", "/api/auth/login", "", map[string]string{
		"username": "login-user",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestDuplicateUsername(t *testing.T) {
	registerUser(t, "dupe-user", "student")
	status, _ := request(t, "POST", "/api/auth/register", "", map[string]string{
		"username": "dupe-user",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestGameEndpointsRequireAuth(t *testing.T) {
	status, _ := request(t, "GET", "/api/game/progress", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestFreshProgressAndUnlocks(t *testing.T) {
	token := registerUser(t, "fresh-user", "student")

	status, payload := request(t, "GET", "/api/game/progress", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	progress, _ := payload["progress"].(map[string]interface{})
	assert.Equal(t, float64(0), progress["total_score"])
	assert.Equal(t, float64(1), progress["current_lesson"])
	assert.Equal(t, false, payload["degraded"])

	status, payload = request(t, "GET", "/api/game/unlocks", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	unlocks, _ := payload["unlocks"].(map[string]interface{})
	assert.Equal(t, true, unlocks["pretest_available"])
	assert.Equal(t, false, unlocks["posttest_available"])
	assert.Empty(t, unlocks["lessons_unlocked"])
}

func TestAnswerValidation(t *testing.T) {
	token := registerUser(t, "order-user", "student")

	// Out of order.
	status, _ := request(t, "POST", "/api/game/tests/pretest/answers", token,
		map[string]interface{}{"question_index": 5, "selected_answer": "A"})
	assert.Equal(t, fiber.StatusConflict, status)

	// Unknown test type.
	status, _ = request(t, "POST", "/api/game/tests/midterm/answers", token,
		map[string]interface{}{"question_index": 0, "selected_answer": "A"})
	assert.Equal(t, fiber.StatusNotFound, status)

	// Posttest locked before the lessons are done.
	status, _ = request(t, "POST", "/api/game/tests/posttest/answers", token,
		map[string]interface{}{"question_index": 0, "selected_answer": "A"})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestFullProgressionFlow(t *testing.T) {
	token := registerUser(t, "flow-user", "student")

	answerWholeTest(t, token, content.TestTypePretest, 12)

	status, payload := request(t, "GET", "/api/game/progress", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	progress, _ := payload["progress"].(map[string]interface{})
	assert.Equal(t, float64(12), progress["pretest_score"])
	assert.Equal(t, float64(120), progress["total_score"])

	// Lesson one uses the interactive builder.
	status, _ = request(t, "POST", "/api/game/lessons/1/step", token, map[string]string{"from_step": "content"})
	assert.Equal(t, fiber.StatusOK, status)

	bases := []string{"A", "T", "G", "C", "A", "G"}
	pairs := map[string]string{"A": "T", "T": "A", "G": "C", "C": "G"}
	for pos, base := range bases {
		status, _ = request(t, "POST", "/api/game/lessons/1/drill", token,
			map[string]interface{}{"action": "place", "strand": "A", "position": pos, "base": base})
		assert.Equal(t, fiber.StatusOK, status)
		status, payload = request(t, "POST", "/api/game/lessons/1/drill", token,
			map[string]interface{}{"action": "place", "strand": "B", "position": pos, "base": pairs[base]})
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, payload["paired"])
	}
	assert.Equal(t, float64(90), payload["score"])
	assert.Equal(t, true, payload["completed"])

	status, _ = request(t, "POST", "/api/game/lessons/1/step", token, map[string]string{"from_step": "drill"})
	assert.Equal(t, fiber.StatusOK, status)

	lesson, _ := content.LessonByID(1)
	answers := map[string]string{}
	for _, q := range lesson.QuizQuestions {
		answers[fmt.Sprintf("%d", q.ID)] = q.CorrectAnswer
	}
	status, payload = request(t, "POST", "/api/game/lessons/1/complete", token,
		map[string]interface{}{"answers": answers})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(115), payload["lesson_score"]) // 90 drill + 25 quiz

	// Re-completion is rejected.
	status, _ = request(t, "POST", "/api/game/lessons/1/complete", token,
		map[string]interface{}{"answers": answers})
	assert.Equal(t, fiber.StatusConflict, status)

	// The remaining lessons run the simulated drill path.
	for id := 2; id <= content.LessonCount; id++ {
		completeLessonOverHTTP(t, token, id)
	}

	status, payload = request(t, "GET", "/api/game/unlocks", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	unlocks, _ := payload["unlocks"].(map[string]interface{})
	assert.Equal(t, true, unlocks["posttest_available"])

	answerWholeTest(t, token, content.TestTypePosttest, 17)

	status, payload = request(t, "GET", "/api/game/summary", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	progress, _ = payload["progress"].(map[string]interface{})
	assert.Equal(t, true, progress["is_completed"])
	assert.Equal(t, float64(17), progress["posttest_score"])
	assert.NotZero(t, payload["rank"])

	achievements, _ := progress["achievements"].([]interface{})
	assert.Contains(t, achievements, "dna-rookie")
	assert.Contains(t, achievements, "gene-explorer")
	assert.Contains(t, achievements, "genome-master")

	// Response log captured every submitted answer.
	status, payload = request(t, "GET", "/api/game/tests/pretest/responses", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	responses, _ := payload["responses"].([]interface{})
	assert.Len(t, responses, 20)
}

func TestDrillCompleteScoreHandling(t *testing.T) {
	token := registerUser(t, "drill-score-user", "student")
	answerWholeTest(t, token, content.TestTypePretest, 0)

	quizAnswers := func(lessonID int) map[string]string {
		lesson, _ := content.LessonByID(lessonID)
		answers := map[string]string{}
		for _, q := range lesson.QuizQuestions {
			answers[fmt.Sprintf("%d", q.ID)] = q.CorrectAnswer
		}
		return answers
	}

	// Lesson one's builder is authoritative: a reported completion score
	// is rejected.
	status, _ := request(t, "POST", "/api/game/lessons/1/step", token, map[string]string{"from_step": "content"})
	assert.Equal(t, fiber.StatusOK, status)
	status, _ = request(t, "POST", "/api/game/lessons/1/drill", token,
		map[string]interface{}{"action": "complete", "score": 10})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Finish lesson one through the builder; an empty build scores zero.
	status, _ = request(t, "POST", "/api/game/lessons/1/step", token, map[string]string{"from_step": "drill"})
	assert.Equal(t, fiber.StatusOK, status)
	status, payload := request(t, "POST", "/api/game/lessons/1/complete", token,
		map[string]interface{}{"answers": quizAnswers(1)})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(25), payload["lesson_score"])

	// An explicit zero on a simulated drill is recorded as zero, not
	// replaced by the default bonus.
	status, _ = request(t, "POST", "/api/game/lessons/2/step", token, map[string]string{"from_step": "content"})
	assert.Equal(t, fiber.StatusOK, status)
	status, payload = request(t, "POST", "/api/game/lessons/2/drill", token,
		map[string]interface{}{"action": "complete", "score": 0})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), payload["score"])
	status, _ = request(t, "POST", "/api/game/lessons/2/step", token, map[string]string{"from_step": "drill"})
	assert.Equal(t, fiber.StatusOK, status)
	status, payload = request(t, "POST", "/api/game/lessons/2/complete", token,
		map[string]interface{}{"answers": quizAnswers(2)})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(25), payload["lesson_score"]) // 0 drill + 25 quiz

	// Omitting the score falls back to the completion bonus.
	status, _ = request(t, "POST", "/api/game/lessons/3/step", token, map[string]string{"from_step": "content"})
	assert.Equal(t, fiber.StatusOK, status)
	status, payload = request(t, "POST", "/api/game/lessons/3/drill", token,
		map[string]interface{}{"action": "complete"})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(75), payload["score"])
}

func TestLessonLockedBeforePretest(t *testing.T) {
	token := registerUser(t, "locked-user", "student")
	status, _ := request(t, "POST", "/api/game/lessons/1/step", token, map[string]string{"from_step": "content"})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestClassesAndLeaderboard(t *testing.T) {
	teacherToken := registerUser(t, "class-teacher", "teacher")
	studentToken := registerUser(t, "class-student", "student")

	// Students cannot create classes.
	status, _ := request(t, "POST", "/api/class/", studentToken, map[string]string{"name": "Bio 101"})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, payload := request(t, "POST", "/api/class/", teacherToken, map[string]string{"name": "Bio 101"})
	assert.Equal(t, fiber.StatusCreated, status)
	class, _ := payload["class"].(map[string]interface{})
	code, _ := class["Code"].(string)
	classID, _ := class["ID"].(string)
	assert.NotEmpty(t, code)

	status, _ = request(t, "POST", "/api/class/join", studentToken, map[string]string{"code": code})
	assert.Equal(t, fiber.StatusOK, status)

	// Joining twice is a no-op.
	status, _ = request(t, "POST", "/api/class/join", studentToken, map[string]string{"code": code})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = request(t, "POST", "/api/class/join", studentToken, map[string]string{"code": "NOPE1234"})
	assert.Equal(t, fiber.StatusNotFound, status)

	// Give the student a score so the scoped leaderboard has a row.
	answerWholeTest(t, studentToken, content.TestTypePretest, 10)

	status, payload = request(t, "GET", "/api/leaderboard?class_id="+classID, studentToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
	rows, _ := payload["leaderboard"].([]interface{})
	assert.Len(t, rows, 1)
	first, _ := rows[0].(map[string]interface{})
	assert.Equal(t, "class-student", first["username"])
	assert.Equal(t, float64(100), first["score"])

	status, payload = request(t, "GET", "/api/class/"+classID+"/members", studentToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
	members, _ := payload["members"].([]interface{})
	assert.Len(t, members, 1)
}

func TestLeaderboardExportRequiresTeacher(t *testing.T) {
	teacherToken := registerUser(t, "export-teacher", "teacher")
	studentToken := registerUser(t, "export-student", "student")

	status, _ := request(t, "GET", "/api/leaderboard/export", studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	req := httptest.NewRequest("GET", "/api/leaderboard/export", nil)
	req.Header.Set("Authorization", teacherToken)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.NotEmpty(t, body)
}
