package engine

import (
	"time"

	"genequest/backend/content"
)

// LessonStep is the per-lesson finite state machine position.
type LessonStep string

const (
	StepContent LessonStep = "content"
	StepDrill   LessonStep = "drill"
	StepQuiz    LessonStep = "quiz"
	StepDone    LessonStep = "done"
)

// QuizPointsPerCorrect is awarded per correct lesson quiz answer.
const QuizPointsPerCorrect = 5

// testRun tracks one in-session run of the pretest or posttest.
// Answers must arrive in strict index order; re-answering an earlier index
// overwrites the scored answer (last write wins).
type testRun struct {
	answers   []string
	nextIndex int
	finalized bool
}

type lessonRun struct {
	step       LessonStep
	drill      *Drill
	drillScore int
	drillSet   bool
}

// AnswerResult is returned from RecordTestAnswer.
type AnswerResult struct {
	IsCorrect bool `json:"is_correct"`
	Finalized bool `json:"finalized"`
	// Score is the final test score, set only when Finalized is true.
	Score int `json:"score,omitempty"`
}

// UnlockState is the caller-facing view of what may be started.
type UnlockState struct {
	PretestAvailable  bool  `json:"pretest_available"`
	LessonsUnlocked   []int `json:"lessons_unlocked"`
	PosttestAvailable bool  `json:"posttest_available"`
}

// Session drives one user's progression: test answering, lesson step
// sequencing, drill scoring and achievement derivation. All transitions
// mutate the in-memory Progress snapshot; persisting it is the caller's
// side effect after the transition returns.
type Session struct {
	progress *Progress
	tests    map[string]*testRun
	lessons  map[int]*lessonRun
}

func NewSession(p *Progress) *Session {
	if p == nil {
		p = NewProgress("")
	}
	return &Session{
		progress: p,
		tests:    map[string]*testRun{},
		lessons:  map[int]*lessonRun{},
	}
}

func (s *Session) Progress() *Progress { return s.progress }

func (s *Session) CanStartPretest() bool { return true }

// pretestDone reports whether the pretest has ever been finalized. The
// rookie achievement is written exactly at pretest finalization, so it
// doubles as the persisted marker (a legitimate score of zero would
// otherwise be indistinguishable from "never taken").
func (s *Session) pretestDone() bool {
	return s.progress.HasAchievement(AchievementRookie)
}

func (s *Session) CanStartLesson(lessonID int) bool {
	if lessonID < 1 || lessonID > content.LessonCount {
		return false
	}
	return s.pretestDone() && lessonID <= s.progress.CurrentLesson
}

func (s *Session) CanStartPosttest() bool {
	return len(s.progress.CompletedLessons) == content.LessonCount
}

func (s *Session) UnlockState() UnlockState {
	state := UnlockState{
		PretestAvailable:  s.CanStartPretest(),
		LessonsUnlocked:   []int{},
		PosttestAvailable: s.CanStartPosttest(),
	}
	for id := 1; id <= content.LessonCount; id++ {
		if s.CanStartLesson(id) {
			state.LessonsUnlocked = append(state.LessonsUnlocked, id)
		}
	}
	return state
}

// RecordTestAnswer scores one pretest or posttest answer. Answering the last
// question finalizes the test: the score is computed over the scored answers,
// the total is bumped by score*10 and the matching achievements and pointers
// are written.
func (s *Session) RecordTestAnswer(testType string, index int, value string) (AnswerResult, error) {
	bank := content.TestBank(testType)
	if bank == nil {
		return AnswerResult{}, ErrInvalidQuestionIndex
	}
	if testType == content.TestTypePosttest && !s.CanStartPosttest() {
		return AnswerResult{}, ErrLockedContent
	}

	// Finalization is guarded on the persisted record, not just the in-memory
	// run: a reloaded session must not re-take a finished test.
	if testType == content.TestTypePretest && s.pretestDone() {
		return AnswerResult{}, ErrInvalidQuestionIndex
	}
	if testType == content.TestTypePosttest && s.progress.IsCompleted {
		return AnswerResult{}, ErrInvalidQuestionIndex
	}

	run, ok := s.tests[testType]
	if !ok {
		run = &testRun{answers: make([]string, len(bank))}
		s.tests[testType] = run
	}
	if run.finalized {
		return AnswerResult{}, ErrInvalidQuestionIndex
	}
	if index < 0 || index >= len(bank) {
		return AnswerResult{}, ErrInvalidQuestionIndex
	}
	if index > run.nextIndex {
		return AnswerResult{}, ErrOutOfOrderAnswer
	}

	run.answers[index] = value
	if index == run.nextIndex {
		run.nextIndex++
	}

	res := AnswerResult{IsCorrect: bank[index].IsCorrect(value)}
	if index == len(bank)-1 {
		res.Finalized = true
		res.Score = s.finalizeTest(testType, bank, run)
	}
	return res, nil
}

func (s *Session) finalizeTest(testType string, bank []content.Question, run *testRun) int {
	run.finalized = true
	score := 0
	for i, answer := range run.answers {
		if bank[i].IsCorrect(answer) {
			score++
		}
	}

	p := s.progress
	switch testType {
	case content.TestTypePretest:
		p.PretestScore = score
		p.TotalScore += score * 10
		p.addAchievement(AchievementRookie)
		p.CurrentLesson = 1
	case content.TestTypePosttest:
		p.PosttestScore = score
		p.TotalScore += score * 10
		p.IsCompleted = true
		now := time.Now().UTC()
		p.CompletedAt = &now
		// 80% threshold, integer form: score/N >= 4/5.
		if score*5 >= len(bank)*4 {
			p.addAchievement(AchievementMaster)
		}
	}
	p.touch()
	return score
}

// lessonRunFor gates access to a lesson and lazily creates its run state.
func (s *Session) lessonRunFor(lessonID int) (*lessonRun, content.Lesson, error) {
	lesson, ok := content.LessonByID(lessonID)
	if !ok || !s.CanStartLesson(lessonID) {
		return nil, content.Lesson{}, ErrLockedContent
	}
	run, ok := s.lessons[lessonID]
	if !ok {
		run = &lessonRun{step: StepContent}
		if lesson.DrillKind == content.DrillKindDNABuilder {
			run.drill = NewDrill()
		}
		if s.progress.hasCompletedLesson(lessonID) {
			run.step = StepDone
		}
		s.lessons[lessonID] = run
	}
	return run, lesson, nil
}

// LessonStep reports the recorded step for an unlocked lesson.
func (s *Session) LessonStep(lessonID int) (LessonStep, error) {
	run, _, err := s.lessonRunFor(lessonID)
	if err != nil {
		return "", err
	}
	return run.step, nil
}

// AdvanceLessonStep moves the step pointer forward by one. The from step must
// match the recorded step, which keeps a double-submit from advancing twice.
// The quiz step is left through CompleteLesson, not through here.
func (s *Session) AdvanceLessonStep(lessonID int, from LessonStep) (LessonStep, error) {
	run, _, err := s.lessonRunFor(lessonID)
	if err != nil {
		return "", err
	}
	if run.step != from {
		return "", ErrStepMismatch
	}
	switch from {
	case StepContent:
		run.step = StepDrill
	case StepDrill:
		// Lesson 1's drill score is whatever the builder holds when the
		// user moves on; later edits would need a fresh run.
		if run.drill != nil {
			run.drillScore = run.drill.Score()
			run.drillSet = true
		}
		run.step = StepQuiz
	default:
		return "", ErrStepMismatch
	}
	return run.step, nil
}

// Drill exposes the interactive builder for lessons that have one. It is
// only reachable while the lesson sits on the drill step.
func (s *Session) Drill(lessonID int) (*Drill, error) {
	run, _, err := s.lessonRunFor(lessonID)
	if err != nil {
		return nil, err
	}
	if run.drill == nil {
		return nil, ErrInvalidDrillMove
	}
	if run.step != StepDrill {
		return nil, ErrStepMismatch
	}
	return run.drill, nil
}

// RecordDrillScore records the reported drill score for a lesson without an
// interactive builder. Lessons with a builder take their score from the
// builder itself, and the lesson must sit on the drill step.
func (s *Session) RecordDrillScore(lessonID int, points int) error {
	run, _, err := s.lessonRunFor(lessonID)
	if err != nil {
		return err
	}
	if run.drill != nil {
		return ErrInvalidDrillMove
	}
	if run.step != StepDrill {
		return ErrStepMismatch
	}
	if points < 0 {
		return ErrInvalidDrillMove
	}
	run.drillScore = points
	run.drillSet = true
	return nil
}

// CompleteLesson finishes a lesson: requires the drill score recorded and
// every quiz question answered, computes
// lessonScore = drillScore + 5*countCorrect, and advances the progress
// record. Returns the lesson score.
func (s *Session) CompleteLesson(lessonID int, answers map[int]string) (int, error) {
	run, lesson, err := s.lessonRunFor(lessonID)
	if err != nil {
		return 0, err
	}
	if s.progress.hasCompletedLesson(lessonID) {
		return 0, ErrDuplicateCompletion
	}
	if !run.drillSet {
		return 0, ErrDrillNotScored
	}

	correct := 0
	for _, q := range lesson.QuizQuestions {
		answer, ok := answers[q.ID]
		if !ok {
			return 0, ErrQuizIncomplete
		}
		if q.IsCorrect(answer) {
			correct++
		}
	}

	score := run.drillScore + correct*QuizPointsPerCorrect

	p := s.progress
	p.CompletedLessons = append(p.CompletedLessons, lessonID)
	p.LessonScores[lessonID] = score
	p.TotalScore += score
	p.CurrentLesson = lessonID + 1
	if len(p.CompletedLessons) >= 3 {
		p.addAchievement(AchievementExplorer)
	}
	p.touch()

	run.step = StepDone
	return score, nil
}
