package content

// Static DNA curriculum: pretest, five lessons with drills and quizzes,
// posttest. Content is compiled in and immutable.

const (
	TestTypePretest  = "pretest"
	TestTypePosttest = "posttest"

	LessonCount = 5
)

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"-"`
	Explanation   string   `json:"explanation,omitempty"`
}

type Lesson struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Subtitle      string     `json:"subtitle"`
	Content       string     `json:"content"`
	DrillKind     string     `json:"drill_kind"`
	DrillTitle    string     `json:"drill_title"`
	QuizQuestions []Question `json:"quiz_questions"`
}

// TestBank returns the question bank for a test type, or nil for an
// unknown type.
func TestBank(testType string) []Question {
	switch testType {
	case TestTypePretest:
		return pretestQuestions
	case TestTypePosttest:
		return posttestQuestions
	default:
		return nil
	}
}

// LessonByID returns the lesson definition for ids 1..LessonCount.
func LessonByID(id int) (Lesson, bool) {
	if id < 1 || id > len(lessons) {
		return Lesson{}, false
	}
	return lessons[id-1], true
}

func Lessons() []Lesson {
	return lessons
}

func (q Question) IsCorrect(value string) bool {
	return value != "" && value == q.CorrectAnswer
}
