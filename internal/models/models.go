package models

import "time"

// LightRequirement is how much sun a plant needs.
type LightRequirement string

const (
	FullSun      LightRequirement = "FULL_SUN"
	PartialShade LightRequirement = "PARTIAL_SHADE"
	Shade        LightRequirement = "SHADE"
)

// Label returns the human-readable form used in prompts and answer options.
func (l LightRequirement) Label() string {
	switch l {
	case FullSun:
		return "Full sun"
	case PartialShade:
		return "Partial shade"
	case Shade:
		return "Shade"
	}
	return string(l)
}

// LightRequirements lists all values in a fixed order.
func LightRequirements() []LightRequirement {
	return []LightRequirement{FullSun, PartialShade, Shade}
}

// Plant is a single immutable catalog record. Only its Image may be
// logically overridden per session via the custom-image map.
type Plant struct {
	ID             string           `json:"id"`
	CommonName     string           `json:"common_name"`
	ScientificName string           `json:"scientific_name"`
	Light          LightRequirement `json:"light"`
	Category       string           `json:"category"`
	Trivia         string           `json:"trivia"`
	Image          string           `json:"image"` // URL or data URI
}

// SessionKind distinguishes history entries.
type SessionKind string

const (
	KindCycle SessionKind = "CYCLE"
	KindQuiz  SessionKind = "QUIZ"
)

// StudySession is an append-only history entry. Score is only set for quizzes.
type StudySession struct {
	ID    string      `json:"id"`
	Date  time.Time   `json:"date"`
	Kind  SessionKind `json:"kind"`
	Score *int        `json:"score,omitempty"`
}

// UserProgress is the singleton progress record. Lazily created with
// zero-valued defaults when nothing is stored yet.
type UserProgress struct {
	PlantsStudied      int            `json:"plants_studied"`
	LastStudyDate      *time.Time     `json:"last_study_date,omitempty"`
	Streak             int            `json:"streak"`
	QuizTotalQuestions int            `json:"quiz_total_questions"`
	QuizCorrectAnswers int            `json:"quiz_correct_answers"`
	History            []StudySession `json:"history"`
}

// Accuracy returns the cumulative quiz accuracy in percent, 0 when no
// questions have been answered yet.
func (p UserProgress) Accuracy() float64 {
	if p.QuizTotalQuestions == 0 {
		return 0
	}
	return float64(p.QuizCorrectAnswers) / float64(p.QuizTotalQuestions) * 100
}

// QuestionType identifies one of the three fixed quiz question shapes.
type QuestionType string

const (
	ScientificToCommon QuestionType = "SCIENTIFIC_TO_COMMON"
	CommonToLight      QuestionType = "COMMON_TO_LIGHT"
	PhotoToCommon      QuestionType = "PHOTO_TO_COMMON"
)

// QuizQuestion is generated fresh for each quiz and never persisted.
type QuizQuestion struct {
	ID      int
	Type    QuestionType
	Prompt  string
	Image   string // set only for PHOTO_TO_COMMON
	Options []string
	Answer  string
}
