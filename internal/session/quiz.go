package session

import (
	"math/rand"

	"github.com/LavenderBridge/verdure/internal/models"
	"github.com/LavenderBridge/verdure/internal/quiz"
)

// Quiz walks the three generated questions. The first answer per question
// is locked in; later answers for the same question are no-ops. The score
// is committed synchronously, so it is complete by the time Next reports
// the finished transition.
type Quiz struct {
	questions []models.QuizQuestion
	index     int
	answered  bool
	score     int
	state     State
}

// NewQuiz generates a fresh question set from the merged catalog.
func NewQuiz(rng *rand.Rand, plants []models.Plant) (*Quiz, error) {
	questions, err := quiz.Generate(rng, plants)
	if err != nil {
		return nil, err
	}
	return &Quiz{questions: questions}, nil
}

func (q *Quiz) State() State                 { return q.state }
func (q *Quiz) Score() int                   { return q.score }
func (q *Quiz) Answered() bool               { return q.answered }
func (q *Quiz) Index() int                   { return q.index }
func (q *Quiz) QuestionCount() int           { return len(q.questions) }
func (q *Quiz) Current() models.QuizQuestion { return q.questions[q.index] }

// Answer locks in option i for the current question. accepted is false when
// the question was already answered or the session is over; correct is only
// meaningful when accepted.
func (q *Quiz) Answer(i int) (correct, accepted bool) {
	if q.state != StateActive || q.answered || i < 0 || i >= len(q.Current().Options) {
		return false, false
	}
	q.answered = true
	if q.Current().Options[i] == q.Current().Answer {
		q.score++
		return true, true
	}
	return false, true
}

// Next advances past an answered question. Advancing past the last question
// finishes the session; the return value reports that transition so the
// caller records the result exactly once.
func (q *Quiz) Next() (finished bool) {
	if q.state != StateActive || !q.answered {
		return false
	}
	if q.index == len(q.questions)-1 {
		q.state = StateFinished
		return true
	}
	q.index++
	q.answered = false
	return false
}
