package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavenderBridge/verdure/internal/catalog"
)

func newTestQuiz(t *testing.T) *Quiz {
	t.Helper()
	rng := rand.New(rand.NewSource(3))
	qz, err := NewQuiz(rng, catalog.Base())
	require.NoError(t, err)
	return qz
}

// correctIndex finds the position of the designated answer in the current
// question's options.
func correctIndex(t *testing.T, qz *Quiz) int {
	t.Helper()
	q := qz.Current()
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	t.Fatalf("answer %q not among options %v", q.Answer, q.Options)
	return -1
}

func wrongIndex(t *testing.T, qz *Quiz) int {
	t.Helper()
	q := qz.Current()
	for i, opt := range q.Options {
		if opt != q.Answer {
			return i
		}
	}
	t.Fatal("no wrong option found")
	return -1
}

func TestQuiz_PerfectRun(t *testing.T) {
	qz := newTestQuiz(t)
	require.Equal(t, 3, qz.QuestionCount())

	finished := false
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, qz.Index())

		correct, accepted := qz.Answer(correctIndex(t, qz))
		require.True(t, accepted)
		assert.True(t, correct)

		finished = qz.Next()
	}

	assert.True(t, finished, "advancing past the last question finishes")
	assert.Equal(t, StateFinished, qz.State())
	assert.Equal(t, 3, qz.Score(), "final answer committed before completion")
}

func TestQuiz_FirstAnswerLocksIn(t *testing.T) {
	qz := newTestQuiz(t)

	correct, accepted := qz.Answer(wrongIndex(t, qz))
	require.True(t, accepted)
	assert.False(t, correct)
	assert.True(t, qz.Answered())

	// A later click on the right option is a no-op.
	_, accepted = qz.Answer(correctIndex(t, qz))
	assert.False(t, accepted)
	assert.Zero(t, qz.Score())
}

func TestQuiz_NextRequiresAnswer(t *testing.T) {
	qz := newTestQuiz(t)

	assert.False(t, qz.Next())
	assert.Equal(t, 0, qz.Index(), "cannot advance an unanswered question")

	_, accepted := qz.Answer(correctIndex(t, qz))
	require.True(t, accepted)
	assert.False(t, qz.Next())
	assert.Equal(t, 1, qz.Index())
	assert.False(t, qz.Answered(), "answered flag resets on advance")
}

func TestQuiz_OutOfRangeAnswerRejected(t *testing.T) {
	qz := newTestQuiz(t)

	_, accepted := qz.Answer(-1)
	assert.False(t, accepted)
	_, accepted = qz.Answer(len(qz.Current().Options))
	assert.False(t, accepted)
	assert.False(t, qz.Answered())
}

func TestQuiz_ScoreCountsEachQuestionOnce(t *testing.T) {
	qz := newTestQuiz(t)

	// Right, wrong, right -> 2.
	_, _ = qz.Answer(correctIndex(t, qz))
	qz.Next()
	_, _ = qz.Answer(wrongIndex(t, qz))
	qz.Next()
	_, _ = qz.Answer(correctIndex(t, qz))
	finished := qz.Next()

	assert.True(t, finished)
	assert.Equal(t, 2, qz.Score())
}
