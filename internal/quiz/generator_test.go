package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavenderBridge/verdure/internal/catalog"
	"github.com/LavenderBridge/verdure/internal/models"
)

func TestGenerate_ShapeAndInvariants(t *testing.T) {
	plants := catalog.Base()

	// Shuffles and samples are random; check the invariants over many runs.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))

		questions, err := Generate(rng, plants)
		require.NoError(t, err)
		require.Len(t, questions, NumQuestions)

		assert.Equal(t, models.ScientificToCommon, questions[0].Type)
		assert.Equal(t, models.CommonToLight, questions[1].Type)
		assert.Equal(t, models.PhotoToCommon, questions[2].Type)

		for _, q := range questions {
			assertOneCorrectOption(t, q)

			if q.Type == models.CommonToLight {
				assert.Len(t, q.Options, 3)
				assert.ElementsMatch(t,
					[]string{"Full sun", "Partial shade", "Shade"}, q.Options)
			} else {
				assert.Len(t, q.Options, 4)
			}

			if q.Type == models.PhotoToCommon {
				assert.NotEmpty(t, q.Image)
			} else {
				assert.Empty(t, q.Image)
			}
		}
	}
}

// assertOneCorrectOption checks options are distinct and contain the answer
// exactly once.
func assertOneCorrectOption(t *testing.T, q models.QuizQuestion) {
	t.Helper()

	seen := map[string]bool{}
	matches := 0
	for _, opt := range q.Options {
		assert.False(t, seen[opt], "duplicate option %q in question %d", opt, q.ID)
		seen[opt] = true
		if opt == q.Answer {
			matches++
		}
	}
	assert.Equal(t, 1, matches, "answer must appear exactly once")
}

func TestGenerate_UsesEffectiveImage(t *testing.T) {
	blob := "data:image/jpeg;base64,AAAA"
	plants := catalog.Base()
	for i := range plants {
		plants[i].Image = blob
	}

	rng := rand.New(rand.NewSource(7))
	questions, err := Generate(rng, plants)
	require.NoError(t, err)
	assert.Equal(t, blob, questions[2].Image)
}

func TestGenerate_EmptyCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := Generate(rng, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestGenerate_TooFewDistinctNames(t *testing.T) {
	// Three plants sharing one common name leave only two distinct options.
	plants := []models.Plant{
		{ID: "a", CommonName: "Fern", Light: models.Shade},
		{ID: "b", CommonName: "Fern", Light: models.Shade},
		{ID: "c", CommonName: "Fern", Light: models.Shade},
		{ID: "d", CommonName: "Ivy", Light: models.PartialShade},
	}

	rng := rand.New(rand.NewSource(1))
	_, err := Generate(rng, plants)
	assert.ErrorIs(t, err, ErrTooFewPlants)
}
