// Package quiz builds the three-question multiple-choice set from the
// merged catalog.
package quiz

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/LavenderBridge/verdure/internal/models"
)

// NumQuestions is fixed: one question of each type per quiz.
const NumQuestions = 3

// optionsPerNameQuestion is the option count for the two name-matching types.
const optionsPerNameQuestion = 4

var (
	ErrEmptyCatalog = errors.New("catalog is empty")
	ErrTooFewPlants = errors.New("not enough plants with distinct common names")
)

// Generate returns a fresh three-question set: scientific-name to common
// name, common name to light requirement, and photo to common name. Option
// sets are uniformly shuffled and contain no duplicate display strings.
func Generate(rng *rand.Rand, plants []models.Plant) ([]models.QuizQuestion, error) {
	if len(plants) == 0 {
		return nil, ErrEmptyCatalog
	}

	sci, err := nameQuestion(rng, plants, 1, models.ScientificToCommon)
	if err != nil {
		return nil, err
	}

	light := lightQuestion(rng, plants, 2)

	photo, err := nameQuestion(rng, plants, 3, models.PhotoToCommon)
	if err != nil {
		return nil, err
	}

	return []models.QuizQuestion{sci, light, photo}, nil
}

// nameQuestion samples four plants with distinct common names; the first is
// the answer, the rest are distractors.
func nameQuestion(rng *rand.Rand, plants []models.Plant, id int, typ models.QuestionType) (models.QuizQuestion, error) {
	sample, err := sampleDistinctNames(rng, plants, optionsPerNameQuestion)
	if err != nil {
		return models.QuizQuestion{}, err
	}

	answer := sample[0]
	options := make([]string, 0, len(sample))
	for _, p := range sample {
		options = append(options, p.CommonName)
	}
	shuffle(rng, options)

	q := models.QuizQuestion{
		ID:      id,
		Type:    typ,
		Options: options,
		Answer:  answer.CommonName,
	}
	if typ == models.PhotoToCommon {
		q.Prompt = "Which plant is shown in this photo?"
		q.Image = answer.Image
	} else {
		q.Prompt = fmt.Sprintf("What is the common name of %s?", answer.ScientificName)
	}
	return q, nil
}

// lightQuestion samples one plant; options are always the full light enum.
func lightQuestion(rng *rand.Rand, plants []models.Plant, id int) models.QuizQuestion {
	p := plants[rng.Intn(len(plants))]

	options := make([]string, 0, 3)
	for _, l := range models.LightRequirements() {
		options = append(options, l.Label())
	}
	shuffle(rng, options)

	return models.QuizQuestion{
		ID:      id,
		Type:    models.CommonToLight,
		Prompt:  fmt.Sprintf("How much light does the %s need?", p.CommonName),
		Options: options,
		Answer:  p.Light.Label(),
	}
}

// sampleDistinctNames picks n plants uniformly at random without
// replacement, skipping duplicates by common name so option sets never show
// the same string twice.
func sampleDistinctNames(rng *rand.Rand, plants []models.Plant, n int) ([]models.Plant, error) {
	order := rng.Perm(len(plants))

	seen := make(map[string]bool, n)
	sample := make([]models.Plant, 0, n)
	for _, idx := range order {
		p := plants[idx]
		if seen[p.CommonName] {
			continue
		}
		seen[p.CommonName] = true
		sample = append(sample, p)
		if len(sample) == n {
			return sample, nil
		}
	}
	return nil, ErrTooFewPlants
}

// shuffle is a uniform Fisher-Yates shuffle.
func shuffle(rng *rand.Rand, options []string) {
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
}
