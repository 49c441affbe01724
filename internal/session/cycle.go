// Package session holds the state machines behind the timed study cycle
// and the quiz flow. They are event-driven and know nothing about the
// terminal; the cmd layer feeds them ticks and user actions.
package session

import (
	"errors"
	"math/rand"

	"github.com/LavenderBridge/verdure/internal/models"
)

// State is the lifecycle phase of a session.
type State int

const (
	StateActive State = iota
	StateFinished
)

// ErrNotEnoughPlants is returned when the merged catalog cannot seed a cycle.
var ErrNotEnoughPlants = errors.New("not enough plants to start a cycle")

// Cycle is the timed study session: a fixed plant sample and a countdown.
// Completion happens exactly once, whether the timer expires or the user
// finishes manually.
type Cycle struct {
	plants       []models.Plant
	index        int
	detailsShown bool
	remaining    int
	state        State
}

// NewCycle samples count distinct plants from the merged catalog and starts
// a countdown of seconds.
func NewCycle(rng *rand.Rand, plants []models.Plant, count, seconds int) (*Cycle, error) {
	if len(plants) < count {
		return nil, ErrNotEnoughPlants
	}

	order := rng.Perm(len(plants))
	sample := make([]models.Plant, 0, count)
	for _, idx := range order[:count] {
		sample = append(sample, plants[idx])
	}

	return &Cycle{plants: sample, remaining: seconds}, nil
}

func (c *Cycle) State() State          { return c.state }
func (c *Cycle) Remaining() int        { return c.remaining }
func (c *Cycle) DetailsShown() bool    { return c.detailsShown }
func (c *Cycle) PlantCount() int       { return len(c.plants) }
func (c *Cycle) Index() int            { return c.index }
func (c *Cycle) Current() models.Plant { return c.plants[c.index] }

// Tick consumes one second of the countdown. It reports whether the tick
// finished the session, so the caller records progress exactly once.
func (c *Cycle) Tick() bool {
	if c.state == StateFinished {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		return c.Finish()
	}
	return false
}

// ToggleDetails flips detail visibility for the current plant.
func (c *Cycle) ToggleDetails() {
	if c.state == StateActive {
		c.detailsShown = !c.detailsShown
	}
}

// Advance moves to the next plant and hides details again. On the last
// plant it stays put and reports false.
func (c *Cycle) Advance() bool {
	if c.state != StateActive || c.index >= len(c.plants)-1 {
		return false
	}
	c.index++
	c.detailsShown = false
	return true
}

// Finish moves the session to Finished. It reports whether this call did
// the transition; repeat calls are no-ops, guarding against the timer and a
// manual finish both firing.
func (c *Cycle) Finish() bool {
	if c.state == StateFinished {
		return false
	}
	c.state = StateFinished
	return true
}
