// Package catalog owns the static plant dataset and the overlay of
// user-supplied images onto it.
package catalog

import (
	"errors"

	"github.com/LavenderBridge/verdure/internal/models"
)

// ErrUnknownPlant is returned when an identifier is not in the base dataset.
var ErrUnknownPlant = errors.New("unknown plant id")

// Base returns a copy of the static dataset in its fixed order.
func Base() []models.Plant {
	out := make([]models.Plant, len(basePlants))
	copy(out, basePlants)
	return out
}

// ByID looks a plant up in the base dataset.
func ByID(id string) (models.Plant, bool) {
	for _, p := range basePlants {
		if p.ID == id {
			return p, true
		}
	}
	return models.Plant{}, false
}

// Merge overlays the custom-image map onto the base dataset. Plants with an
// entry get its blob as their image reference; everything else is untouched.
// Pure function, base order preserved.
func Merge(customImages map[string]string) []models.Plant {
	merged := Base()
	for i, p := range merged {
		if blob, ok := customImages[p.ID]; ok {
			merged[i].Image = blob
		}
	}
	return merged
}
