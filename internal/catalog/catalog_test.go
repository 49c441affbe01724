package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_StableAndDistinct(t *testing.T) {
	plants := Base()
	require.NotEmpty(t, plants)

	ids := map[string]bool{}
	names := map[string]bool{}
	for _, p := range plants {
		assert.False(t, ids[p.ID], "duplicate id %q", p.ID)
		assert.False(t, names[p.CommonName], "duplicate common name %q", p.CommonName)
		ids[p.ID] = true
		names[p.CommonName] = true
		assert.NotEmpty(t, p.ScientificName)
		assert.NotEmpty(t, p.Trivia)
		assert.NotEmpty(t, p.Image)
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID("monstera")
	require.True(t, ok)
	assert.Equal(t, "Swiss Cheese Plant", p.CommonName)

	_, ok = ByID("does-not-exist")
	assert.False(t, ok)
}

func TestMerge_OverlayAndRevert(t *testing.T) {
	base := Base()

	merged := Merge(nil)
	assert.Equal(t, base, merged, "no overrides: merged equals base")

	blob := "data:image/jpeg;base64,AAAA"
	merged = Merge(map[string]string{"pothos": blob})
	for i, p := range merged {
		if p.ID == "pothos" {
			assert.Equal(t, blob, p.Image)
		} else {
			assert.Equal(t, base[i].Image, p.Image)
		}
		assert.Equal(t, base[i].ID, p.ID, "base order preserved")
	}

	// Removing the override reverts to the base image.
	merged = Merge(map[string]string{})
	assert.Equal(t, base, merged)
}

func TestMerge_DoesNotMutateBase(t *testing.T) {
	Merge(map[string]string{"monstera": "data:image/jpeg;base64,BBBB"})

	p, ok := ByID("monstera")
	require.True(t, ok)
	assert.NotContains(t, p.Image, "base64")
}
