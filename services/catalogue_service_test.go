package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_finder/models"
)

func TestStaticCatalogueNeighborhoods(t *testing.T) {
	a := testRestaurant("a")
	a.Location.Neighborhood = "Old Town"
	b := testRestaurant("b")
	b.Location.Neighborhood = "Berzengi"
	c := testRestaurant("c")
	c.Location.Neighborhood = "Old Town" // duplicate
	d := testRestaurant("d")
	d.Location.Neighborhood = ""

	cat := NewStaticCatalogue([]models.Restaurant{a, b, c, d})

	assert.Equal(t, []string{"Berzengi", "Old Town"}, cat.Neighborhoods())
	assert.Len(t, cat.ListAll(), 4)
}

func TestStaticCatalogueFindByID(t *testing.T) {
	cat := NewStaticCatalogue([]models.Restaurant{testRestaurant("a"), testRestaurant("b")})

	found, ok := cat.FindByID("b")
	require.True(t, ok)
	assert.Equal(t, "b", found.ID)

	_, ok = cat.FindByID("missing")
	assert.False(t, ok)
}

func TestNewJSONCatalogue(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"id":"solo","name":"Solo","priceTier":"$","rating":4.1,"reviewCount":12,
		"location":{"neighborhood":"Parahat","city":"Ashgabat"}}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "restaurants.json"), []byte(payload), 0o644))

	cat, err := NewJSONCatalogue(dir)
	require.NoError(t, err)

	found, ok := cat.FindByID("solo")
	require.True(t, ok)
	assert.Equal(t, "Solo", found.Name)
	assert.Equal(t, []string{"Parahat"}, cat.Neighborhoods())
}

func TestNewJSONCatalogueMissingFile(t *testing.T) {
	_, err := NewJSONCatalogue(t.TempDir())
	assert.Error(t, err)
}
