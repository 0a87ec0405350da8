package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"restaurant_finder/logger"
	"restaurant_finder/models"
	"restaurant_finder/utils"
)

// JSONCatalogue serves the curated restaurant set from the bundled JSON
// file. The concierge scores against this snapshot, not the live database,
// so admin edits become visible to it on the next restart.
type JSONCatalogue struct {
	restaurants   []models.Restaurant
	byID          map[string]int
	neighborhoods []string
}

// NewJSONCatalogue loads restaurants.json from dir.
func NewJSONCatalogue(dir string) (*JSONCatalogue, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "restaurants.json"))
	if err != nil {
		return nil, err
	}

	var restaurants []models.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		return nil, err
	}

	logger.Info("Catalogue loaded", "restaurants", len(restaurants))
	return NewStaticCatalogue(restaurants), nil
}

// NewStaticCatalogue builds a catalogue from an in-memory record set.
func NewStaticCatalogue(restaurants []models.Restaurant) *JSONCatalogue {
	byID := make(map[string]int, len(restaurants))
	var neighborhoods []string
	for i, r := range restaurants {
		byID[r.ID] = i
		if r.Location.Neighborhood != "" {
			neighborhoods = append(neighborhoods, r.Location.Neighborhood)
		}
	}

	neighborhoods = utils.DeduplicateSlice(neighborhoods)
	sort.Strings(neighborhoods)

	return &JSONCatalogue{
		restaurants:   restaurants,
		byID:          byID,
		neighborhoods: neighborhoods,
	}
}

func (c *JSONCatalogue) ListAll() []models.Restaurant {
	return c.restaurants
}

func (c *JSONCatalogue) FindByID(id string) (*models.Restaurant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.restaurants[i], true
}

func (c *JSONCatalogue) Neighborhoods() []string {
	return c.neighborhoods
}
