package services

import (
	"context"

	"restaurant_finder/models"
)

// Catalogue is read-only access to the restaurant collection. Implementations
// load once at startup and stay immutable, so concurrent readers need no
// locking.
type Catalogue interface {
	// ListAll returns every catalogue record. Callers must not mutate.
	ListAll() []models.Restaurant

	// FindByID looks up a single record.
	FindByID(id string) (*models.Restaurant, bool)

	// Neighborhoods returns the deduplicated neighborhood names of the
	// catalogue, used for neighborhood-hint matching.
	Neighborhoods() []string
}

// TextGenerator is the optional external text-generation capability. A
// failed or absent generation returns ok=false, never an error: the template
// path is always the fallback.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (text string, ok bool)
}

// RandomSource supplies the jitter and latency randomness. Injectable so
// tests can pin a seed.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}
