package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_finder/models"
)

type stubGenerator struct {
	text string
	ok   bool
}

func (g stubGenerator) Generate(context.Context, string) (string, bool) {
	return g.text, g.ok
}

func conciergeFixtures() []models.Restaurant {
	vegan := testRestaurant("green-tandyr")
	vegan.Cuisines = []string{"Plant-based"}
	vegan.Dietary = []string{"Vegan", "Halal"}
	vegan.PriceTier = models.TierLow
	vegan.Rating = 4.4
	vegan.AISummary = "Vegan tandyr kitchen with garden seating."

	bakery := testRestaurant("flour-and-ferment")
	bakery.Cuisines = []string{"Bakery", "Brunch"}
	bakery.Dietary = []string{"Vegan", "Vegetarian"}
	bakery.PriceTier = models.TierLow
	bakery.Rating = 4.5
	bakery.Location.Neighborhood = "Innovation Hub"

	smokehouse := testRestaurant("kopetdag-smokehouse")
	smokehouse.Cuisines = []string{"Smokehouse", "Turkmen"}
	smokehouse.Dietary = []string{"Halal"}
	smokehouse.Rating = 4.6

	rooftop := testRestaurant("saffron-terrace")
	rooftop.Cuisines = []string{"Contemporary European"}
	rooftop.PriceTier = models.TierHigh
	rooftop.Rating = 4.8
	rooftop.Location.Neighborhood = "Old Town"

	return []models.Restaurant{vegan, bakery, smokehouse, rooftop}
}

// newTestConcierge pins the randomness and removes the latency hold so tests
// run instantly.
func newTestConcierge(restaurants []models.Restaurant, generator TextGenerator) *ConciergeService {
	svc := NewConciergeService(NewStaticCatalogue(restaurants), generator, zeroRand{}, 3)
	svc.delay = func(context.Context, time.Duration) {}
	return svc
}

func TestAskShortlist(t *testing.T) {
	svc := newTestConcierge(conciergeFixtures(), nil)

	resp := svc.Ask(context.Background(), "cheap vegan dinner")

	require.Len(t, resp.Suggestions, 3)
	assert.Equal(t, models.SourceTemplate, resp.Source)

	// the vegan budget spot collects the most bonuses
	assert.Equal(t, "green-tandyr", resp.Suggestions[0].Restaurants[0])

	for rank, s := range resp.Suggestions {
		assert.Equal(t, fmt.Sprintf("%s-%d", s.Restaurants[0], rank), s.ID)
		assert.GreaterOrEqual(t, s.Confidence, 0.45)
		assert.LessOrEqual(t, s.Confidence, 0.92)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Reasoning)
		if rank > 0 {
			assert.LessOrEqual(t, s.Confidence, resp.Suggestions[rank-1].Confidence)
		}
	}
}

func TestAskTokenEstimate(t *testing.T) {
	svc := newTestConcierge(conciergeFixtures(), nil)
	question := "vegan dinner in Berzengi"

	resp := svc.Ask(context.Background(), question)

	require.Len(t, resp.Suggestions, 3)
	expected := minInt(len(question)*4+len(resp.Suggestions)*80, 640)
	assert.Equal(t, expected, resp.TokensUsed)
}

func TestAskLatencyTarget(t *testing.T) {
	svc := newTestConcierge(conciergeFixtures(), nil)
	question := "vegan dinner in Berzengi" // 4 words

	resp := svc.Ask(context.Background(), question)

	// zeroRand removes both jitter terms: 650 + 4*35 + 120
	assert.EqualValues(t, 910, resp.LatencyMs)
}

func TestAskEmptyCatalogue(t *testing.T) {
	svc := newTestConcierge(nil, nil)

	resp := svc.Ask(context.Background(), "anything at all")

	assert.NotNil(t, resp.Suggestions)
	assert.Empty(t, resp.Suggestions)
	assert.Zero(t, resp.TokensUsed)
	assert.Equal(t, models.SourceTemplate, resp.Source)
}

func TestAskSkipsInvalidRecords(t *testing.T) {
	broken := testRestaurant("broken")
	broken.PriceTier = "$$$$"
	fixtures := append(conciergeFixtures(), broken)

	svc := newTestConcierge(fixtures, nil)
	resp := svc.Ask(context.Background(), "dinner tonight")

	for _, s := range resp.Suggestions {
		assert.NotContains(t, s.Restaurants, "broken")
	}
}

func TestAskExternalGeneration(t *testing.T) {
	generated := "Book the garden tables at Green Tandyr before sunset."
	svc := newTestConcierge(conciergeFixtures(), stubGenerator{text: generated, ok: true})

	resp := svc.Ask(context.Background(), "cheap vegan dinner")

	require.Len(t, resp.Suggestions, 3)
	assert.Equal(t, models.SourceExternal, resp.Source)
	assert.Equal(t, generated, resp.Suggestions[0].Reasoning)
	assert.NotEqual(t, generated, resp.Suggestions[1].Reasoning)
	assert.Equal(t, len(generated), resp.TokensUsed)
}

func TestAskExternalTokenCap(t *testing.T) {
	svc := newTestConcierge(conciergeFixtures(), stubGenerator{text: strings.Repeat("a", 600), ok: true})

	resp := svc.Ask(context.Background(), "cheap vegan dinner")

	assert.Equal(t, 512, resp.TokensUsed)
}

func TestAskGeneratorFailureFallsBack(t *testing.T) {
	svc := newTestConcierge(conciergeFixtures(), stubGenerator{ok: false})

	resp := svc.Ask(context.Background(), "cheap vegan dinner")

	assert.Equal(t, models.SourceTemplate, resp.Source)
	require.NotEmpty(t, resp.Suggestions)
	assert.NotEmpty(t, resp.Suggestions[0].Reasoning)
}

func TestAskNoGeneratorOnEmptyShortlist(t *testing.T) {
	// the generator must not run when there is nothing to annotate
	svc := newTestConcierge(nil, stubGenerator{text: "should not appear", ok: true})

	resp := svc.Ask(context.Background(), "anything at all")

	assert.Equal(t, models.SourceTemplate, resp.Source)
	assert.Zero(t, resp.TokensUsed)
}
