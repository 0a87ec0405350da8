package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant_finder/models"
)

func TestDeriveIntentFlags(t *testing.T) {
	intent := DeriveIntent("somewhere vegan for a late night bite", nil)

	assert.True(t, intent.WantsVegan)
	assert.True(t, intent.WantsLateNight)
	assert.False(t, intent.WantsRomantic)
	assert.False(t, intent.WantsHalal)
	assert.Contains(t, intent.CuisineHints, "Plant-based")
}

func TestDeriveIntentBudgetPriority(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{"cheap wins over fancy", "a cheap anniversary dinner", models.TierLow},
		{"mid range", "casual weekday lunch spot", models.TierMid},
		{"fancy alone", "rooftop fine dining for a proposal", models.TierHigh},
		{"no budget words", "something with good music", ""},
		{"under amount", "dinner under 100 manat", models.TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := DeriveIntent(tt.question, nil)
			assert.Equal(t, tt.want, intent.Budget)
		})
	}
}

func TestDeriveIntentCuisineHints(t *testing.T) {
	intent := DeriveIntent("ramen or maybe an oyster bar after the smokehouse closes", nil)

	assert.ElementsMatch(t, []string{"Japanese", "Smokehouse", "Seafood"}, intent.CuisineHints)
}

func TestDeriveIntentNeighborhoods(t *testing.T) {
	neighborhoods := []string{"Berzengi", "Innovation Hub", "Old Town"}
	intent := DeriveIntent("Quiet table in OLD TOWN tonight", neighborhoods)

	assert.Equal(t, []string{"Old Town"}, intent.NeighborhoodHints)
}

func TestDeriveIntentEmptyQuestion(t *testing.T) {
	intent := DeriveIntent("", []string{"Berzengi"})

	assert.False(t, intent.WantsVegan)
	assert.False(t, intent.WantsRomantic)
	assert.False(t, intent.WantsFamily)
	assert.False(t, intent.WantsWork)
	assert.False(t, intent.WantsLateNight)
	assert.False(t, intent.WantsHalal)
	assert.False(t, intent.WantsSeafood)
	assert.False(t, intent.WantsExperimental)
	assert.Empty(t, intent.Budget)
	assert.NotNil(t, intent.CuisineHints)
	assert.Empty(t, intent.CuisineHints)
	assert.NotNil(t, intent.NeighborhoodHints)
	assert.Empty(t, intent.NeighborhoodHints)
}

func TestDeriveIntentHalalAndSeafood(t *testing.T) {
	intent := DeriveIntent("halal seafood for the whole family", nil)

	assert.True(t, intent.WantsHalal)
	assert.True(t, intent.WantsSeafood)
	assert.True(t, intent.WantsFamily)
	assert.Contains(t, intent.CuisineHints, "Seafood")
	assert.Contains(t, intent.CuisineHints, "Family")
}
