package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_finder/config"
	"restaurant_finder/models"
	"restaurant_finder/services"
)

func testConfig() *config.Config {
	var cfg config.Config
	cfg.Concierge.MinQuestionLen = 4
	cfg.Concierge.MaxSuggestions = 3
	return &cfg
}

func testCatalogue() *services.JSONCatalogue {
	return services.NewStaticCatalogue([]models.Restaurant{
		{
			ID: "tandyr", Name: "Green Tandyr",
			Cuisines: []string{"Plant-based"}, Dietary: []string{"Vegan"},
			PriceTier: models.TierLow, Rating: 4.4, ReviewCount: 287,
			Location: models.Location{Neighborhood: "Berzengi", City: "Ashgabat"},
		},
		{
			ID: "terrace", Name: "Saffron Terrace",
			Cuisines:  []string{"Contemporary European"},
			PriceTier: models.TierHigh, Rating: 4.8, ReviewCount: 412,
			Location: models.Location{Neighborhood: "Old Town", City: "Ashgabat"},
		},
	})
}

func postSuggest(t *testing.T, cfg *config.Config, concierge *services.ConciergeService, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/suggest", strings.NewReader(body))
	rec := httptest.NewRecorder()
	SuggestHandler(rec, req, cfg, concierge)
	return rec
}

func TestSuggestHandlerRejectsBadPayloads(t *testing.T) {
	cfg := testConfig()
	concierge := services.NewConciergeService(testCatalogue(), nil, nil, cfg.Concierge.MaxSuggestions)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"question": `},
		{"missing question", `{}`},
		{"too short", `{"question":"hi"}`},
		{"whitespace only", `{"question":"       a      "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSuggest(t, cfg, concierge, tt.body)

			var envelope models.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, models.CodeInvalidParams, envelope.Code)
		})
	}
}

func TestSuggestHandlerAnswers(t *testing.T) {
	cfg := testConfig()
	concierge := services.NewConciergeService(testCatalogue(), nil, services.NewRandomSource(7), cfg.Concierge.MaxSuggestions)

	rec := postSuggest(t, cfg, concierge, `{"question":"cheap vegan dinner","context":{"page":"home"}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConciergeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "Green Tandyr", resp.Suggestions[0].Title)
	assert.Equal(t, models.SourceTemplate, resp.Source)
	assert.Positive(t, resp.TokensUsed)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(650))
}
