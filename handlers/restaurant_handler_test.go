package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_finder/models"
	"restaurant_finder/repository"
)

func browseRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/restaurants", ListRestaurantsHandler)
	r.Get("/api/restaurants/filters/options", FilterOptionsHandler)
	r.Get("/api/restaurants/{id}", GetRestaurantHandler)
	return r
}

func seedHandlerRestaurant(t *testing.T, id, name string) {
	t.Helper()
	r := &repository.AdminRestaurant{}
	r.ID = id
	r.Name = name
	r.Cuisines = []string{"Turkmen"}
	r.PriceTier = models.TierMid
	r.Rating = 4.2
	r.Location.Neighborhood = "Berzengi"
	_, err := repository.CreateRestaurant(r)
	require.NoError(t, err)
}

func TestListRestaurantsHandlerEmpty(t *testing.T) {
	setupHandlerDB(t)

	rec := httptest.NewRecorder()
	browseRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	// an empty catalogue is an empty array, never null
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListRestaurantsHandler(t *testing.T) {
	setupHandlerDB(t)
	seedHandlerRestaurant(t, "tandyr", "Green Tandyr")
	seedHandlerRestaurant(t, "terrace", "Saffron Terrace")

	rec := httptest.NewRecorder()
	browseRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants?search=Tandyr", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var restaurants []models.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 1)
	assert.Equal(t, "tandyr", restaurants[0].ID)
}

func TestFilterOptionsHandler(t *testing.T) {
	setupHandlerDB(t)
	seedHandlerRestaurant(t, "tandyr", "Green Tandyr")

	rec := httptest.NewRecorder()
	browseRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants/filters/options", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var options struct {
		Cuisines      []string `json:"cuisines"`
		Neighborhoods []string `json:"neighborhoods"`
		PriceTiers    []string `json:"priceTiers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))

	assert.Equal(t, []string{"All", "Turkmen"}, options.Cuisines)
	assert.Equal(t, []string{"All", "Berzengi"}, options.Neighborhoods)
	assert.Equal(t, []string{"All", models.TierLow, models.TierMid, models.TierHigh}, options.PriceTiers)
}

func TestGetRestaurantHandler(t *testing.T) {
	setupHandlerDB(t)
	seedHandlerRestaurant(t, "tandyr", "Green Tandyr")

	rec := httptest.NewRecorder()
	browseRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants/tandyr", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Restaurant models.Restaurant `json:"restaurant"`
		FullMenu   []models.MenuItem `json:"fullMenu"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Green Tandyr", payload.Restaurant.Name)
	assert.NotNil(t, payload.FullMenu)
}

func TestGetRestaurantHandlerNotFound(t *testing.T) {
	setupHandlerDB(t)

	rec := httptest.NewRecorder()
	browseRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/restaurants/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.CodeNotFound, envelope.Code)
}
