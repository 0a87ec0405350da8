package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"restaurant_finder/models"
	"restaurant_finder/repository"
	"restaurant_finder/utils"
)

// ListRestaurantsHandler godoc
// @Summary List active restaurants
// @Description Returns active restaurants filtered by cuisine, neighborhood, price tier and search text
// @Tags restaurants
// @Produce json
// @Param cuisine query string false "cuisine filter"
// @Param neighborhood query string false "neighborhood filter"
// @Param priceRange query string false "price tier filter"
// @Param search query string false "free-text search"
// @Param sort query string false "rating | reviews | name"
// @Success 200 {array} models.Restaurant
// @Router /api/restaurants [get]
func ListRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	filter := repository.RestaurantFilter{
		Cuisine:      r.URL.Query().Get("cuisine"),
		Neighborhood: r.URL.Query().Get("neighborhood"),
		PriceTier:    r.URL.Query().Get("priceRange"),
		Search:       r.URL.Query().Get("search"),
		Sort:         r.URL.Query().Get("sort"),
	}

	restaurants, err := repository.ListActive(filter)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	utils.WriteJSON(w, http.StatusOK, restaurants)
}

// FilterOptionsHandler godoc
// @Summary Filter options for the browse page
// @Tags restaurants
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/restaurants/filters/options [get]
func FilterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	cuisines, neighborhoods, err := repository.FilterOptions()
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"cuisines":      append([]string{"All"}, cuisines...),
		"neighborhoods": append([]string{"All"}, neighborhoods...),
		"priceTiers":    []string{"All", models.TierLow, models.TierMid, models.TierHigh},
	})
}

// GetRestaurantHandler godoc
// @Summary Get one restaurant with its full menu
// @Description Also increments the restaurant's view counter
// @Tags restaurants
// @Produce json
// @Param id path string true "restaurant id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIResponse
// @Router /api/restaurants/{id} [get]
func GetRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	restaurant, err := repository.GetActiveByID(id)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteJSON(w, http.StatusNotFound, models.NewErrorResponse(models.CodeNotFound, map[string]interface{}{"id": id}))
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}

	menu, err := repository.ListMenu(id)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
		"fullMenu":   menu,
	})
}
