package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"restaurant_finder/models"
	"restaurant_finder/repository"
	"restaurant_finder/services"
	"restaurant_finder/utils"
)

// LoginHandler godoc
// @Summary Admin login
// @Description Checks credentials and returns an opaque session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "credentials"
// @Success 200 {object} models.APIResponse
// @Failure 401 {object} models.APIResponse "invalid credentials"
// @Router /api/admin/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request, auth *services.AuthService) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{})
		return
	}
	if err := validate.Struct(&req); err != nil {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"fields": "username, password",
		})
		return
	}

	token, admin, err := auth.Login(req.Username, req.Password)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteJSON(w, http.StatusUnauthorized,
				models.NewErrorResponse(models.CodeInvalidCredentials, map[string]interface{}{}))
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"token": token,
		"user":  admin,
	})
}

// RequireAdmin wraps admin endpoints with the bearer-token session check.
func RequireAdmin(auth *services.AuthService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !auth.Validate(token) {
			utils.WriteJSON(w, http.StatusUnauthorized,
				models.NewErrorResponse(models.CodeUnauthorized, map[string]interface{}{}))
			return
		}
		next(w, r)
	}
}

// StatsHandler godoc
// @Summary Admin dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /api/admin/stats [get]
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := repository.Stats()
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, stats)
}

// ListCategoriesHandler godoc
// @Summary List categories
// @Tags admin
// @Produce json
// @Success 200 {array} models.Category
// @Router /api/admin/categories [get]
func ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := repository.ListCategories()
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, categories)
}

// CreateCategoryHandler godoc
// @Summary Add a category
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} models.Category
// @Failure 400 {object} models.APIResponse "duplicate or missing name"
// @Router /api/admin/categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{"param": "name"})
		return
	}
	if req.Icon == "" {
		req.Icon = "🍽️"
	}

	id, err := repository.CreateCategory(req.Name, req.Icon)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			utils.WriteErrorResponse(w, models.CodeDuplicate, map[string]interface{}{"name": req.Name})
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, models.Category{ID: id, Name: req.Name, Icon: req.Icon})
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Tags admin
// @Param id path int true "category id"
// @Success 200 {object} models.APIResponse
// @Router /api/admin/categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{"param": "id"})
		return
	}
	if err := repository.DeleteCategory(id); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{})
}

// ListAdminRestaurantsHandler godoc
// @Summary List restaurants of any status
// @Tags admin
// @Produce json
// @Param status query string false "active | hidden | all"
// @Param search query string false "name or neighborhood search"
// @Success 200 {array} repository.AdminRestaurant
// @Router /api/admin/restaurants [get]
func ListAdminRestaurantsHandler(w http.ResponseWriter, r *http.Request) {
	restaurants, err := repository.ListAdminRestaurants(
		r.URL.Query().Get("status"),
		r.URL.Query().Get("search"),
	)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, restaurants)
}

// GetAdminRestaurantHandler godoc
// @Summary Get one restaurant regardless of status
// @Tags admin
// @Produce json
// @Param id path string true "restaurant id"
// @Success 200 {object} repository.AdminRestaurant
// @Failure 404 {object} models.APIResponse
// @Router /api/admin/restaurants/{id} [get]
func GetAdminRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	restaurant, err := repository.GetAdminRestaurant(id)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteJSON(w, http.StatusNotFound,
				models.NewErrorResponse(models.CodeNotFound, map[string]interface{}{"id": id}))
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, restaurant)
}

// CreateRestaurantHandler godoc
// @Summary Create a restaurant
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse "missing name or duplicate id"
// @Router /api/admin/restaurants [post]
func CreateRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	var restaurant repository.AdminRestaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil || restaurant.Name == "" {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{"param": "name"})
		return
	}

	id, err := repository.CreateRestaurant(&restaurant)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			utils.WriteErrorResponse(w, models.CodeDuplicate, map[string]interface{}{"id": id})
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{"id": id})
}

// UpdateRestaurantHandler godoc
// @Summary Update a restaurant
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "restaurant id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/admin/restaurants/{id} [put]
func UpdateRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	exists, err := repository.RestaurantExists(id)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	if !exists {
		utils.WriteJSON(w, http.StatusNotFound,
			models.NewErrorResponse(models.CodeNotFound, map[string]interface{}{"id": id}))
		return
	}

	var restaurant repository.AdminRestaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{})
		return
	}

	if err := repository.UpdateRestaurant(id, &restaurant); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{"id": id})
}

// DeleteRestaurantHandler godoc
// @Summary Delete a restaurant and its menu
// @Tags admin
// @Param id path string true "restaurant id"
// @Success 200 {object} models.APIResponse
// @Router /api/admin/restaurants/{id} [delete]
func DeleteRestaurantHandler(w http.ResponseWriter, r *http.Request) {
	if err := repository.DeleteRestaurant(chi.URLParam(r, "id")); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{})
}
