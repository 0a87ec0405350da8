package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"restaurant_finder/config"
	_ "restaurant_finder/docs" // swagger annotations
	"restaurant_finder/services"
	"restaurant_finder/utils"
)

// RegisterRoutes mounts the public, concierge and admin APIs.
func RegisterRoutes(r *chi.Mux, cfg *config.Config,
	concierge *services.ConciergeService,
	insights *services.InsightsService,
	auth *services.AuthService) {

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"name":    "Gadam Restaurant Finder API",
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// public browse API
	r.Get("/api/restaurants", ListRestaurantsHandler)
	r.Get("/api/restaurants/filters/options", FilterOptionsHandler) // before /{id}
	r.Get("/api/restaurants/{id}", GetRestaurantHandler)

	// insights
	r.Get("/api/insights/metrics", func(w http.ResponseWriter, r *http.Request) {
		InsightMetricsHandler(w, r, insights)
	})
	r.Get("/api/insights/cuisine-demand", func(w http.ResponseWriter, r *http.Request) {
		CuisineDemandHandler(w, r, insights)
	})

	// concierge
	r.Post("/api/ai/suggest", func(w http.ResponseWriter, r *http.Request) {
		SuggestHandler(w, r, cfg, concierge)
	})

	// admin
	r.Post("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		LoginHandler(w, r, auth)
	})
	r.Get("/api/admin/stats", RequireAdmin(auth, StatsHandler))
	r.Get("/api/admin/categories", RequireAdmin(auth, ListCategoriesHandler))
	r.Post("/api/admin/categories", RequireAdmin(auth, CreateCategoryHandler))
	r.Delete("/api/admin/categories/{id}", RequireAdmin(auth, DeleteCategoryHandler))
	r.Get("/api/admin/restaurants", RequireAdmin(auth, ListAdminRestaurantsHandler))
	r.Post("/api/admin/restaurants", RequireAdmin(auth, CreateRestaurantHandler))
	r.Get("/api/admin/restaurants/{id}", RequireAdmin(auth, GetAdminRestaurantHandler))
	r.Put("/api/admin/restaurants/{id}", RequireAdmin(auth, UpdateRestaurantHandler))
	r.Delete("/api/admin/restaurants/{id}", RequireAdmin(auth, DeleteRestaurantHandler))
}
