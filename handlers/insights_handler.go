package handlers

import (
	"net/http"

	"restaurant_finder/services"
	"restaurant_finder/utils"
)

// InsightMetricsHandler godoc
// @Summary Dashboard headline metrics
// @Tags insights
// @Produce json
// @Success 200 {array} models.InsightMetric
// @Router /api/insights/metrics [get]
func InsightMetricsHandler(w http.ResponseWriter, r *http.Request, insights *services.InsightsService) {
	utils.WriteJSON(w, http.StatusOK, insights.Metrics())
}

// CuisineDemandHandler godoc
// @Summary Cuisine demand ranking
// @Description Seed baseline re-weighted on an interval against live view counts
// @Tags insights
// @Produce json
// @Success 200 {array} models.CuisineDemand
// @Router /api/insights/cuisine-demand [get]
func CuisineDemandHandler(w http.ResponseWriter, r *http.Request, insights *services.InsightsService) {
	utils.WriteJSON(w, http.StatusOK, insights.CuisineDemand())
}
