package scheduler

import (
	"time"

	"restaurant_finder/config"
	"restaurant_finder/logger"
	"restaurant_finder/services"
)

// Start launches the background loop that re-weights the cuisine demand
// insight against accumulated view counts.
func Start(cfg *config.Config, insights *services.InsightsService) {
	interval := time.Duration(cfg.Scheduler.DemandRefreshSec) * time.Second

	go run(interval, insights)
	logger.Info("Scheduler started", "demand_refresh_sec", cfg.Scheduler.DemandRefreshSec)
}

func run(interval time.Duration, insights *services.InsightsService) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := insights.RefreshDemand(); err != nil {
			logger.Error("Cuisine demand refresh failed", "error", err)
		}
	}
}
