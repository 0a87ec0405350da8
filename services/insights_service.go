package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"restaurant_finder/logger"
	"restaurant_finder/models"
	"restaurant_finder/repository"
)

// InsightsService serves the dashboard metrics and cuisine demand. Metrics
// come straight from the seed data; demand starts from the seed baseline and
// is periodically re-weighted against accumulated view counts.
type InsightsService struct {
	mu      sync.RWMutex
	metrics []models.InsightMetric
	demand  []models.CuisineDemand
}

// NewInsightsService loads insights-metrics.json and cuisine-demand.json
// from dir. Missing files leave the corresponding section empty rather than
// failing startup.
func NewInsightsService(dir string) *InsightsService {
	s := &InsightsService{
		metrics: []models.InsightMetric{},
		demand:  []models.CuisineDemand{},
	}

	if raw, err := os.ReadFile(filepath.Join(dir, "insights-metrics.json")); err == nil {
		if err := json.Unmarshal(raw, &s.metrics); err != nil {
			logger.Warn("Failed to parse insights-metrics.json", "error", err)
		}
	}
	if raw, err := os.ReadFile(filepath.Join(dir, "cuisine-demand.json")); err == nil {
		if err := json.Unmarshal(raw, &s.demand); err != nil {
			logger.Warn("Failed to parse cuisine-demand.json", "error", err)
		}
	}

	logger.Info("Insights loaded", "metrics", len(s.metrics), "cuisines", len(s.demand))
	return s
}

// Metrics returns the dashboard headline figures.
func (s *InsightsService) Metrics() []models.InsightMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

// CuisineDemand returns the current demand ranking, highest first.
func (s *InsightsService) CuisineDemand() []models.CuisineDemand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.demand
}

// RefreshDemand re-weights the demand scores using the view counts the
// browse API has accumulated since startup. The seed score keeps the larger
// share so a handful of clicks cannot flip the ranking.
func (s *InsightsService) RefreshDemand() error {
	views, err := repository.ViewsByCuisine()
	if err != nil {
		return err
	}

	var maxViews int64
	for _, v := range views {
		if v > maxViews {
			maxViews = v
		}
	}
	if maxViews == 0 {
		return nil // nothing observed yet, keep the baseline
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	baseline := make(map[string]float64, len(s.demand))
	for _, d := range s.demand {
		baseline[d.Cuisine] = d.DemandScore
	}

	updated := make([]models.CuisineDemand, 0, len(baseline))
	seen := make(map[string]bool, len(baseline))
	for cuisine, base := range baseline {
		observed := float64(views[cuisine]) / float64(maxViews) * 100
		updated = append(updated, models.CuisineDemand{
			Cuisine:     cuisine,
			DemandScore: base*0.7 + observed*0.3,
		})
		seen[cuisine] = true
	}
	for cuisine, v := range views {
		if seen[cuisine] {
			continue
		}
		updated = append(updated, models.CuisineDemand{
			Cuisine:     cuisine,
			DemandScore: float64(v) / float64(maxViews) * 100 * 0.3,
		})
	}

	sort.Slice(updated, func(i, j int) bool {
		return updated[i].DemandScore > updated[j].DemandScore
	})

	s.demand = updated
	logger.Info("Cuisine demand refreshed", "cuisines", len(updated), "max_views", maxViews)
	return nil
}
