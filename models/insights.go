package models

// InsightMetric is a dashboard headline figure.
type InsightMetric struct {
	Title       string  `json:"title"`
	Value       string  `json:"value"`
	Trend       float64 `json:"trend"`
	Description string  `json:"description"`
}

// CuisineDemand ranks cuisines by observed interest.
type CuisineDemand struct {
	Cuisine     string  `json:"cuisine"`
	DemandScore float64 `json:"demandScore"`
}
