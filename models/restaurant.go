package models

// Price tiers, ordered from cheapest to most expensive.
const (
	TierLow  = "$"
	TierMid  = "$$"
	TierHigh = "$$$"
)

// ValidTier reports whether tier is one of the three known price tiers.
func ValidTier(tier string) bool {
	return tier == TierLow || tier == TierMid || tier == TierHigh
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address      string      `json:"address"`
	Neighborhood string      `json:"neighborhood"`
	City         string      `json:"city"`
	Coordinates  Coordinates `json:"coordinates"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"`
}

// ScheduleEntry is a weekly opening-hours slot, e.g. {"Mon-Thu", "11:00 - 23:00"}.
type ScheduleEntry struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

type MenuHighlight struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// Restaurant is a catalogue record. Loaded once at startup and treated as
// immutable for the lifetime of a request.
type Restaurant struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	HeroImage           string          `json:"heroImage"`
	Cuisines            []string        `json:"cuisines"`
	Tags                []string        `json:"tags"`
	Dietary             []string        `json:"dietary"`
	PriceTier           string          `json:"priceTier"`
	Rating              float64         `json:"rating"`
	ReviewCount         int             `json:"reviewCount"`
	Location            Location        `json:"location"`
	Contact             Contact         `json:"contact"`
	Schedule            []ScheduleEntry `json:"schedule"`
	Amenities           []string        `json:"amenities"`
	MenuHighlights      []MenuHighlight `json:"menuHighlights"`
	Gallery             []string        `json:"gallery"`
	SustainabilityScore int             `json:"sustainabilityScore"`
	AISummary           string          `json:"aiSummary"`
}

// Valid checks the catalogue invariants: non-empty id and name, a known
// price tier, and rating/sustainability inside their bounds. Records that
// fail are skipped by the scorer rather than failing the whole request.
func (r *Restaurant) Valid() bool {
	if r.ID == "" || r.Name == "" {
		return false
	}
	if !ValidTier(r.PriceTier) {
		return false
	}
	if r.Rating < 0 || r.Rating > 5 {
		return false
	}
	if r.SustainabilityScore < 0 || r.SustainabilityScore > 100 {
		return false
	}
	return r.ReviewCount >= 0
}

// MenuItem is a full menu row managed through the admin panel.
type MenuItem struct {
	ID           int64   `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	IsAvailable  bool    `json:"isAvailable"`
}
