package models

import "time"

// AdminUser is a row of the admin_users table. Credentials are checked as
// stored; token issuance happens in the auth service.
type AdminUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"-"`
}

// Category is an admin-managed restaurant category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DashboardStats aggregates the admin dashboard numbers.
type DashboardStats struct {
	TotalRestaurants  int                 `json:"totalRestaurants"`
	ActiveRestaurants int                 `json:"activeRestaurants"`
	TotalCategories   int                 `json:"totalCategories"`
	TotalViews        int64               `json:"totalViews"`
	AvgRating         float64             `json:"avgRating"`
	ByNeighborhood    []NeighborhoodCount `json:"byNeighborhood"`
	ByPriceTier       []PriceTierCount    `json:"byPriceTier"`
	TopRated          []RestaurantBrief   `json:"topRated"`
	RecentlyAdded     []RestaurantBrief   `json:"recentlyAdded"`
}

type NeighborhoodCount struct {
	Neighborhood string `json:"neighborhood"`
	Count        int    `json:"count"`
}

type PriceTierCount struct {
	PriceTier string `json:"priceTier"`
	Count     int    `json:"count"`
}

// RestaurantBrief is the condensed listing used by dashboard widgets.
type RestaurantBrief struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Rating       float64   `json:"rating,omitempty"`
	ReviewCount  int       `json:"reviewCount,omitempty"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}
