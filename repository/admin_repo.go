package repository

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"restaurant_finder/db"
	"restaurant_finder/models"
)

// FindAdmin checks credentials against the admin_users table. Returns
// sql.ErrNoRows when the pair does not match.
func FindAdmin(username, password string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := db.DB.QueryRow(`
		SELECT id, username, name FROM admin_users WHERE username = ? AND password = ?
	`, username, password).Scan(&admin.ID, &admin.Username, &admin.Name)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// AdminRestaurant is the admin listing row: the full record plus the
// management fields hidden from the public API.
type AdminRestaurant struct {
	models.Restaurant
	Status    string    `json:"status"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const adminColumns = restaurantColumns + `, status, views, created_at, updated_at`

// ListAdminRestaurants returns restaurants of all statuses, newest first.
func ListAdminRestaurants(status, search string) ([]AdminRestaurant, error) {
	query := `SELECT ` + adminColumns + ` FROM restaurants WHERE 1=1`
	var params []any

	if status != "" && status != "all" {
		query += ` AND status = ?`
		params = append(params, status)
	}
	if search != "" {
		query += ` AND (name LIKE ? OR neighborhood LIKE ?)`
		like := "%" + search + "%"
		params = append(params, like, like)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]AdminRestaurant, 0)
	for rows.Next() {
		r, err := scanAdminRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *r)
	}
	return restaurants, rows.Err()
}

// GetAdminRestaurant loads one restaurant regardless of status.
func GetAdminRestaurant(id string) (*AdminRestaurant, error) {
	row := db.DB.QueryRow(`SELECT `+adminColumns+` FROM restaurants WHERE id = ?`, id)
	return scanAdminRestaurant(row)
}

// CreateRestaurant inserts a new record. The id is derived from the name
// when absent. Returns the id used.
func CreateRestaurant(r *AdminRestaurant) (string, error) {
	if r.ID == "" {
		r.ID = SlugifyID(r.Name)
	}
	if r.PriceTier == "" {
		r.PriceTier = models.TierMid
	}
	if r.Status == "" {
		r.Status = "active"
	}

	cuisines, _ := json.Marshal(orEmpty(r.Cuisines))
	tags, _ := json.Marshal(orEmpty(r.Tags))
	dietary, _ := json.Marshal(orEmpty(r.Dietary))
	schedule, _ := json.Marshal(r.Schedule)
	amenities, _ := json.Marshal(orEmpty(r.Amenities))
	highlights, _ := json.Marshal(r.MenuHighlights)
	gallery, _ := json.Marshal(orEmpty(r.Gallery))

	_, err := db.DB.Exec(`
		INSERT INTO restaurants (
			id, name, description, hero_image, cuisines, tags, dietary,
			price_tier, rating, review_count, address, neighborhood, city,
			lat, lng, phone, website, schedule, amenities, menu_highlights,
			gallery, sustainability_score, ai_summary, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.ID, r.Name, r.Description, r.HeroImage,
		string(cuisines), string(tags), string(dietary),
		r.PriceTier, r.Rating, r.ReviewCount,
		r.Location.Address, r.Location.Neighborhood, r.Location.City,
		r.Location.Coordinates.Lat, r.Location.Coordinates.Lng,
		r.Contact.Phone, nullable(r.Contact.Website),
		string(schedule), string(amenities), string(highlights), string(gallery),
		r.SustainabilityScore, r.AISummary, r.Status,
	)
	return r.ID, err
}

// UpdateRestaurant overwrites an existing record.
func UpdateRestaurant(id string, r *AdminRestaurant) error {
	cuisines, _ := json.Marshal(orEmpty(r.Cuisines))
	tags, _ := json.Marshal(orEmpty(r.Tags))
	dietary, _ := json.Marshal(orEmpty(r.Dietary))
	schedule, _ := json.Marshal(r.Schedule)
	amenities, _ := json.Marshal(orEmpty(r.Amenities))
	highlights, _ := json.Marshal(r.MenuHighlights)
	gallery, _ := json.Marshal(orEmpty(r.Gallery))

	_, err := db.DB.Exec(`
		UPDATE restaurants SET
			name = ?, description = ?, hero_image = ?, cuisines = ?, tags = ?,
			dietary = ?, price_tier = ?, rating = ?, review_count = ?,
			address = ?, neighborhood = ?, city = ?, lat = ?, lng = ?,
			phone = ?, website = ?, schedule = ?, amenities = ?,
			menu_highlights = ?, gallery = ?, sustainability_score = ?,
			ai_summary = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		r.Name, r.Description, r.HeroImage,
		string(cuisines), string(tags), string(dietary),
		r.PriceTier, r.Rating, r.ReviewCount,
		r.Location.Address, r.Location.Neighborhood, r.Location.City,
		r.Location.Coordinates.Lat, r.Location.Coordinates.Lng,
		r.Contact.Phone, nullable(r.Contact.Website),
		string(schedule), string(amenities), string(highlights), string(gallery),
		r.SustainabilityScore, r.AISummary, r.Status,
		id,
	)
	return err
}

// DeleteRestaurant removes a restaurant and, via the foreign key, its menu.
func DeleteRestaurant(id string) error {
	_, err := db.DB.Exec(`DELETE FROM restaurants WHERE id = ?`, id)
	return err
}

// RestaurantExists reports whether any restaurant has the given id.
func RestaurantExists(id string) (bool, error) {
	var count int
	err := db.DB.QueryRow(`SELECT COUNT(*) FROM restaurants WHERE id = ?`, id).Scan(&count)
	return count > 0, err
}

// Stats aggregates the admin dashboard numbers in one pass.
func Stats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		ByNeighborhood: make([]models.NeighborhoodCount, 0),
		ByPriceTier:    make([]models.PriceTierCount, 0),
		TopRated:       make([]models.RestaurantBrief, 0),
		RecentlyAdded:  make([]models.RestaurantBrief, 0),
	}

	if err := db.DB.QueryRow(`SELECT COUNT(*) FROM restaurants`).Scan(&stats.TotalRestaurants); err != nil {
		return nil, err
	}
	if err := db.DB.QueryRow(`SELECT COUNT(*) FROM restaurants WHERE status = 'active'`).Scan(&stats.ActiveRestaurants); err != nil {
		return nil, err
	}
	if err := db.DB.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&stats.TotalCategories); err != nil {
		return nil, err
	}

	var totalViews sql.NullInt64
	if err := db.DB.QueryRow(`SELECT SUM(views) FROM restaurants`).Scan(&totalViews); err != nil {
		return nil, err
	}
	stats.TotalViews = totalViews.Int64

	var avgRating sql.NullFloat64
	if err := db.DB.QueryRow(`SELECT AVG(rating) FROM restaurants WHERE status = 'active'`).Scan(&avgRating); err != nil {
		return nil, err
	}
	stats.AvgRating = avgRating.Float64

	rows, err := db.DB.Query(`
		SELECT neighborhood, COUNT(*)
		FROM restaurants WHERE status = 'active'
		GROUP BY neighborhood ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var nc models.NeighborhoodCount
		if err := rows.Scan(&nc.Neighborhood, &nc.Count); err != nil {
			return nil, err
		}
		stats.ByNeighborhood = append(stats.ByNeighborhood, nc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trows, err := db.DB.Query(`
		SELECT price_tier, COUNT(*)
		FROM restaurants WHERE status = 'active'
		GROUP BY price_tier
	`)
	if err != nil {
		return nil, err
	}
	defer trows.Close()
	for trows.Next() {
		var tc models.PriceTierCount
		if err := trows.Scan(&tc.PriceTier, &tc.Count); err != nil {
			return nil, err
		}
		stats.ByPriceTier = append(stats.ByPriceTier, tc)
	}
	if err := trows.Err(); err != nil {
		return nil, err
	}

	rrows, err := db.DB.Query(`
		SELECT id, name, rating, review_count
		FROM restaurants WHERE status = 'active'
		ORDER BY rating DESC LIMIT 5
	`)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var brief models.RestaurantBrief
		if err := rrows.Scan(&brief.ID, &brief.Name, &brief.Rating, &brief.ReviewCount); err != nil {
			return nil, err
		}
		stats.TopRated = append(stats.TopRated, brief)
	}
	if err := rrows.Err(); err != nil {
		return nil, err
	}

	arows, err := db.DB.Query(`
		SELECT id, name, neighborhood, created_at
		FROM restaurants
		ORDER BY created_at DESC LIMIT 5
	`)
	if err != nil {
		return nil, err
	}
	defer arows.Close()
	for arows.Next() {
		var brief models.RestaurantBrief
		var created string
		if err := arows.Scan(&brief.ID, &brief.Name, &brief.Neighborhood, &created); err != nil {
			return nil, err
		}
		brief.CreatedAt = parseSQLiteTime(created)
		stats.RecentlyAdded = append(stats.RecentlyAdded, brief)
	}
	return stats, arows.Err()
}

func scanAdminRestaurant(row rowScanner) (*AdminRestaurant, error) {
	var r AdminRestaurant
	var cuisines, tags, dietary, schedule, amenities, highlights, gallery string
	var website sql.NullString
	var created, updated string

	err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.HeroImage,
		&cuisines, &tags, &dietary,
		&r.PriceTier, &r.Rating, &r.ReviewCount,
		&r.Location.Address, &r.Location.Neighborhood, &r.Location.City,
		&r.Location.Coordinates.Lat, &r.Location.Coordinates.Lng,
		&r.Contact.Phone, &website,
		&schedule, &amenities, &highlights, &gallery,
		&r.SustainabilityScore, &r.AISummary,
		&r.Status, &r.Views, &created, &updated,
	)
	if err != nil {
		return nil, err
	}

	r.Contact.Website = website.String
	r.CreatedAt = parseSQLiteTime(created)
	r.UpdatedAt = parseSQLiteTime(updated)
	_ = json.Unmarshal([]byte(cuisines), &r.Cuisines)
	_ = json.Unmarshal([]byte(tags), &r.Tags)
	_ = json.Unmarshal([]byte(dietary), &r.Dietary)
	_ = json.Unmarshal([]byte(schedule), &r.Schedule)
	_ = json.Unmarshal([]byte(amenities), &r.Amenities)
	_ = json.Unmarshal([]byte(highlights), &r.MenuHighlights)
	_ = json.Unmarshal([]byte(gallery), &r.Gallery)

	return &r, nil
}

// parseSQLiteTime handles the formats CURRENT_TIMESTAMP produces.
func parseSQLiteTime(value string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t
		}
	}
	return time.Time{}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
