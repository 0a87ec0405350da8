package repository

import (
	"database/sql"
	"encoding/json"
	"strings"

	"restaurant_finder/db"
	"restaurant_finder/models"
)

// RestaurantFilter narrows the public listing. Empty or "All" fields are
// ignored.
type RestaurantFilter struct {
	Cuisine      string
	Neighborhood string
	PriceTier    string
	Search       string
	Sort         string // rating | reviews | name
}

const restaurantColumns = `id, name, description, hero_image, cuisines, tags, dietary,
	price_tier, rating, review_count, address, neighborhood, city, lat, lng,
	phone, website, schedule, amenities, menu_highlights, gallery,
	sustainability_score, ai_summary`

// ListActive returns active restaurants matching the filter, in sort order.
func ListActive(filter RestaurantFilter) ([]models.Restaurant, error) {
	query := `SELECT ` + restaurantColumns + ` FROM restaurants WHERE status = ?`
	params := []any{"active"}

	if filter.Cuisine != "" && filter.Cuisine != "All" {
		query += ` AND cuisines LIKE ?`
		params = append(params, "%"+filter.Cuisine+"%")
	}
	if filter.Neighborhood != "" && filter.Neighborhood != "All" {
		query += ` AND neighborhood = ?`
		params = append(params, filter.Neighborhood)
	}
	if filter.PriceTier != "" && filter.PriceTier != "All" {
		query += ` AND price_tier = ?`
		params = append(params, filter.PriceTier)
	}
	if filter.Search != "" {
		query += ` AND (name LIKE ? OR description LIKE ? OR neighborhood LIKE ?)`
		like := "%" + filter.Search + "%"
		params = append(params, like, like, like)
	}

	switch filter.Sort {
	case "reviews":
		query += ` ORDER BY review_count DESC`
	case "name":
		query += ` ORDER BY name ASC`
	default:
		query += ` ORDER BY rating DESC`
	}

	rows, err := db.DB.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *r)
	}
	return restaurants, rows.Err()
}

// GetActiveByID loads one active restaurant and bumps its view counter.
func GetActiveByID(id string) (*models.Restaurant, error) {
	row := db.DB.QueryRow(
		`SELECT `+restaurantColumns+` FROM restaurants WHERE id = ? AND status = ?`, id, "active")
	r, err := scanRestaurant(row)
	if err != nil {
		return nil, err
	}

	// view count feeds the cuisine demand recompute, a lost increment is harmless
	_, _ = db.DB.Exec(`UPDATE restaurants SET views = views + 1 WHERE id = ?`, id)

	return r, nil
}

// FilterOptions lists the distinct cuisines and neighborhoods of active
// restaurants for the browse page dropdowns.
func FilterOptions() (cuisines []string, neighborhoods []string, err error) {
	rows, err := db.DB.Query(`
		SELECT DISTINCT json_each.value
		FROM restaurants, json_each(cuisines)
		WHERE status = 'active'
	`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, nil, err
		}
		cuisines = append(cuisines, c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	nrows, err := db.DB.Query(`
		SELECT DISTINCT neighborhood
		FROM restaurants
		WHERE status = 'active' AND neighborhood != ''
		ORDER BY neighborhood
	`)
	if err != nil {
		return nil, nil, err
	}
	defer nrows.Close()
	for nrows.Next() {
		var n string
		if err := nrows.Scan(&n); err != nil {
			return nil, nil, err
		}
		neighborhoods = append(neighborhoods, n)
	}
	return cuisines, neighborhoods, nrows.Err()
}

// ListMenu returns the available menu items of a restaurant.
func ListMenu(restaurantID string) ([]models.MenuItem, error) {
	rows, err := db.DB.Query(`
		SELECT id, restaurant_id, name, category, price, description, is_available
		FROM menu_items
		WHERE restaurant_id = ? AND is_available = 1
		ORDER BY category, name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		var available int
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Category,
			&item.Price, &item.Description, &available); err != nil {
			return nil, err
		}
		item.IsAvailable = available == 1
		items = append(items, item)
	}
	return items, rows.Err()
}

// ViewsByCuisine aggregates accumulated view counts per cuisine tag. Used by
// the scheduler to refresh the cuisine demand insight.
func ViewsByCuisine() (map[string]int64, error) {
	rows, err := db.DB.Query(`
		SELECT json_each.value, SUM(views)
		FROM restaurants, json_each(cuisines)
		WHERE status = 'active'
		GROUP BY json_each.value
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make(map[string]int64)
	for rows.Next() {
		var cuisine string
		var total int64
		if err := rows.Scan(&cuisine, &total); err != nil {
			return nil, err
		}
		views[cuisine] = total
	}
	return views, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRestaurant maps one row onto the model, decoding the JSON columns.
func scanRestaurant(row rowScanner) (*models.Restaurant, error) {
	var r models.Restaurant
	var cuisines, tags, dietary, schedule, amenities, highlights, gallery string
	var website sql.NullString

	err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.HeroImage,
		&cuisines, &tags, &dietary,
		&r.PriceTier, &r.Rating, &r.ReviewCount,
		&r.Location.Address, &r.Location.Neighborhood, &r.Location.City,
		&r.Location.Coordinates.Lat, &r.Location.Coordinates.Lng,
		&r.Contact.Phone, &website,
		&schedule, &amenities, &highlights, &gallery,
		&r.SustainabilityScore, &r.AISummary,
	)
	if err != nil {
		return nil, err
	}

	r.Contact.Website = website.String
	_ = json.Unmarshal([]byte(cuisines), &r.Cuisines)
	_ = json.Unmarshal([]byte(tags), &r.Tags)
	_ = json.Unmarshal([]byte(dietary), &r.Dietary)
	_ = json.Unmarshal([]byte(schedule), &r.Schedule)
	_ = json.Unmarshal([]byte(amenities), &r.Amenities)
	_ = json.Unmarshal([]byte(highlights), &r.MenuHighlights)
	_ = json.Unmarshal([]byte(gallery), &r.Gallery)

	return &r, nil
}

// SlugifyID derives a restaurant id from its name when none is provided.
func SlugifyID(name string) string {
	var b strings.Builder
	lastDash := true
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			b.WriteRune(c)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
