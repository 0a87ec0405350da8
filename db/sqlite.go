package db

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"restaurant_finder/config"
	"restaurant_finder/models"
)

var (
	DB *sql.DB // database handle
)

const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT DEFAULT '',
    hero_image TEXT DEFAULT '',
    cuisines TEXT DEFAULT '[]',
    tags TEXT DEFAULT '[]',
    dietary TEXT DEFAULT '[]',
    price_tier TEXT DEFAULT '$$',
    rating REAL DEFAULT 0,
    review_count INTEGER DEFAULT 0,
    address TEXT DEFAULT '',
    neighborhood TEXT DEFAULT '',
    city TEXT DEFAULT '',
    lat REAL DEFAULT 0,
    lng REAL DEFAULT 0,
    phone TEXT DEFAULT '',
    website TEXT,
    schedule TEXT DEFAULT '[]',
    amenities TEXT DEFAULT '[]',
    menu_highlights TEXT DEFAULT '[]',
    gallery TEXT DEFAULT '[]',
    sustainability_score INTEGER DEFAULT 70,
    ai_summary TEXT DEFAULT '',
    status TEXT DEFAULT 'active',
    views INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS menu_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    restaurant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT DEFAULT '',
    price REAL DEFAULT 0,
    description TEXT DEFAULT '',
    is_available INTEGER DEFAULT 1,
    FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    icon TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS admin_users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    name TEXT DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_restaurants_status ON restaurants(status);
CREATE INDEX IF NOT EXISTS idx_restaurants_neighborhood ON restaurants(neighborhood);
CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id);
`

// InitSQLite opens the database, creates the schema and seeds it from the
// bundled JSON data on first start.
func InitSQLite(cfg *config.Config) error {
	var err error
	DB, err = sql.Open("sqlite", cfg.DB.Path)
	if err != nil {
		return err
	}

	// modernc.org/sqlite is serialized per connection; a single connection
	// avoids SQLITE_BUSY on concurrent writes.
	DB.SetMaxOpenConns(1)

	if _, err := DB.Exec(schema); err != nil {
		return err
	}
	if _, err := DB.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return err
	}

	return seed(cfg)
}

// seed populates the restaurants table from data/restaurants.json and makes
// sure a default admin account exists. Runs only against an empty table.
func seed(cfg *config.Config) error {
	var count int
	if err := DB.QueryRow(`SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil {
		return err
	}

	if count == 0 {
		raw, err := os.ReadFile(filepath.Join(cfg.Data.Dir, "restaurants.json"))
		if err == nil {
			var restaurants []models.Restaurant
			if err := json.Unmarshal(raw, &restaurants); err != nil {
				return err
			}
			for _, r := range restaurants {
				if err := insertRestaurant(&r); err != nil {
					return err
				}
			}
		}
		// a missing seed file is not fatal, the admin panel can fill the table
	}

	return seedAdmin(cfg)
}

func insertRestaurant(r *models.Restaurant) error {
	cuisines, _ := json.Marshal(r.Cuisines)
	tags, _ := json.Marshal(r.Tags)
	dietary, _ := json.Marshal(r.Dietary)
	schedule, _ := json.Marshal(r.Schedule)
	amenities, _ := json.Marshal(r.Amenities)
	highlights, _ := json.Marshal(r.MenuHighlights)
	gallery, _ := json.Marshal(r.Gallery)

	_, err := DB.Exec(`
		INSERT INTO restaurants (
			id, name, description, hero_image, cuisines, tags, dietary,
			price_tier, rating, review_count, address, neighborhood, city,
			lat, lng, phone, website, schedule, amenities, menu_highlights,
			gallery, sustainability_score, ai_summary, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'active')
	`,
		r.ID, r.Name, r.Description, r.HeroImage,
		string(cuisines), string(tags), string(dietary),
		r.PriceTier, r.Rating, r.ReviewCount,
		r.Location.Address, r.Location.Neighborhood, r.Location.City,
		r.Location.Coordinates.Lat, r.Location.Coordinates.Lng,
		r.Contact.Phone, r.Contact.Website,
		string(schedule), string(amenities), string(highlights), string(gallery),
		r.SustainabilityScore, r.AISummary,
	)
	return err
}

func seedAdmin(cfg *config.Config) error {
	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}
	password := cfg.Admin.Password
	if password == "" {
		password = "admin123"
	}

	var count int
	if err := DB.QueryRow(`SELECT COUNT(*) FROM admin_users WHERE username = ?`, username).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err := DB.Exec(`INSERT INTO admin_users (username, password, name) VALUES (?, ?, ?)`,
		username, password, "Administrator")
	return err
}
