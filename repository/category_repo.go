package repository

import (
	"strings"

	"restaurant_finder/db"
	"restaurant_finder/models"
)

// ListCategories returns all categories ordered by name.
func ListCategories() ([]models.Category, error) {
	rows, err := db.DB.Query(`SELECT id, name, icon FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a category and returns its id.
func CreateCategory(name, icon string) (int64, error) {
	result, err := db.DB.Exec(`INSERT INTO categories (name, icon) VALUES (?, ?)`, name, icon)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// DeleteCategory removes a category by id.
func DeleteCategory(id int64) error {
	_, err := db.DB.Exec(`DELETE FROM categories WHERE id = ?`, id)
	return err
}

// IsUniqueViolation reports whether err is a UNIQUE constraint failure.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE")
}
