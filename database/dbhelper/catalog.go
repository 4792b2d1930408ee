package dbhelper

import (
	"github.com/ray-remotestate/tillpoint/database"
	"github.com/ray-remotestate/tillpoint/models"
)

func ListCatalogItems() ([]models.CatalogItem, error) {
	rows, err := database.Till.Query(`
		SELECT id, name, category, unit_price, image_ref
		FROM catalog_items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.UnitPrice, &item.ImageRef); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func CountCatalogItems() (int, error) {
	var count int
	err := database.Till.QueryRow(`SELECT COUNT(*) FROM catalog_items`).Scan(&count)
	return count, err
}

// SeedCatalogItems fills an empty catalog table, typically with the
// built-in menu on first startup.
func SeedCatalogItems(items []models.CatalogItem) error {
	for _, item := range items {
		_, err := database.Till.Exec(`
			INSERT INTO catalog_items (id, name, category, unit_price, image_ref)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			item.ID, item.Name, item.Category, item.UnitPrice, item.ImageRef)
		if err != nil {
			return err
		}
	}
	return nil
}
