package models

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFoods    Category = "foods"
	CategorySnacks   Category = "snacks"
	CategoryDrinks   Category = "drinks"
	CategoryDesserts Category = "desserts"
)

func (c Category) IsValid() bool {
	return c == CategoryFoods || c == CategorySnacks || c == CategoryDrinks || c == CategoryDesserts
}

type CatalogItem struct {
	ID        int             `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Category  Category        `db:"category" json:"category"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
	ImageRef  string          `db:"image_ref" json:"image_ref"`
}
