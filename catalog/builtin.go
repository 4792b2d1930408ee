package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/tillpoint/models"
)

// BuiltinItems is the standard terminal menu, used directly when no
// database is configured and as seed data when one is.
func BuiltinItems() []models.CatalogItem {
	price := decimal.RequireFromString
	return []models.CatalogItem{
		{ID: 1, Name: "Cheeseburger", Category: models.CategoryFoods, UnitPrice: price("5.99"), ImageRef: "saleimg/Cheeseburger.jpg"},
		{ID: 2, Name: "Pepperoni Pizza", Category: models.CategoryFoods, UnitPrice: price("12.99"), ImageRef: "saleimg/Pepperoni-Pizza.jpg"},
		{ID: 3, Name: "French Fries", Category: models.CategorySnacks, UnitPrice: price("3.99"), ImageRef: "saleimg/French-Fries.jpg"},
		{ID: 4, Name: "Cola", Category: models.CategoryDrinks, UnitPrice: price("2.49"), ImageRef: "saleimg/Cola.jpg"},
		{ID: 5, Name: "BBQ Ribs", Category: models.CategoryFoods, UnitPrice: price("15.99"), ImageRef: "saleimg/BBQ-Ribs.jpg"},
		{ID: 6, Name: "Caesar Salad", Category: models.CategoryFoods, UnitPrice: price("8.99"), ImageRef: "saleimg/Caesar-Salad.jpg"},
		{ID: 7, Name: "Chocolate Cake", Category: models.CategoryDesserts, UnitPrice: price("6.99"), ImageRef: "saleimg/Chocolate-Cake.jpg"},
		{ID: 8, Name: "Iced Tea", Category: models.CategoryDrinks, UnitPrice: price("2.99"), ImageRef: "saleimg/Iced-Tea.jpg"},
		{ID: 9, Name: "Onion Rings", Category: models.CategorySnacks, UnitPrice: price("4.49"), ImageRef: "saleimg/Onion-Rings.jpg"},
		{ID: 10, Name: "Spaghetti Bolognese", Category: models.CategoryFoods, UnitPrice: price("11.50"), ImageRef: "saleimg/Spaghetti-Bolognese.jpg"},
		{ID: 11, Name: "Water", Category: models.CategoryDrinks, UnitPrice: price("1.50"), ImageRef: "saleimg/Water.jpg"},
		{ID: 12, Name: "Fruit Salad", Category: models.CategoryDesserts, UnitPrice: price("5.75"), ImageRef: "saleimg/Fruit-Salad.jpg"},
		{ID: 13, Name: "Nachos", Category: models.CategorySnacks, UnitPrice: price("7.25"), ImageRef: "saleimg/Nachos.jpg"},
		{ID: 14, Name: "Lemonade", Category: models.CategoryDrinks, UnitPrice: price("3.25"), ImageRef: "saleimg/Lemonade.jpg"},
		{ID: 15, Name: "Grilled Chicken", Category: models.CategoryFoods, UnitPrice: price("13.75"), ImageRef: "saleimg/Grilled-Chicken.jpg"},
	}
}

func Builtin() *Catalog {
	c, err := New(BuiltinItems())
	if err != nil {
		panic(err)
	}
	return c
}
