package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/tillpoint/models"
)

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin()
	if cat.Len() != 15 {
		t.Fatalf("expected 15 builtin items, got %d", cat.Len())
	}

	item, ok := cat.Lookup(1)
	if !ok {
		t.Fatal("item 1 should exist")
	}
	if item.Name != "Cheeseburger" {
		t.Errorf("item 1 = %q, want Cheeseburger", item.Name)
	}
	if want := decimal.RequireFromString("5.99"); !item.UnitPrice.Equal(want) {
		t.Errorf("item 1 price = %s, want %s", item.UnitPrice, want)
	}

	if _, ok := cat.Lookup(999); ok {
		t.Error("item 999 should not exist")
	}
}

func TestByCategory(t *testing.T) {
	cat := Builtin()

	drinks := cat.ByCategory(models.CategoryDrinks)
	if len(drinks) != 4 {
		t.Fatalf("expected 4 drinks, got %d", len(drinks))
	}
	for _, item := range drinks {
		if item.Category != models.CategoryDrinks {
			t.Errorf("item %q is not a drink", item.Name)
		}
	}
}

func TestNewValidation(t *testing.T) {
	price := decimal.RequireFromString

	tests := []struct {
		name    string
		items   []models.CatalogItem
		wantErr string
	}{
		{
			name: "duplicate id",
			items: []models.CatalogItem{
				{ID: 1, Name: "A", Category: models.CategoryFoods, UnitPrice: price("1.00")},
				{ID: 1, Name: "B", Category: models.CategoryFoods, UnitPrice: price("2.00")},
			},
			wantErr: "duplicate id 1",
		},
		{
			name: "non-positive id",
			items: []models.CatalogItem{
				{ID: 0, Name: "A", Category: models.CategoryFoods, UnitPrice: price("1.00")},
			},
			wantErr: "id must be a positive integer",
		},
		{
			name: "negative price",
			items: []models.CatalogItem{
				{ID: 1, Name: "A", Category: models.CategoryFoods, UnitPrice: price("-1.00")},
			},
			wantErr: "unit price must not be negative",
		},
		{
			name: "unknown category",
			items: []models.CatalogItem{
				{ID: 1, Name: "A", Category: "sides", UnitPrice: price("1.00")},
			},
			wantErr: "unknown category",
		},
		{
			name: "missing name",
			items: []models.CatalogItem{
				{ID: 1, Category: models.CategoryFoods, UnitPrice: price("1.00")},
			},
			wantErr: "name is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewAggregatesAllViolations(t *testing.T) {
	price := decimal.RequireFromString
	_, err := New([]models.CatalogItem{
		{ID: -1, Name: "A", Category: models.CategoryFoods, UnitPrice: price("1.00")},
		{ID: 2, Name: "", Category: "junk", UnitPrice: price("-5.00")},
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"positive integer", "name is required", "unknown category", "must not be negative"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("aggregated error missing %q: %s", want, err)
		}
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	cat := Builtin()
	items := cat.Items()
	items[0].Name = "tampered"

	fresh, _ := cat.Lookup(items[0].ID)
	if fresh.Name == "tampered" {
		t.Error("Items() must not expose internal state")
	}
}
