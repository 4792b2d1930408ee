package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/ray-remotestate/tillpoint/models"
)

// Catalog is the read-only registry of sellable items. It is built once
// at startup and never mutated afterwards.
type Catalog struct {
	items []models.CatalogItem
	byID  map[int]models.CatalogItem
}

func New(items []models.CatalogItem) (*Catalog, error) {
	var errs *multierror.Error

	byID := make(map[int]models.CatalogItem, len(items))
	ordered := make([]models.CatalogItem, 0, len(items))

	for _, item := range items {
		if item.ID <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("item %q: id must be a positive integer, got %d", item.Name, item.ID))
			continue
		}
		if _, exists := byID[item.ID]; exists {
			errs = multierror.Append(errs, fmt.Errorf("item %q: duplicate id %d", item.Name, item.ID))
			continue
		}
		if item.Name == "" {
			errs = multierror.Append(errs, fmt.Errorf("item %d: name is required", item.ID))
		}
		if !item.Category.IsValid() {
			errs = multierror.Append(errs, fmt.Errorf("item %q: unknown category %q", item.Name, item.Category))
		}
		if item.UnitPrice.IsNegative() {
			errs = multierror.Append(errs, fmt.Errorf("item %q: unit price must not be negative, got %s", item.Name, item.UnitPrice))
		}
		byID[item.ID] = item
		ordered = append(ordered, item)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Catalog{items: ordered, byID: byID}, nil
}

// Lookup resolves a catalog id. A missing id is not an error condition;
// callers treat it as a no-op.
func (c *Catalog) Lookup(id int) (models.CatalogItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Items() []models.CatalogItem {
	out := make([]models.CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) ByCategory(category models.Category) []models.CatalogItem {
	var out []models.CatalogItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
