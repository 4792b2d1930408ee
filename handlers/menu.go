package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ray-remotestate/tillpoint/models"
	"github.com/ray-remotestate/tillpoint/utils"
)

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Alive    bool   `json:"alive"`
		Datetime string `json:"datetime"`
	}{true, utils.FormatDateTime(time.Now())})
}

func (a *API) GetMenu(w http.ResponseWriter, r *http.Request) {
	type Item struct {
		ID        int             `json:"id"`
		Name      string          `json:"name"`
		Category  models.Category `json:"category"`
		UnitPrice string          `json:"unit_price"`
		ImageRef  string          `json:"image_ref"`
	}

	items := a.Catalog.Items()
	if category := r.URL.Query().Get("category"); category != "" && category != "all" {
		cat := models.Category(category)
		if !cat.IsValid() {
			http.Error(w, "Invalid category", http.StatusBadRequest)
			return
		}
		items = a.Catalog.ByCategory(cat)
	}

	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, Item{
			ID:        item.ID,
			Name:      item.Name,
			Category:  item.Category,
			UnitPrice: utils.FormatCurrency(item.UnitPrice),
			ImageRef:  item.ImageRef,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
