package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/tillpoint/catalog"
	"github.com/ray-remotestate/tillpoint/ledger"
	"github.com/ray-remotestate/tillpoint/models"
	"github.com/ray-remotestate/tillpoint/utils"
)

// API holds the per-terminal session state the handlers operate on. The
// order lives in the ledger, not in package globals.
type API struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
}

func (a *API) GetOrder(w http.ResponseWriter, r *http.Request) {
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) AddOrderItem(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := a.Ledger.AddItem(input.ID); err != nil {
		if errors.Is(err, ledger.ErrItemNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to add item", http.StatusInternalServerError)
		return
	}
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) ChangeOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	var input struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	a.Ledger.ChangeQuantity(id, input.Delta)
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) RemoveOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	a.Ledger.RemoveItem(id)
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Value any `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	a.Ledger.SetDiscount(rawValue(input.Value))
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) SetTable(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Value any `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	a.Ledger.SetTableNumber(rawValue(input.Value))
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	a.Ledger.SetPaymentMethod(input.Value)
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) Checkout(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Table         any    `json:"table"`
		PaymentMethod string `json:"payment_method"`
	}
	if r.Body != nil {
		// body is optional; table and payment method may have been set earlier
		_ = json.NewDecoder(r.Body).Decode(&input)
	}

	if input.PaymentMethod != "" {
		a.Ledger.SetPaymentMethod(input.PaymentMethod)
	}

	summary, err := a.Ledger.Checkout(rawValue(input.Table))
	if err != nil {
		if errors.Is(err, ledger.ErrEmptyOrder) || errors.Is(err, ledger.ErrMissingPaymentMethod) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Checkout failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		models.OrderSummary
		Text string `json:"text"`
	}{summary, ledger.FormatSummary(summary)})
}

func (a *API) ClearOrder(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, ledger.ClearPrompt+" Repeat the request with ?confirm=true.", http.StatusBadRequest)
		return
	}

	a.Ledger.Clear()
	writeOrder(w, a.Ledger.Snapshot())
}

func (a *API) GetBill(w http.ResponseWriter, r *http.Request) {
	bill, err := a.Ledger.Bill()
	if err != nil {
		http.Error(w, "There are no items to print on the bill.", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, bill)
}

func writeOrder(w http.ResponseWriter, snapshot models.OrderSnapshot) {
	type Line struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		UnitPrice string `json:"unit_price"`
		Quantity  int    `json:"quantity"`
		LineTotal string `json:"line_total"`
	}

	lines := make([]Line, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		lines = append(lines, Line{
			ID:        l.ItemID,
			Name:      l.Name,
			UnitPrice: utils.FormatCurrency(l.UnitPrice),
			Quantity:  l.Quantity,
			LineTotal: utils.FormatCurrency(l.LineTotal()),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		TableNumber     int    `json:"table_number"`
		DiscountPercent int    `json:"discount_percent"`
		PaymentMethod   string `json:"payment_method"`
		Lines           []Line `json:"lines"`
		Subtotal        string `json:"subtotal"`
		DiscountAmount  string `json:"discount_amount"`
		Total           string `json:"total"`
	}{
		TableNumber:     snapshot.TableNumber,
		DiscountPercent: snapshot.DiscountPercent,
		PaymentMethod:   snapshot.PaymentMethod,
		Lines:           lines,
		Subtotal:        utils.FormatCurrency(snapshot.Totals.Subtotal),
		DiscountAmount:  utils.FormatCurrency(snapshot.Totals.DiscountAmount),
		Total:           utils.FormatCurrency(snapshot.Totals.Total),
	})
}

// rawValue flattens a JSON field that clients may send as either a
// string or a number into the raw string the ledger validates.
func rawValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
