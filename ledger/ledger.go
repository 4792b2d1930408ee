package ledger

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/tillpoint/catalog"
	"github.com/ray-remotestate/tillpoint/models"
	"github.com/ray-remotestate/tillpoint/utils"
)

var (
	ErrItemNotFound         = errors.New("item not found in catalog")
	ErrEmptyOrder           = errors.New("please add items to the order before checking out")
	ErrMissingPaymentMethod = errors.New("please select a payment method")
)

const (
	ClearPrompt     = "Are you sure you want to clear the entire order?"
	discountWarning = "Discount percentage must be between 0 and 100."
)

// Sink is the outbound presentation boundary. The ledger never renders
// anything itself; it reports state changes, warnings and results here.
type Sink interface {
	OnStateChanged(snapshot models.OrderSnapshot)
	OnValidationWarning(message string)
	OnCheckoutComplete(summary models.OrderSummary)
	OnConfirmRequired(prompt string) bool
}

// Ledger owns the in-progress order of a single terminal session. All
// operations are synchronous; every mutation ends with OnStateChanged.
type Ledger struct {
	catalog *catalog.Catalog
	sink    Sink

	lines           []models.LineItem
	discountPercent int
	tableNumber     int
	paymentMethod   string
}

func New(cat *catalog.Catalog, sink Sink) *Ledger {
	return &Ledger{
		catalog:     cat,
		sink:        sink,
		tableNumber: 1,
	}
}

// AddItem resolves the catalog id and either increments the existing
// line or appends a new one with quantity 1. An unknown id leaves the
// ledger untouched.
func (l *Ledger) AddItem(id int) error {
	item, ok := l.catalog.Lookup(id)
	if !ok {
		return ErrItemNotFound
	}
	for i := range l.lines {
		if l.lines[i].ItemID == id {
			l.lines[i].Quantity++
			l.notify()
			return nil
		}
	}
	l.lines = append(l.lines, models.LineItem{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		ImageRef:  item.ImageRef,
		Quantity:  1,
	})
	l.notify()
	return nil
}

// ChangeQuantity adds delta to the line's quantity. A resulting
// quantity of zero or below removes the line entirely. Absent id is a
// no-op.
func (l *Ledger) ChangeQuantity(id, delta int) {
	for i := range l.lines {
		if l.lines[i].ItemID != id {
			continue
		}
		l.lines[i].Quantity += delta
		if l.lines[i].Quantity <= 0 {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		}
		l.notify()
		return
	}
}

func (l *Ledger) RemoveItem(id int) {
	for i := range l.lines {
		if l.lines[i].ItemID == id {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			break
		}
	}
	l.notify()
}

// SetDiscount runs on every discount-input change. Non-numeric or
// out-of-range input stores 0 and raises a validation warning.
func (l *Ledger) SetDiscount(raw string) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 || value > 100 {
		l.discountPercent = 0
		l.sink.OnValidationWarning(discountWarning)
	} else {
		l.discountPercent = value
	}
	l.notify()
}

// SetTableNumber parses a positive integer, falling back to table 1.
func (l *Ledger) SetTableNumber(raw string) {
	l.tableNumber = parseTableNumber(raw)
	l.notify()
}

func (l *Ledger) SetPaymentMethod(value string) {
	l.paymentMethod = strings.TrimSpace(value)
	l.notify()
}

// Totals derives subtotal, discount amount and grand total from the
// current lines. Pure; rounding happens only at display time.
func (l *Ledger) Totals() models.Totals {
	subtotal := decimal.Zero
	for _, line := range l.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	discountAmount := subtotal.Mul(decimal.NewFromInt(int64(l.discountPercent))).Div(decimal.NewFromInt(100))
	return models.Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal.Sub(discountAmount),
	}
}

func (l *Ledger) Snapshot() models.OrderSnapshot {
	lines := make([]models.LineItem, len(l.lines))
	copy(lines, l.lines)
	return models.OrderSnapshot{
		Lines:           lines,
		TableNumber:     l.tableNumber,
		DiscountPercent: l.discountPercent,
		PaymentMethod:   l.paymentMethod,
		Totals:          l.Totals(),
	}
}

// Clear asks the sink for confirmation and, if granted, resets the
// order. Returns whether the reset happened.
func (l *Ledger) Clear() bool {
	if !l.sink.OnConfirmRequired(ClearPrompt) {
		return false
	}
	l.reset()
	l.notify()
	return true
}

// Checkout finalizes the order. tableRaw is the table-number input read
// at call time; empty keeps the current table. On success the summary
// is emitted to the sink and the ledger resets without confirmation.
func (l *Ledger) Checkout(tableRaw string) (models.OrderSummary, error) {
	if len(l.lines) == 0 {
		return models.OrderSummary{}, ErrEmptyOrder
	}
	if l.paymentMethod == "" {
		return models.OrderSummary{}, ErrMissingPaymentMethod
	}
	if tableRaw != "" {
		l.tableNumber = parseTableNumber(tableRaw)
	}

	totals := l.Totals()
	summary := models.OrderSummary{
		ReceiptID:       uuid.New(),
		TableNumber:     l.tableNumber,
		Lines:           make([]models.SummaryLine, 0, len(l.lines)),
		Subtotal:        totals.Subtotal,
		DiscountPercent: l.discountPercent,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		PaymentMethod:   l.paymentMethod,
		CreatedAt:       time.Now(),
	}
	for _, line := range l.lines {
		summary.Lines = append(summary.Lines, models.SummaryLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		})
	}

	l.sink.OnCheckoutComplete(summary)
	l.reset()
	l.notify()
	return summary, nil
}

func (l *Ledger) reset() {
	l.lines = nil
	l.discountPercent = 0
	l.tableNumber = 1
	l.paymentMethod = ""
}

func (l *Ledger) notify() {
	l.sink.OnStateChanged(l.Snapshot())
}

func parseTableNumber(raw string) int {
	n := utils.ParseIntOrDefault(raw, 1)
	if n <= 0 {
		return 1
	}
	return n
}
