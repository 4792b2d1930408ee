package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem carries a snapshot of the catalog fields taken when the item
// was first added; a later catalog change does not reprice an open order.
type LineItem struct {
	ItemID    int             `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ImageRef  string          `json:"image_ref"`
	Quantity  int             `json:"quantity"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
}

// OrderSnapshot is what the presentation layer receives after every
// mutating ledger operation.
type OrderSnapshot struct {
	Lines           []LineItem `json:"lines"`
	TableNumber     int        `json:"table_number"`
	DiscountPercent int        `json:"discount_percent"`
	PaymentMethod   string     `json:"payment_method"`
	Totals          Totals     `json:"totals"`
}

type SummaryLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderSummary is the immutable record assembled at checkout.
type OrderSummary struct {
	ReceiptID       uuid.UUID       `json:"receipt_id"`
	TableNumber     int             `json:"table_number"`
	Lines           []SummaryLine   `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent int             `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   string          `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
}
