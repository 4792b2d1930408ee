package ledger

import (
	"fmt"
	"strings"

	"github.com/ray-remotestate/tillpoint/models"
	"github.com/ray-remotestate/tillpoint/utils"
)

// Bill renders the current order as a human-readable bill.
func (l *Ledger) Bill() (string, error) {
	if len(l.lines) == 0 {
		return "", ErrEmptyOrder
	}

	totals := l.Totals()
	b := &strings.Builder{}
	fmt.Fprintf(b, "--- Bill (Table %d) ---\n", l.tableNumber)
	for _, line := range l.lines {
		fmt.Fprintf(b, "- %s x %d @ %s per unit (%s)\n",
			line.Name, line.Quantity, utils.FormatCurrency(line.UnitPrice), utils.FormatCurrency(line.LineTotal()))
	}
	fmt.Fprintf(b, "\nSubtotal: %s\n", utils.FormatCurrency(totals.Subtotal))
	fmt.Fprintf(b, "Discount (%d%%): %s\n", l.discountPercent, utils.FormatCurrency(totals.DiscountAmount))
	fmt.Fprintf(b, "Total: %s\n", utils.FormatCurrency(totals.Total))
	return b.String(), nil
}

// FormatSummary renders a checkout summary the way the terminal prints
// its receipts.
func FormatSummary(s models.OrderSummary) string {
	b := &strings.Builder{}
	b.WriteString("--- Order Summary ---\n")
	fmt.Fprintf(b, "Receipt: %s\n", s.ReceiptID)
	fmt.Fprintf(b, "Table Number: %d\n\n", s.TableNumber)
	b.WriteString("Items:\n")
	for _, line := range s.Lines {
		fmt.Fprintf(b, "- %s x %d (%s)\n", line.Name, line.Quantity, utils.FormatCurrency(line.LineTotal))
	}
	fmt.Fprintf(b, "\nSubtotal: %s\n", utils.FormatCurrency(s.Subtotal))
	fmt.Fprintf(b, "Discount (%d%%): %s\n", s.DiscountPercent, utils.FormatCurrency(s.DiscountAmount))
	fmt.Fprintf(b, "Total: %s\n", utils.FormatCurrency(s.Total))
	fmt.Fprintf(b, "Payment Method: %s\n", s.PaymentMethod)
	b.WriteString("---------------------\n")
	b.WriteString("Thank you for your order!")
	return b.String()
}
