package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const datetimeLayout = "Monday, January 2, 2006, 03:04 PM"

// FormatCurrency renders an amount with the fixed currency symbol and
// exactly two decimal places. This is the only place amounts are
// rounded; the ledger keeps exact decimals internally.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func FormatDateTime(t time.Time) string {
	return t.Format(datetimeLayout)
}

func ParseIntOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
