package ledger

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/tillpoint/catalog"
	"github.com/ray-remotestate/tillpoint/models"
)

type recordingSink struct {
	snapshots []models.OrderSnapshot
	warnings  []string
	summaries []models.OrderSummary
	confirm   bool
}

func (s *recordingSink) OnStateChanged(snapshot models.OrderSnapshot) {
	s.snapshots = append(s.snapshots, snapshot)
}

func (s *recordingSink) OnValidationWarning(message string) {
	s.warnings = append(s.warnings, message)
}

func (s *recordingSink) OnCheckoutComplete(summary models.OrderSummary) {
	s.summaries = append(s.summaries, summary)
}

func (s *recordingSink) OnConfirmRequired(prompt string) bool {
	return s.confirm
}

func newTestLedger(t *testing.T) (*Ledger, *recordingSink) {
	t.Helper()
	sink := &recordingSink{confirm: true}
	return New(catalog.Builtin(), sink), sink
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	led, sink := newTestLedger(t)

	for i := 0; i < 5; i++ {
		if err := led.AddItem(1); err != nil {
			t.Fatalf("AddItem(1) returned error: %v", err)
		}
	}

	snap := led.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", snap.Lines[0].Quantity)
	}
	if len(sink.snapshots) != 5 {
		t.Errorf("expected 5 state notifications, got %d", len(sink.snapshots))
	}
}

func TestAddItemUnknownIDIsNoOp(t *testing.T) {
	led, sink := newTestLedger(t)

	if err := led.AddItem(999); err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if len(led.Snapshot().Lines) != 0 {
		t.Error("unknown item must not be added")
	}
	if len(sink.snapshots) != 0 {
		t.Error("no state change notification expected for unknown item")
	}
}

func TestChangeQuantityToZeroRemovesLine(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddItem(1)
	led.AddItem(1)
	led.AddItem(1)
	led.ChangeQuantity(1, -3)

	snap := led.Snapshot()
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty ledger, got %d lines", len(snap.Lines))
	}
	if !snap.Totals.Subtotal.IsZero() {
		t.Errorf("expected zero subtotal, got %s", snap.Totals.Subtotal)
	}
}

func TestChangeQuantityBelowZeroRemovesLine(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddItem(1)
	led.ChangeQuantity(1, -5)

	if len(led.Snapshot().Lines) != 0 {
		t.Error("quantity below zero must remove the line, not clamp it")
	}
}

func TestChangeQuantityAbsentIDIsNoOp(t *testing.T) {
	led, sink := newTestLedger(t)

	led.ChangeQuantity(42, 3)

	if len(led.Snapshot().Lines) != 0 {
		t.Error("changing an absent line must not create one")
	}
	if len(sink.snapshots) != 0 {
		t.Error("no notification expected for an absent line")
	}
}

func TestRemoveItem(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddItem(1)
	led.AddItem(4)
	led.RemoveItem(1)

	snap := led.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].ItemID != 4 {
		t.Fatalf("expected only item 4 to remain, got %+v", snap.Lines)
	}

	// removing a missing id is harmless
	led.RemoveItem(999)
	if len(led.Snapshot().Lines) != 1 {
		t.Error("removing an absent id must not change the ledger")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddItem(3)
	led.AddItem(1)
	led.AddItem(4)
	led.AddItem(1) // quantity bump must not reorder

	ids := func() []int {
		var out []int
		for _, line := range led.Snapshot().Lines {
			out = append(out, line.ItemID)
		}
		return out
	}

	got := ids()
	want := []int{3, 1, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	// remove and re-add moves the item to the end
	led.RemoveItem(3)
	led.AddItem(3)
	got = ids()
	want = []int{1, 4, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after re-add expected order %v, got %v", want, got)
		}
	}
}

func TestSetDiscountValidation(t *testing.T) {
	tests := []struct {
		raw         string
		wantPercent int
		wantWarning bool
	}{
		{"0", 0, false},
		{"10", 10, false},
		{"100", 100, false},
		{" 25 ", 25, false},
		{"-1", 0, true},
		{"101", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"10.5", 0, true},
	}
	for _, tt := range tests {
		led, sink := newTestLedger(t)
		led.SetDiscount(tt.raw)

		if got := led.Snapshot().DiscountPercent; got != tt.wantPercent {
			t.Errorf("SetDiscount(%q): percent = %d, want %d", tt.raw, got, tt.wantPercent)
		}
		if gotWarning := len(sink.warnings) > 0; gotWarning != tt.wantWarning {
			t.Errorf("SetDiscount(%q): warning = %v, want %v", tt.raw, gotWarning, tt.wantWarning)
		}
	}
}

func TestSetTableNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{"1", 1},
		{"0", 1},
		{"-2", 1},
		{"abc", 1},
		{"", 1},
	}
	for _, tt := range tests {
		led, _ := newTestLedger(t)
		led.SetTableNumber(tt.raw)
		if got := led.Snapshot().TableNumber; got != tt.want {
			t.Errorf("SetTableNumber(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestTotalsScenario(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddItem(1) // Cheeseburger 5.99
	led.AddItem(1)
	led.AddItem(4) // Cola 2.49
	led.SetDiscount("10")

	totals := led.Totals()
	if want := decimal.RequireFromString("14.47"); !totals.Subtotal.Equal(want) {
		t.Errorf("subtotal = %s, want %s", totals.Subtotal, want)
	}
	if want := decimal.RequireFromString("1.447"); !totals.DiscountAmount.Equal(want) {
		t.Errorf("discount amount = %s, want %s", totals.DiscountAmount, want)
	}
	if want := decimal.RequireFromString("13.023"); !totals.Total.Equal(want) {
		t.Errorf("total = %s, want %s", totals.Total, want)
	}
}

func TestTotalsIdentity(t *testing.T) {
	for _, pct := range []int{0, 1, 7, 33, 50, 99, 100} {
		led, _ := newTestLedger(t)
		led.AddItem(2)
		led.AddItem(5)
		led.AddItem(10)
		led.SetDiscount(strconv.Itoa(pct))

		totals := led.Totals()
		if !totals.Total.Equal(totals.Subtotal.Sub(totals.DiscountAmount)) {
			t.Errorf("pct=%d: total != subtotal - discount", pct)
		}
		expected := totals.Subtotal.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100))
		if !totals.DiscountAmount.Equal(expected) {
			t.Errorf("pct=%d: discount amount = %s, want %s", pct, totals.DiscountAmount, expected)
		}
	}
}

func TestCheckoutEmptyOrder(t *testing.T) {
	led, sink := newTestLedger(t)
	led.SetPaymentMethod("cash")
	before := led.Snapshot()

	_, err := led.Checkout("2")
	if err != ErrEmptyOrder {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	after := led.Snapshot()
	if after.TableNumber != before.TableNumber || after.PaymentMethod != before.PaymentMethod {
		t.Error("failed checkout must not mutate state")
	}
	if len(sink.summaries) != 0 {
		t.Error("no summary expected on failed checkout")
	}
}

func TestCheckoutMissingPaymentMethod(t *testing.T) {
	led, sink := newTestLedger(t)
	led.AddItem(1)

	_, err := led.Checkout("")
	if err != ErrMissingPaymentMethod {
		t.Fatalf("expected ErrMissingPaymentMethod, got %v", err)
	}
	if len(led.Snapshot().Lines) != 1 {
		t.Error("failed checkout must keep the line items")
	}
	if len(sink.summaries) != 0 {
		t.Error("no summary expected on failed checkout")
	}
}

func TestCheckoutSuccess(t *testing.T) {
	led, sink := newTestLedger(t)

	led.AddItem(1)
	led.AddItem(1)
	led.AddItem(4)
	led.SetDiscount("10")
	led.SetPaymentMethod("card")

	summary, err := led.Checkout("7")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if summary.TableNumber != 7 {
		t.Errorf("table number = %d, want 7", summary.TableNumber)
	}
	if summary.PaymentMethod != "card" {
		t.Errorf("payment method = %q, want card", summary.PaymentMethod)
	}
	if summary.DiscountPercent != 10 {
		t.Errorf("discount percent = %d, want 10", summary.DiscountPercent)
	}

	// per-line totals must sum to the subtotal exactly
	sum := decimal.Zero
	for _, line := range summary.Lines {
		sum = sum.Add(line.LineTotal)
	}
	if !sum.Equal(summary.Subtotal) {
		t.Errorf("line totals sum %s != subtotal %s", sum, summary.Subtotal)
	}
	if summary.ReceiptID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("receipt id must be set")
	}

	if len(sink.summaries) != 1 {
		t.Fatalf("expected 1 summary emission, got %d", len(sink.summaries))
	}

	// checkout resets without confirmation
	after := led.Snapshot()
	if len(after.Lines) != 0 || after.DiscountPercent != 0 || after.TableNumber != 1 || after.PaymentMethod != "" {
		t.Errorf("ledger not reset after checkout: %+v", after)
	}
	totals := led.Totals()
	if !totals.Subtotal.IsZero() || !totals.DiscountAmount.IsZero() || !totals.Total.IsZero() {
		t.Error("totals must be zero after checkout")
	}
}

func TestCheckoutUnparseableTableDefaultsToOne(t *testing.T) {
	led, _ := newTestLedger(t)
	led.AddItem(1)
	led.SetPaymentMethod("cash")

	summary, err := led.Checkout("banquet")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if summary.TableNumber != 1 {
		t.Errorf("table number = %d, want default 1", summary.TableNumber)
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	led, sink := newTestLedger(t)
	sink.confirm = false

	led.AddItem(1)
	led.SetDiscount("20")

	if led.Clear() {
		t.Fatal("clear must be denied when confirmation is refused")
	}
	snap := led.Snapshot()
	if len(snap.Lines) != 1 || snap.DiscountPercent != 20 {
		t.Error("denied clear must not mutate the ledger")
	}

	sink.confirm = true
	if !led.Clear() {
		t.Fatal("clear must proceed when confirmation is granted")
	}
	snap = led.Snapshot()
	if len(snap.Lines) != 0 || snap.DiscountPercent != 0 || snap.TableNumber != 1 {
		t.Errorf("ledger not reset after clear: %+v", snap)
	}
	totals := led.Totals()
	if !totals.Subtotal.IsZero() || !totals.DiscountAmount.IsZero() || !totals.Total.IsZero() {
		t.Error("totals must be zero after clear")
	}
}

func TestAddThenDecrementLeavesEmptyLedger(t *testing.T) {
	led, _ := newTestLedger(t)

	led.AddItem(1)
	led.ChangeQuantity(1, -1)

	snap := led.Snapshot()
	if len(snap.Lines) != 0 {
		t.Fatal("ledger should be empty")
	}
	if !snap.Totals.Total.IsZero() {
		t.Errorf("total = %s, want 0", snap.Totals.Total)
	}
}

func TestSnapshotPriceLockedAtInsert(t *testing.T) {
	items := catalog.BuiltinItems()
	cat, err := catalog.New(items)
	if err != nil {
		t.Fatal(err)
	}
	sink := &recordingSink{confirm: true}
	led := New(cat, sink)

	led.AddItem(1)
	// mutate the caller's slice; the ledger's snapshot must be unaffected
	items[0].UnitPrice = decimal.RequireFromString("99.99")

	line := led.Snapshot().Lines[0]
	if want := decimal.RequireFromString("5.99"); !line.UnitPrice.Equal(want) {
		t.Errorf("unit price = %s, want locked %s", line.UnitPrice, want)
	}
}
