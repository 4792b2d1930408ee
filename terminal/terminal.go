package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ray-remotestate/tillpoint/catalog"
	"github.com/ray-remotestate/tillpoint/ledger"
	"github.com/ray-remotestate/tillpoint/models"
	"github.com/ray-remotestate/tillpoint/utils"
)

// Terminal is the interactive front end: a line-oriented prompt that
// drives the ledger and doubles as its presentation sink.
type Terminal struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	in      *bufio.Reader
	out     io.Writer
}

func New(cat *catalog.Catalog, in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		catalog: cat,
		in:      bufio.NewReader(in),
		out:     out,
	}
	t.ledger = ledger.New(cat, t)
	return t
}

func (t *Terminal) Run() {
	fmt.Fprintln(t.out, "=== tillpoint POS terminal ===")
	fmt.Fprintln(t.out, utils.FormatDateTime(time.Now()))
	fmt.Fprintln(t.out, "Type 'help' for commands.")

	stop := make(chan struct{})
	defer close(stop)
	go t.clockLoop(stop)

	for {
		fmt.Fprint(t.out, "\n> ")
		line, err := t.in.ReadString('\n')
		if err != nil {
			return
		}
		if !t.dispatch(strings.Fields(strings.TrimSpace(line))) {
			return
		}
	}
}

func (t *Terminal) dispatch(args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "menu":
		category := "all"
		if len(args) > 1 {
			category = args[1]
		}
		t.printMenu(category)
	case "add":
		if id, ok := t.itemID(args); ok {
			if err := t.ledger.AddItem(id); err != nil {
				fmt.Fprintln(t.out, "Unknown item id.")
			}
		}
	case "inc":
		if id, ok := t.itemID(args); ok {
			t.ledger.ChangeQuantity(id, 1)
		}
	case "dec":
		if id, ok := t.itemID(args); ok {
			t.ledger.ChangeQuantity(id, -1)
		}
	case "qty":
		if len(args) < 3 {
			fmt.Fprintln(t.out, "Usage: qty <id> <delta>")
			return true
		}
		id, err1 := strconv.Atoi(args[1])
		delta, err2 := strconv.Atoi(args[2])
		if err1 != nil || err2 != nil {
			fmt.Fprintln(t.out, "Usage: qty <id> <delta>")
			return true
		}
		t.ledger.ChangeQuantity(id, delta)
	case "rm":
		if id, ok := t.itemID(args); ok {
			t.ledger.RemoveItem(id)
		}
	case "disc":
		if len(args) < 2 {
			fmt.Fprintln(t.out, "Usage: disc <percent>")
			return true
		}
		t.ledger.SetDiscount(args[1])
	case "table":
		if len(args) < 2 {
			fmt.Fprintln(t.out, "Usage: table <number>")
			return true
		}
		t.ledger.SetTableNumber(args[1])
	case "pay":
		if len(args) < 2 {
			fmt.Fprintln(t.out, "Usage: pay <method>")
			return true
		}
		t.ledger.SetPaymentMethod(args[1])
	case "bill":
		bill, err := t.ledger.Bill()
		if err != nil {
			fmt.Fprintln(t.out, "There are no items to print on the bill.")
			return true
		}
		fmt.Fprintln(t.out, bill)
	case "checkout":
		table := ""
		if len(args) > 1 {
			table = args[1]
		}
		if _, err := t.ledger.Checkout(table); err != nil {
			fmt.Fprintln(t.out, err.Error())
		}
	case "clear":
		t.ledger.Clear()
	case "help":
		t.printHelp()
	case "q", "quit", "exit":
		fmt.Fprintln(t.out, "Goodbye!")
		return false
	default:
		fmt.Fprintln(t.out, "Invalid choice. Type 'help' for commands.")
	}
	return true
}

func (t *Terminal) itemID(args []string) (int, bool) {
	if len(args) < 2 {
		fmt.Fprintf(t.out, "Usage: %s <id>\n", args[0])
		return 0, false
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(t.out, "Usage: %s <id>\n", args[0])
		return 0, false
	}
	return id, true
}

func (t *Terminal) printMenu(category string) {
	items := t.catalog.Items()
	if category != "all" {
		cat := models.Category(category)
		if !cat.IsValid() {
			fmt.Fprintln(t.out, "No items found for this category.")
			return
		}
		items = t.catalog.ByCategory(cat)
	}
	if len(items) == 0 {
		fmt.Fprintln(t.out, "No items found for this category.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(t.out, "%2d. %-20s %-9s %s\n", item.ID, item.Name, item.Category, utils.FormatCurrency(item.UnitPrice))
	}
}

func (t *Terminal) printHelp() {
	fmt.Fprintln(t.out, `Commands:
  menu [category]   list the menu (foods, snacks, drinks, desserts)
  add <id>          add an item to the order
  inc <id>          increase quantity by one
  dec <id>          decrease quantity by one (removes at zero)
  qty <id> <delta>  adjust quantity by delta
  rm <id>           remove a line entirely
  disc <percent>    set the discount percentage (0-100)
  table <number>    set the table number
  pay <method>      select the payment method
  bill              print the current bill
  checkout [table]  finalize the order
  clear             clear the order (asks for confirmation)
  quit              exit`)
}

// clockLoop keeps the displayed clock current, one tick per minute.
func (t *Terminal) clockLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			fmt.Fprintf(t.out, "\n[%s]\n> ", utils.FormatDateTime(now))
		}
	}
}

// Sink implementation.

func (t *Terminal) OnStateChanged(snapshot models.OrderSnapshot) {
	if len(snapshot.Lines) == 0 {
		fmt.Fprintln(t.out, "No items added yet.")
	}
	for _, line := range snapshot.Lines {
		fmt.Fprintf(t.out, "%-20s x%-3d %s\n", line.Name, line.Quantity, utils.FormatCurrency(line.LineTotal()))
	}
	fmt.Fprintf(t.out, "Subtotal: %s  Discount (%d%%): %s  Total: %s\n",
		utils.FormatCurrency(snapshot.Totals.Subtotal),
		snapshot.DiscountPercent,
		utils.FormatCurrency(snapshot.Totals.DiscountAmount),
		utils.FormatCurrency(snapshot.Totals.Total))
}

func (t *Terminal) OnValidationWarning(message string) {
	fmt.Fprintln(t.out, "! "+message)
}

func (t *Terminal) OnCheckoutComplete(summary models.OrderSummary) {
	fmt.Fprintln(t.out, ledger.FormatSummary(summary))
}

func (t *Terminal) OnConfirmRequired(prompt string) bool {
	fmt.Fprintf(t.out, "%s (y/n): ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
