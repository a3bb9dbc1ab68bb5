package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yanexstore/storefront/internal/display"
	"github.com/yanexstore/storefront/internal/model"
	"github.com/yanexstore/storefront/internal/prompt"
	"github.com/yanexstore/storefront/internal/store"
)

// State identifies a step of the order placement state machine.
type State int

// Order placement states.
const (
	StateBrowsing State = iota
	StateBuilding
	StateConfirming
	StatePaying
	StateCompleted
	StateCancelled
)

// Config carries the workflow's behavioral settings.
type Config struct {
	// PaymentAttempts bounds payment menu and e-wallet confirmation
	// retries before falling back to a safe default.
	PaymentAttempts int

	// RandomSuggestion enables the "suggest me a random product"
	// browsing option.
	RandomSuggestion bool

	// EWalletAccount is the payee account string shown for e-wallet
	// payments.
	EWalletAccount string
}

// Workflow drives one order placement session against the catalog.
// Stock is deducted only when the confirmed cart is committed; until
// then the cart is a purely in-memory reservation, so cancelling at any
// point before commit leaves the catalog untouched.
type Workflow struct {
	store    store.Store
	in       *prompt.Reader
	out      io.Writer
	logger   *zap.Logger
	cfg      Config
	history  *History
	receipts *ReceiptWriter

	now     func() time.Time
	randInt func(n int) int
}

// NewWorkflow creates a Workflow. receipts may be nil to disable the
// receipt file.
func NewWorkflow(
	s store.Store,
	in *prompt.Reader,
	out io.Writer,
	logger *zap.Logger,
	cfg Config,
	history *History,
	receipts *ReceiptWriter,
) *Workflow {
	return &Workflow{
		store:    s,
		in:       in,
		out:      out,
		logger:   logger,
		cfg:      cfg,
		history:  history,
		receipts: receipts,
		now:      time.Now,
		randInt:  rand.Intn,
	}
}

// Run executes one order placement session and returns once the order
// completes or is cancelled. Only I/O failures surface as errors.
func (w *Workflow) Run(ctx context.Context) error {
	if err := w.store.Load(ctx); err != nil {
		if !errors.Is(err, store.ErrMalformedRecord) {
			return fmt.Errorf("order workflow: %w", err)
		}
		w.logger.Warn("catalog loaded with malformed records", zap.Error(err))
	}

	if len(w.store.Products()) == 0 {
		fmt.Fprintln(w.out, "No products available to order. Please ask admin to add products first.")
		return nil
	}

	cart := NewCart()
	state := StateBrowsing

	var subset []model.Product

	for {
		switch state {
		case StateBrowsing:
			subset, state = w.browse(cart)
		case StateBuilding:
			state = w.build(cart, subset)
		case StateConfirming:
			state = w.confirm(cart)
		case StatePaying:
			if err := w.pay(ctx, cart); err != nil {
				return fmt.Errorf("order workflow: %w", err)
			}
			state = StateCompleted
		case StateCompleted:
			return nil
		case StateCancelled:
			fmt.Fprintln(w.out, "Order cancelled.")
			w.logger.Info("order cancelled before commit")
			return nil
		}
	}
}

// browse runs the category selection round. Backing out cancels the
// order only while the cart is still empty; with contents from an
// earlier round it proceeds to confirmation instead.
func (w *Workflow) browse(cart *Cart) ([]model.Product, State) {
	for {
		subset, back := w.selectCatalog()
		if back {
			if cart.IsEmpty() {
				return nil, StateCancelled
			}
			return nil, StateConfirming
		}
		if len(subset) > 0 {
			return subset, StateBuilding
		}
	}
}

// selectCatalog shows the category menu and returns the product subset
// to order from, or back=true when the user backs out.
func (w *Workflow) selectCatalog() ([]model.Product, bool) {
	products := w.store.Products()
	categories := w.store.Categories()

	for {
		fmt.Fprintf(w.out, "\n--- Product Categories ---\n")
		fmt.Fprintln(w.out, "A. Show All Products")
		if w.cfg.RandomSuggestion {
			fmt.Fprintln(w.out, "R. Suggest Me a Random Product")
		}
		for i, cat := range categories {
			fmt.Fprintf(w.out, "%d. %s\n", i+1, cat)
		}
		fmt.Fprintln(w.out, "B. Back")

		res := w.in.Line("Select category (enter number, 'A' for all, or 'B' to go back): ")
		if res.Outcome == prompt.Back {
			return nil, true
		}

		switch res.Value {
		case "A", "a":
			return products, false
		case "R", "r":
			if !w.cfg.RandomSuggestion {
				fmt.Fprintln(w.out, "Invalid input. Try again.")
				continue
			}
			if suggestion, taken := w.suggestRandom(products); taken {
				return suggestion, false
			}
			continue
		}

		idx, err := menuIndex(res.Value, len(categories))
		if err != nil {
			fmt.Fprintln(w.out, "Invalid input. Try again.")
			continue
		}

		selected := categories[idx]
		var subset []model.Product
		for _, p := range products {
			if p.Category == selected {
				subset = append(subset, p)
			}
		}

		return subset, false
	}
}

// suggestRandom offers one random product; taken is true when the user
// wants to order it.
func (w *Workflow) suggestRandom(products []model.Product) ([]model.Product, bool) {
	p := products[w.randInt(len(products))]

	fmt.Fprintf(w.out, "\nRandom Product Suggestion:\n")
	fmt.Fprintf(w.out, "Name: %s\n", p.Name)
	fmt.Fprintf(w.out, "Category: %s\n", p.Category)
	fmt.Fprintf(w.out, "Price: %s\n", p.Price.StringFixed(2))
	fmt.Fprintf(w.out, "Stock: %d\n", p.Quantity)

	res := w.in.YesNo("Do you want to add this product to your order? (Y/N): ")
	if res.Outcome == prompt.OK && res.Value {
		return []model.Product{p}, true
	}

	return nil, false
}

// build runs one round of item entry against the selected subset.
func (w *Workflow) build(cart *Cart, subset []model.Product) State {
	display.NumberedCatalog(w.out, subset)

	for {
		res := w.in.MenuChoiceOnce(
			"Enter item number to add to cart (0 to finish this catalog, 'b' to cancel order): ",
			0, len(subset))
		if res.Outcome == prompt.Back {
			return StateCancelled
		}
		if res.Outcome == prompt.Invalid {
			fmt.Fprintln(w.out, "Invalid input. Please enter a valid item number.")
			continue
		}
		if res.Value == 0 {
			break
		}

		w.addToCart(cart, subset[res.Value-1])
	}

	more := w.in.YesNo("Do you want to add products from another category? (Y/N): ")
	if more.Outcome == prompt.OK && more.Value {
		return StateBrowsing
	}

	return StateConfirming
}

// addToCart asks for a quantity and reserves it, reporting domain
// errors inline without mutating anything.
func (w *Workflow) addToCart(cart *Cart, p model.Product) {
	res := w.in.Line("Enter quantity: ")
	if res.Outcome == prompt.Back {
		// 'b' is not a quantity; only end of input skips the line.
		if w.in.EOF() {
			return
		}
		fmt.Fprintln(w.out, "Invalid input. Please enter a number.")
		return
	}

	qty, err := parsePositive(res.Value)
	if err != nil {
		fmt.Fprintln(w.out, "Invalid input. Please enter a number.")
		return
	}

	if err := cart.Reserve(p.ID, qty, p.Quantity); err != nil {
		fmt.Fprintln(w.out, "Invalid quantity or not enough stock.")
		return
	}

	fmt.Fprintf(w.out, "Added to cart: %s x%d\n", p.Name, qty)
}

// confirm shows the cart summary and asks for the final go-ahead.
// Declining discards the cart with no side effects.
func (w *Workflow) confirm(cart *Cart) State {
	if cart.IsEmpty() {
		fmt.Fprintln(w.out, "No products were added to your cart. Order cancelled.")
		w.logger.Info("order cancelled with empty cart")
		return StateCompleted
	}

	products := w.store.Products()
	display.CartSummary(w.out, cart.Lines(products), cart.Total(products))

	res := w.in.YesNo("Do you want to confirm your order? (Y/N): ")
	if res.Outcome != prompt.OK || !res.Value {
		return StateCancelled
	}

	return StatePaying
}

// pay commits the stock deduction, then runs payment selection and
// records the completed order. The deduction is irreversible once made,
// even if the user backs out of payment method selection repeatedly.
func (w *Workflow) pay(ctx context.Context, cart *Cart) error {
	products := w.store.Products()
	lines := cart.Lines(products)
	total := cart.Total(products)

	if err := w.commit(ctx, lines); err != nil {
		return err
	}

	method := w.selectPayment(total)

	completed := model.Order{
		ID:       uuid.NewString(),
		Lines:    lines,
		Total:    total,
		Payment:  method,
		PlacedAt: w.now(),
	}

	recorded := w.history.Record(completed)
	if !recorded {
		w.logger.Warn("order history full, order not recorded",
			zap.String("order_id", completed.ID))
	}

	if w.receipts != nil {
		if err := w.receipts.Append(completed); err != nil {
			w.logger.Error("failed to append receipt", zap.Error(err))
		}
	}

	fmt.Fprintln(w.out, "Thank you for your order!")
	fmt.Fprint(w.out, FormatReceipt(completed))
	fmt.Fprintln(w.out, "\nThank you for shopping with us!")

	w.logger.Info("order completed",
		zap.String("order_id", completed.ID),
		zap.String("total", completed.Total.StringFixed(2)),
		zap.String("payment", string(completed.Payment)),
		zap.Int("lines", len(completed.Lines)),
	)

	return nil
}

// commit deducts the cart's reservations from stock and persists the
// catalog.
func (w *Workflow) commit(ctx context.Context, lines []model.OrderLine) error {
	for _, line := range lines {
		if err := w.store.AdjustQuantity(line.ProductID, -line.Quantity); err != nil {
			return fmt.Errorf("committing cart line %d: %w", line.ProductID, err)
		}
	}

	return w.store.Save(ctx)
}

// parsePositive parses a strictly positive all-digit integer.
func parsePositive(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}

	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-numeric value %q", s)
		}
		n = n*10 + int(c-'0')
	}

	if n < 1 {
		return 0, fmt.Errorf("value %d out of range", n)
	}

	return n, nil
}

// menuIndex parses a 1-based menu selection against maxv entries,
// returning its zero-based index.
func menuIndex(s string, maxv int) (int, error) {
	n, err := parsePositive(s)
	if err != nil {
		return 0, err
	}

	if n > maxv {
		return 0, fmt.Errorf("selection %d out of range", n)
	}

	return n - 1, nil
}
