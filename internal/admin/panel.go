// Package admin implements the hidden inventory management panel.
package admin

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/yanexstore/storefront/internal/display"
	"github.com/yanexstore/storefront/internal/model"
	"github.com/yanexstore/storefront/internal/order"
	"github.com/yanexstore/storefront/internal/prompt"
	"github.com/yanexstore/storefront/internal/store"

	"github.com/shopspring/decimal"
)

// Panel handles admin catalog CRUD, stock adjustment, and reporting.
type Panel struct {
	store   store.Store
	in      *prompt.Reader
	out     io.Writer
	logger  *zap.Logger
	history *order.History
}

// NewPanel creates a Panel instance.
func NewPanel(s store.Store, in *prompt.Reader, out io.Writer, logger *zap.Logger, history *order.History) *Panel {
	return &Panel{
		store:   s,
		in:      in,
		out:     out,
		logger:  logger,
		history: history,
	}
}

// Run drives the admin menu until the admin exits.
func (p *Panel) Run(ctx context.Context) error {
	if err := p.store.Load(ctx); err != nil {
		if !errors.Is(err, store.ErrMalformedRecord) {
			return fmt.Errorf("admin panel: %w", err)
		}
		p.logger.Warn("catalog loaded with malformed records", zap.Error(err))
	}

	for {
		fmt.Fprintf(p.out, "\n--- Inventory Management Panel ---\n")
		fmt.Fprintln(p.out, "1. Add New Product")
		fmt.Fprintln(p.out, "2. Update Product Stock (Stock In/Out)")
		fmt.Fprintln(p.out, "3. Search Product")
		fmt.Fprintln(p.out, "4. Display All Products")
		fmt.Fprintln(p.out, "5. Calculate Inventory Value")
		fmt.Fprintln(p.out, "6. Delete a Product")
		fmt.Fprintln(p.out, "7. View Order History")
		fmt.Fprintln(p.out, "8. View Gross Income")
		fmt.Fprintln(p.out, "0. Exit Admin Panel")

		res := p.in.MenuChoice("Enter choice (or 'b' to go back): ", 0, 8)
		if res.Outcome == prompt.Back {
			return nil
		}

		switch res.Value {
		case 1:
			p.addProduct(ctx)
		case 2:
			p.updateStock(ctx)
		case 3:
			p.searchProduct()
		case 4:
			display.Catalog(p.out, p.store.Products())
		case 5:
			p.inventoryValue()
		case 6:
			p.deleteProduct(ctx)
		case 7:
			display.OrderHistory(p.out, p.history.Orders())
		case 8:
			fmt.Fprintf(p.out, "\nGross Income: %s\n", p.history.GrossIncome().StringFixed(2))
		case 0:
			return nil
		}
	}
}

// addProduct walks through the new-product prompts and persists the
// catalog on success. Backing out at any prompt abandons the product.
func (p *Panel) addProduct(ctx context.Context) {
	fmt.Fprintf(p.out, "\nAssigned Product ID: %d\n", p.store.NextID())

	name := p.in.TextWithLetter("Enter Product Name (must contain a letter, or 'b' to go back): ")
	if name.Outcome != prompt.OK {
		return
	}

	category := p.in.TextWithLetter("Enter Product Category (e.g., Grains, Dairy, etc., or 'b' to go back): ")
	if category.Outcome != prompt.OK {
		return
	}

	qty := p.in.PositiveInt("Enter Quantity (number > 0, or 'b' to go back): ")
	if qty.Outcome != prompt.OK {
		return
	}

	price := p.in.PositiveDecimal("Enter Price (number > 0, or 'b' to go back): ")
	if price.Outcome != prompt.OK {
		return
	}

	created, err := p.store.Add(&model.Product{
		Name:     name.Value,
		Category: category.Value,
		Quantity: qty.Value,
		Price:    price.Value,
	})
	if err != nil {
		p.reportError(err)
		return
	}

	if !p.persist(ctx) {
		return
	}

	p.logger.Info("product added",
		zap.Int("product_id", created.ID),
		zap.String("name", created.Name),
	)
	fmt.Fprintln(p.out, "Product added successfully!")
}

// updateStock applies a stock-in or stock-out adjustment to a product
// picked by ID or name.
func (p *Panel) updateStock(ctx context.Context) {
	key := p.in.Line("\nEnter Product ID or Name to update (or 'b' to go back): ")
	if key.Outcome != prompt.OK {
		return
	}

	product, err := p.store.FindByKey(key.Value)
	if err != nil {
		p.reportError(err)
		return
	}

	direction := p.in.MenuChoice("1. Stock In\n2. Stock Out\nEnter choice (or 'b' to go back): ", 1, 2)
	if direction.Outcome != prompt.OK {
		return
	}

	qty := p.in.PositiveInt("Enter quantity (number > 0, or 'b' to go back): ")
	if qty.Outcome != prompt.OK {
		return
	}

	delta := qty.Value
	if direction.Value == 2 {
		delta = -delta
	}

	if err := p.store.AdjustQuantity(product.ID, delta); err != nil {
		p.reportError(err)
		return
	}

	if !p.persist(ctx) {
		return
	}

	if delta > 0 {
		fmt.Fprintln(p.out, "Stock increased.")
	} else {
		fmt.Fprintln(p.out, "Stock decreased.")
	}
	p.logger.Info("stock adjusted",
		zap.Int("product_id", product.ID),
		zap.Int("delta", delta),
	)
}

// searchProduct finds products by name substring and shows details for
// the picked match.
func (p *Panel) searchProduct() {
	text := p.in.Line("\nEnter product name or part of it (or 'b' to go back): ")
	if text.Outcome != prompt.OK {
		return
	}

	matches := p.store.FindBySubstring(text.Value)
	if len(matches) == 0 {
		fmt.Fprintln(p.out, "No matching products found.")
		return
	}

	fmt.Fprintf(p.out, "\nMatching products:\n")
	for i, m := range matches {
		fmt.Fprintf(p.out, "%d. %s (ID: %d)\n", i+1, m.Name, m.ID)
	}

	if len(matches) == 1 {
		display.ProductDetails(p.out, matches[0])
		return
	}

	pick := p.in.MenuChoiceOnce("Enter number to see product details or 'b' to cancel: ", 1, len(matches))
	if pick.Outcome != prompt.OK {
		if pick.Outcome == prompt.Invalid {
			fmt.Fprintln(p.out, "Invalid selection.")
		}
		return
	}

	display.ProductDetails(p.out, matches[pick.Value-1])
}

// inventoryValue sums quantity times unit price over the catalog.
func (p *Panel) inventoryValue() {
	total := decimal.Zero
	for _, product := range p.store.Products() {
		total = total.Add(product.LineCost(product.Quantity))
	}

	fmt.Fprintf(p.out, "\nTotal Inventory Value: %s\n", total.StringFixed(2))
}

// deleteProduct removes a product picked by ID or name and persists the
// catalog.
func (p *Panel) deleteProduct(ctx context.Context) {
	key := p.in.Line("\nEnter Product ID or Name to delete (or 'b' to go back): ")
	if key.Outcome != prompt.OK {
		return
	}

	product, err := p.store.FindByKey(key.Value)
	if err != nil {
		p.reportError(err)
		return
	}

	if err := p.store.Delete(product.ID); err != nil {
		p.reportError(err)
		return
	}

	if !p.persist(ctx) {
		return
	}

	p.logger.Info("product deleted", zap.Int("product_id", product.ID))
	fmt.Fprintln(p.out, "Product deleted successfully.")
}

// persist saves the catalog file, reporting failures to the admin.
func (p *Panel) persist(ctx context.Context) bool {
	if err := p.store.Save(ctx); err != nil {
		p.logger.Error("failed to save catalog", zap.Error(err))
		fmt.Fprintln(p.out, "Failed to save the catalog. Check the log for details.")
		return false
	}
	return true
}

// reportError maps store errors to inline admin messages.
func (p *Panel) reportError(err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(p.out, "Product not found.")
	case errors.Is(err, store.ErrInsufficientStock):
		fmt.Fprintln(p.out, "Not enough stock.")
	default:
		p.logger.Error("admin operation failed", zap.Error(err))
		fmt.Fprintln(p.out, "Operation failed. Check the log for details.")
	}
}
