// Package order implements the order placement workflow: category
// browsing, cart building, confirmation, stock commit, and payment
// selection.
package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/yanexstore/storefront/internal/model"
	"github.com/yanexstore/storefront/internal/store"
)

// Cart errors.
var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// Cart accumulates stock reservations for one order placement session.
// Reservations are in-memory only; the catalog is not mutated until the
// cart is committed.
type Cart struct {
	reserved map[int]int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{reserved: make(map[int]int)}
}

// Reserve adds qty units of a product to the cart. Reservations made
// earlier in the same session count against the same stock ceiling, so
// the request is rejected when qty exceeds available minus what the
// cart already holds.
func (c *Cart) Reserve(productID, qty, available int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	if qty > available-c.reserved[productID] {
		return store.ErrInsufficientStock
	}

	c.reserved[productID] += qty

	return nil
}

// Reserved returns the quantity of a product held in the cart.
func (c *Cart) Reserved(productID int) int {
	return c.reserved[productID]
}

// IsEmpty reports whether the cart holds no reservations.
func (c *Cart) IsEmpty() bool {
	for _, qty := range c.reserved {
		if qty > 0 {
			return false
		}
	}
	return true
}

// Lines resolves the cart against the catalog, returning order lines in
// catalog order with per-line costs.
func (c *Cart) Lines(products []model.Product) []model.OrderLine {
	var lines []model.OrderLine
	for _, p := range products {
		qty := c.reserved[p.ID]
		if qty == 0 {
			continue
		}
		lines = append(lines, model.OrderLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			LineCost:  p.LineCost(qty),
		})
	}

	return lines
}

// Total sums the line costs of the cart against the catalog.
func (c *Cart) Total(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines(products) {
		total = total.Add(line.LineCost)
	}

	return total
}
