package order

import (
	"github.com/shopspring/decimal"

	"github.com/yanexstore/storefront/internal/model"
)

// History keeps completed orders in memory, capped at a fixed limit.
// Once the cap is reached further orders are not recorded; this is a
// cap, not a ring. Gross income accumulates for every completed order
// regardless of whether its record fit under the cap.
type History struct {
	limit  int
	orders []model.Order
	gross  decimal.Decimal
}

// NewHistory creates a History holding at most limit orders. A limit of
// zero disables recording entirely.
func NewHistory(limit int) *History {
	return &History{limit: limit, gross: decimal.Zero}
}

// Record adds a completed order to the history. It returns false when
// the cap has been reached and the order was not recorded.
func (h *History) Record(o model.Order) bool {
	h.gross = h.gross.Add(o.Total)

	if len(h.orders) >= h.limit {
		return false
	}

	h.orders = append(h.orders, o)

	return true
}

// Orders returns a copy of the recorded orders, oldest first.
func (h *History) Orders() []model.Order {
	orders := make([]model.Order, len(h.orders))
	copy(orders, h.orders)
	return orders
}

// Len returns the number of recorded orders.
func (h *History) Len() int {
	return len(h.orders)
}

// GrossIncome returns the sum of all completed order totals.
func (h *History) GrossIncome() decimal.Decimal {
	return h.gross
}
