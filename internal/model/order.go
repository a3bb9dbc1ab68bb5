package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how a completed order was paid for.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentEWallet PaymentMethod = "E-Wallet"
)

// OrderLine is one product entry inside a completed order.
type OrderLine struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	LineCost  decimal.Decimal `json:"line_cost"`
}

// Order represents a confirmed and paid customer order.
type Order struct {
	ID       string          `json:"id"`
	Lines    []OrderLine     `json:"lines"`
	Total    decimal.Decimal `json:"total"`
	Payment  PaymentMethod   `json:"payment"`
	PlacedAt time.Time       `json:"placed_at"`
}
