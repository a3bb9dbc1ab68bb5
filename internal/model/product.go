// Package model defines data structures used throughout the application.
package model

import (
	"errors"
	"unicode"

	"github.com/shopspring/decimal"
)

// Validation errors for Product.
var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameNeedsLetter  = errors.New("name must contain at least one letter")
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrCategoryNeedsLetter = errors.New("category must contain at least one letter")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrNonPositivePrice = errors.New("price must be greater than zero")
)

// Product represents one catalog entry backed by the flat-file store.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Validate checks if the Product has valid field values.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}

	if !ContainsLetter(p.Name) {
		return ErrNameNeedsLetter
	}

	if p.Category == "" {
		return ErrEmptyCategory
	}

	if !ContainsLetter(p.Category) {
		return ErrCategoryNeedsLetter
	}

	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}

	if !p.Price.IsPositive() {
		return ErrNonPositivePrice
	}

	return nil
}

// LineCost returns the cost of qty units at the product's unit price.
func (p *Product) LineCost(qty int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(qty)))
}

// ContainsLetter reports whether s contains at least one alphabetic rune.
func ContainsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
