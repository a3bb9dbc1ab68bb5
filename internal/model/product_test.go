package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr error
	}{
		{
			name: "valid product",
			product: Product{
				ID:       1,
				Name:     "Rice",
				Category: "Grains",
				Quantity: 5,
				Price:    decimal.NewFromFloat(20.0),
			},
			wantErr: nil,
		},
		{
			name: "zero quantity is valid",
			product: Product{
				ID:       2,
				Name:     "Bread",
				Category: "Bakery",
				Quantity: 0,
				Price:    decimal.NewFromFloat(35.50),
			},
			wantErr: nil,
		},
		{
			name: "empty name",
			product: Product{
				Category: "Grains",
				Quantity: 1,
				Price:    decimal.NewFromInt(10),
			},
			wantErr: ErrEmptyName,
		},
		{
			name: "name without a letter",
			product: Product{
				Name:     "12345",
				Category: "Grains",
				Quantity: 1,
				Price:    decimal.NewFromInt(10),
			},
			wantErr: ErrNameNeedsLetter,
		},
		{
			name: "empty category",
			product: Product{
				Name:     "Rice",
				Quantity: 1,
				Price:    decimal.NewFromInt(10),
			},
			wantErr: ErrEmptyCategory,
		},
		{
			name: "category without a letter",
			product: Product{
				Name:     "Rice",
				Category: "99",
				Quantity: 1,
				Price:    decimal.NewFromInt(10),
			},
			wantErr: ErrCategoryNeedsLetter,
		},
		{
			name: "negative quantity",
			product: Product{
				Name:     "Rice",
				Category: "Grains",
				Quantity: -1,
				Price:    decimal.NewFromInt(10),
			},
			wantErr: ErrNegativeQuantity,
		},
		{
			name: "zero price",
			product: Product{
				Name:     "Rice",
				Category: "Grains",
				Quantity: 1,
				Price:    decimal.Zero,
			},
			wantErr: ErrNonPositivePrice,
		},
		{
			name: "negative price",
			product: Product{
				Name:     "Rice",
				Category: "Grains",
				Quantity: 1,
				Price:    decimal.NewFromFloat(-1.25),
			},
			wantErr: ErrNonPositivePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.product.Validate()

			// Assert
			if err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProduct_LineCost(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		qty   int
		want  string
	}{
		{
			name:  "whole units",
			price: decimal.NewFromFloat(20.0),
			qty:   3,
			want:  "60.00",
		},
		{
			name:  "fractional price",
			price: decimal.NewFromFloat(12.75),
			qty:   4,
			want:  "51.00",
		},
		{
			name:  "single unit",
			price: decimal.NewFromFloat(0.05),
			qty:   1,
			want:  "0.05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			p := Product{Name: "Test", Category: "Test", Price: tt.price}

			// Act
			cost := p.LineCost(tt.qty)

			// Assert
			if got := cost.StringFixed(2); got != tt.want {
				t.Errorf("LineCost(%d) = %s, want %s", tt.qty, got, tt.want)
			}
		})
	}
}

func TestContainsLetter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain word", input: "Rice", want: true},
		{name: "mixed digits and letters", input: "A1", want: true},
		{name: "digits only", input: "12345", want: false},
		{name: "empty string", input: "", want: false},
		{name: "punctuation only", input: "!?.", want: false},
		{name: "unicode letter", input: "Ñame", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsLetter(tt.input); got != tt.want {
				t.Errorf("ContainsLetter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
