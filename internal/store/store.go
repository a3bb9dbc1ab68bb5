// Package store provides catalog storage interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/yanexstore/storefront/internal/model"
)

// Store errors.
var (
	ErrNotFound          = errors.New("product not found")
	ErrInvalidID         = errors.New("invalid product ID")
	ErrNilProduct        = errors.New("product cannot be nil")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrMalformedRecord   = errors.New("malformed catalog record")
)

// Store defines the interface for catalog storage operations.
//
// Implementations assume a single writer: there is no cross-process
// locking on the backing file, and the last save wins.
type Store interface {
	// Load replaces the in-memory catalog with the backing file's
	// contents. A missing file yields an empty catalog.
	Load(ctx context.Context) error

	// Save writes the full in-memory catalog back to the backing file.
	Save(ctx context.Context) error

	// Products returns the catalog in file order.
	Products() []model.Product

	// FindByID retrieves a product by its ID.
	FindByID(id int) (*model.Product, error)

	// FindByExactName retrieves a product whose trimmed name matches
	// name exactly.
	FindByExactName(name string) (*model.Product, error)

	// FindByKey retrieves a product by ID string or exact name.
	FindByKey(key string) (*model.Product, error)

	// FindBySubstring returns products whose names contain text,
	// case-insensitively, in catalog order.
	FindBySubstring(text string) []model.Product

	// Categories returns distinct category names in first-seen order.
	Categories() []string

	// NextID returns max(existing IDs) + 1, or 1 for an empty catalog.
	NextID() int

	// Add assigns a fresh ID to the product and appends it to the
	// catalog, returning the stored copy.
	Add(product *model.Product) (*model.Product, error)

	// Delete removes a product from the catalog by its ID.
	Delete(id int) error

	// AdjustQuantity applies delta to a product's stock. A delta that
	// would drive the quantity negative is rejected before mutation.
	AdjustQuantity(id, delta int) error
}
