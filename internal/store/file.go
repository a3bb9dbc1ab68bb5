package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yanexstore/storefront/internal/model"
)

// fieldCount is the number of pipe-separated fields per catalog record.
const fieldCount = 5

// FileStore implements Store backed by a pipe-delimited text file with
// one `id|name|category|quantity|price` record per line.
//
// The name and category fields carry no escaping: a literal `|` inside
// either corrupts the row. This matches the established file format and
// is not silently worked around.
type FileStore struct {
	path     string
	products []model.Product
}

// NewFileStore creates a FileStore for the given file path. The file is
// not touched until Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load replaces the in-memory catalog by parsing the backing file line
// by line. A missing file yields an empty catalog and a nil error.
// Malformed lines are skipped; when any are present, Load still keeps
// the parseable records and returns an error wrapping
// ErrMalformedRecord that describes every rejected line.
func (s *FileStore) Load(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("load catalog: %w", ctx.Err())
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.products = nil
			return nil
		}
		return fmt.Errorf("load catalog: %w", err)
	}

	var (
		products []model.Product
		badLines []error
	)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		product, err := parseRecord(line)
		if err != nil {
			badLines = append(badLines, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}

		products = append(products, *product)
	}

	s.products = products

	if len(badLines) > 0 {
		return fmt.Errorf("load catalog: %w", errors.Join(badLines...))
	}

	return nil
}

// Save serializes the full in-memory catalog back to the backing file.
// The write goes to a temporary file in the same directory which is
// renamed over the target, so a crash mid-write never leaves a
// partially written catalog behind.
func (s *FileStore) Save(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("save catalog: %w", ctx.Err())
	default:
	}

	var sb strings.Builder
	for _, p := range s.products {
		sb.WriteString(encodeRecord(p))
		sb.WriteByte('\n')
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	if _, err := tmp.WriteString(sb.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("save catalog: %w", err)
	}

	return nil
}

// Products returns a copy of the catalog in file order.
func (s *FileStore) Products() []model.Product {
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

// FindByID retrieves a product by its ID.
func (s *FileStore) FindByID(id int) (*model.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	for i := range s.products {
		if s.products[i].ID == id {
			product := s.products[i]
			return &product, nil
		}
	}

	return nil, ErrNotFound
}

// FindByExactName retrieves a product whose trimmed name matches name.
func (s *FileStore) FindByExactName(name string) (*model.Product, error) {
	key := strings.TrimSpace(name)
	for i := range s.products {
		if strings.TrimSpace(s.products[i].Name) == key {
			product := s.products[i]
			return &product, nil
		}
	}

	return nil, ErrNotFound
}

// FindByKey retrieves a product by ID string or exact name.
func (s *FileStore) FindByKey(key string) (*model.Product, error) {
	key = strings.TrimSpace(key)
	if id, err := strconv.Atoi(key); err == nil {
		if product, err := s.FindByID(id); err == nil {
			return product, nil
		}
	}

	return s.FindByExactName(key)
}

// FindBySubstring returns products whose names contain text,
// case-insensitively, in catalog order. No ranking is applied.
func (s *FileStore) FindBySubstring(text string) []model.Product {
	needle := strings.ToLower(text)

	var matches []model.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}

	return matches
}

// Categories returns distinct category names in first-seen order.
func (s *FileStore) Categories() []string {
	seen := make(map[string]bool)

	var categories []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return categories
}

// NextID returns max(existing IDs) + 1, or 1 for an empty catalog.
func (s *FileStore) NextID() int {
	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return maxID + 1
}

// Add assigns a fresh ID to the product and appends it to the catalog.
func (s *FileStore) Add(product *model.Product) (*model.Product, error) {
	if product == nil {
		return nil, ErrNilProduct
	}

	stored := model.Product{
		ID:       s.NextID(),
		Name:     product.Name,
		Category: product.Category,
		Quantity: product.Quantity,
		Price:    product.Price,
	}

	if err := stored.Validate(); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}

	s.products = append(s.products, stored)

	return &stored, nil
}

// Delete removes a product from the catalog by its ID.
func (s *FileStore) Delete(id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}

	return ErrNotFound
}

// AdjustQuantity applies delta to a product's stock, rejecting any
// adjustment that would drive the quantity negative.
func (s *FileStore) AdjustQuantity(id, delta int) error {
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		if s.products[i].Quantity+delta < 0 {
			return ErrInsufficientStock
		}

		s.products[i].Quantity += delta

		return nil
	}

	return ErrNotFound
}

// parseRecord decodes one `id|name|category|quantity|price` line.
func parseRecord(line string) (*model.Product, error) {
	fields := strings.Split(line, "|")
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d",
			ErrMalformedRecord, fieldCount, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric id %q", ErrMalformedRecord, fields[0])
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric quantity %q", ErrMalformedRecord, fields[3])
	}

	price, err := decimal.NewFromString(strings.TrimSpace(fields[4]))
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric price %q", ErrMalformedRecord, fields[4])
	}

	product := model.Product{
		ID:       id,
		Name:     fields[1],
		Category: fields[2],
		Quantity: quantity,
		Price:    price,
	}

	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	return &product, nil
}

// encodeRecord serializes one product as a pipe-delimited line.
func encodeRecord(p model.Product) string {
	return fmt.Sprintf("%d|%s|%s|%d|%s", p.ID, p.Name, p.Category, p.Quantity, p.Price.String())
}
