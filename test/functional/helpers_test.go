//go:build functional

// Package functional provides full-session tests for the storefront
// console application.
package functional

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yanexstore/storefront/internal/app"
	"github.com/yanexstore/storefront/internal/config"
	"github.com/yanexstore/storefront/internal/store"
)

// Environment variable names for test configuration.
const (
	EnvTestTimeout  = "TEST_TIMEOUT"
	EnvTestLogLevel = "TEST_LOG_LEVEL"
)

// Default test configuration values.
const (
	DefaultTestTimeout = 30 * time.Second
)

// sessionTimeout returns the per-session timeout, honoring TEST_TIMEOUT.
func sessionTimeout() time.Duration {
	if val := os.Getenv(EnvTestTimeout); val != "" {
		if timeout, err := time.ParseDuration(val); err == nil {
			return timeout
		}
	}
	return DefaultTestTimeout
}

// TestSession wraps one scripted console session against a real
// catalog file on disk.
type TestSession struct {
	App         *app.App
	Store       *store.FileStore
	Out         *bytes.Buffer
	CatalogPath string
	ReceiptPath string
	t           *testing.T
}

// NewTestSession creates a session over a fresh temp catalog seeded
// with the given file contents, fed by the scripted input.
func NewTestSession(t *testing.T, catalog, input string) *TestSession {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "products.txt")
	receiptPath := filepath.Join(dir, "receipts.txt")
	if catalog != "" {
		if err := os.WriteFile(catalogPath, []byte(catalog), 0o644); err != nil {
			t.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	cfg := &config.Config{
		CatalogPath:      catalogPath,
		ReceiptPath:      receiptPath,
		HistoryLimit:     config.DefaultHistoryLimit,
		PaymentAttempts:  config.DefaultPaymentAttempts,
		AdminCommand:     config.DefaultAdminCommand,
		EWalletAccount:   config.DefaultEWalletAccount,
		RandomSuggestion: true,
		LogLevel:         "error",
		LogPath:          filepath.Join(dir, "storefront.log"),
	}

	fs := store.NewFileStore(catalogPath)
	out := &bytes.Buffer{}

	return &TestSession{
		App:         app.New(cfg, zap.NewNop(), fs, strings.NewReader(input), out),
		Store:       fs,
		Out:         out,
		CatalogPath: catalogPath,
		ReceiptPath: receiptPath,
		t:           t,
	}
}

// Run drives the session to completion.
func (s *TestSession) Run() {
	s.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), sessionTimeout())
	defer cancel()

	if err := s.App.Run(ctx); err != nil {
		s.t.Fatalf("Session failed: %v", err)
	}
}

// PersistedQuantity reloads the catalog file and returns the stock of
// the given product.
func (s *TestSession) PersistedQuantity(id int) int {
	s.t.Helper()

	fresh := store.NewFileStore(s.CatalogPath)
	if err := fresh.Load(context.Background()); err != nil {
		s.t.Fatalf("Failed to reload catalog: %v", err)
	}
	p, err := fresh.FindByID(id)
	if err != nil {
		s.t.Fatalf("Product %d not found after reload: %v", id, err)
	}
	return p.Quantity
}

// Receipts returns the receipt file contents, or "" if none was
// written.
func (s *TestSession) Receipts() string {
	s.t.Helper()

	data, err := os.ReadFile(s.ReceiptPath)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		s.t.Fatalf("Failed to read receipts: %v", err)
	}
	return string(data)
}

// AssertOutput asserts the console transcript contains want.
func (s *TestSession) AssertOutput(want string) {
	s.t.Helper()

	if !strings.Contains(s.Out.String(), want) {
		s.t.Errorf("Console output missing %q.\nTranscript:\n%s", want, s.Out.String())
	}
}

// AssertNoOutput asserts the console transcript does not contain want.
func (s *TestSession) AssertNoOutput(want string) {
	s.t.Helper()

	if strings.Contains(s.Out.String(), want) {
		s.t.Errorf("Console output unexpectedly contains %q", want)
	}
}
