//go:build integration

// Package integration_test verifies that the catalog and receipt files
// carry state across separate storefront sessions.
package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/yanexstore/storefront/internal/app"
	"github.com/yanexstore/storefront/internal/config"
	"github.com/yanexstore/storefront/internal/store"
)

// storeDir holds the on-disk files shared by the sessions of one test.
type storeDir struct {
	CatalogPath string
	ReceiptPath string
}

// newStoreDir seeds a temp directory with the given catalog contents.
func newStoreDir(t *testing.T, catalog string) storeDir {
	t.Helper()

	dir := t.TempDir()
	d := storeDir{
		CatalogPath: filepath.Join(dir, "products.txt"),
		ReceiptPath: filepath.Join(dir, "receipts.txt"),
	}

	if catalog != "" {
		if err := os.WriteFile(d.CatalogPath, []byte(catalog), 0o644); err != nil {
			t.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	return d
}

// runSession runs one complete storefront session over the shared
// files and returns the console transcript.
func runSession(t *testing.T, d storeDir, input string) string {
	t.Helper()

	cfg := &config.Config{
		CatalogPath:      d.CatalogPath,
		ReceiptPath:      d.ReceiptPath,
		HistoryLimit:     config.DefaultHistoryLimit,
		PaymentAttempts:  config.DefaultPaymentAttempts,
		AdminCommand:     config.DefaultAdminCommand,
		EWalletAccount:   config.DefaultEWalletAccount,
		RandomSuggestion: true,
		LogLevel:         "error",
		LogPath:          filepath.Join(filepath.Dir(d.CatalogPath), "storefront.log"),
	}

	fs := store.NewFileStore(d.CatalogPath)
	out := &bytes.Buffer{}
	a := app.New(cfg, zap.NewNop(), fs, strings.NewReader(input), out)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Session failed: %v", err)
	}

	return out.String()
}

// loadCatalog reloads the shared catalog file into a fresh store.
func loadCatalog(t *testing.T, d storeDir) *store.FileStore {
	t.Helper()

	fs := store.NewFileStore(d.CatalogPath)
	if err := fs.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	return fs
}
