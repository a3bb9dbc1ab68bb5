// Package app wires the storefront menus together over one console
// session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/yanexstore/storefront/internal/admin"
	"github.com/yanexstore/storefront/internal/config"
	"github.com/yanexstore/storefront/internal/display"
	"github.com/yanexstore/storefront/internal/order"
	"github.com/yanexstore/storefront/internal/prompt"
	"github.com/yanexstore/storefront/internal/store"
)

// App runs the top-level storefront menu.
type App struct {
	config  *config.Config
	logger  *zap.Logger
	store   store.Store
	in      *prompt.Reader
	out     io.Writer
	history *order.History
	admin   *admin.Panel

	workflowCfg order.Config
	receipts    *order.ReceiptWriter
}

// New creates an App instance reading from in and writing to out.
func New(cfg *config.Config, logger *zap.Logger, s store.Store, in io.Reader, out io.Writer) *App {
	reader := prompt.New(in, out)
	history := order.NewHistory(cfg.HistoryLimit)

	var receipts *order.ReceiptWriter
	if cfg.ReceiptPath != "" {
		receipts = order.NewReceiptWriter(cfg.ReceiptPath)
	}

	return &App{
		config:  cfg,
		logger:  logger,
		store:   s,
		in:      reader,
		out:     out,
		history: history,
		admin:   admin.NewPanel(s, reader, out, logger, history),
		workflowCfg: order.Config{
			PaymentAttempts:  cfg.PaymentAttempts,
			RandomSuggestion: cfg.RandomSuggestion,
			EWalletAccount:   cfg.EWalletAccount,
		},
		receipts: receipts,
	}
}

// Run drives the top-level menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("storefront session started",
		zap.String("catalog_path", a.config.CatalogPath),
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(a.out, "\n=== Welcome to Yanex General Store ===\n")
		fmt.Fprintln(a.out, "1. View Product Catalog")
		fmt.Fprintln(a.out, "2. Place an Order")
		fmt.Fprintln(a.out, "0. Exit")

		choice := a.in.Line("Enter choice: ")
		if choice.Outcome == prompt.Back {
			if a.in.EOF() {
				a.logger.Info("storefront session ended")
				fmt.Fprintln(a.out, "Thank you for visiting!")
				return nil
			}
			continue
		}

		if choice.Value == a.config.AdminCommand {
			if err := a.admin.Run(ctx); err != nil {
				return err
			}
			continue
		}

		switch choice.Value {
		case "1":
			if err := a.viewCatalog(ctx); err != nil {
				return err
			}
		case "2":
			workflow := order.NewWorkflow(
				a.store, a.in, a.out, a.logger, a.workflowCfg, a.history, a.receipts,
			)
			if err := workflow.Run(ctx); err != nil {
				return err
			}
		case "0":
			a.logger.Info("storefront session ended")
			fmt.Fprintln(a.out, "Thank you for visiting!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}
	}
}

// viewCatalog reloads the catalog file and prints it.
func (a *App) viewCatalog(ctx context.Context) error {
	if err := a.store.Load(ctx); err != nil {
		if !errors.Is(err, store.ErrMalformedRecord) {
			return fmt.Errorf("view catalog: %w", err)
		}
		a.logger.Warn("catalog loaded with malformed records", zap.Error(err))
	}

	display.Catalog(a.out, a.store.Products())
	return nil
}
