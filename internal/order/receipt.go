package order

import (
	"fmt"
	"os"
	"strings"

	"github.com/yanexstore/storefront/internal/model"
)

// receiptBanner separates receipts in the append-only receipt file.
const receiptBanner = "-----------------------------"

// ReceiptWriter appends human-readable receipts to a text file. The
// file is a plain log for people, not a machine-parseable store.
type ReceiptWriter struct {
	path string
}

// NewReceiptWriter creates a ReceiptWriter targeting path.
func NewReceiptWriter(path string) *ReceiptWriter {
	return &ReceiptWriter{path: path}
}

// Append writes one order's receipt to the end of the file, creating it
// on first use.
func (rw *ReceiptWriter) Append(o model.Order) error {
	f, err := os.OpenFile(rw.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append receipt: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.WriteString(FormatReceipt(o)); err != nil {
		return fmt.Errorf("append receipt: %w", err)
	}

	return nil
}

// FormatReceipt renders one order as banner-separated receipt text.
func FormatReceipt(o model.Order) string {
	var sb strings.Builder

	sb.WriteString("\nStore Receipt\n")
	fmt.Fprintf(&sb, "Order: %s\n", o.ID)
	fmt.Fprintf(&sb, "Date: %s\n", o.PlacedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString(receiptBanner + "\n")

	for _, line := range o.Lines {
		fmt.Fprintf(&sb, "Item: %s\n", line.Name)
		fmt.Fprintf(&sb, "Qty: %d\n", line.Quantity)
		fmt.Fprintf(&sb, "Subtotal: %s\n\n", line.LineCost.StringFixed(2))
	}

	sb.WriteString(receiptBanner + "\n")
	fmt.Fprintf(&sb, "Total: %s\n", o.Total.StringFixed(2))
	fmt.Fprintf(&sb, "Payment Method: %s\n", o.Payment)

	return sb.String()
}
