// Package display renders catalog and order tables for the console.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yanexstore/storefront/internal/model"
)

// Column widths for catalog tables.
const (
	widthID       = 8
	widthName     = 32
	widthCategory = 22
	widthQty      = 10
	widthPrice    = 12
)

// Column widths for order summaries.
const (
	widthSummaryName = 25
	widthSummaryQty  = 10
	widthSummaryCost = 20
)

// Catalog writes the full product table with an ID column.
func Catalog(w io.Writer, products []model.Product) {
	fmt.Fprintf(w, "\n--- Product Catalog ---\n")
	fmt.Fprintf(w, "%-*s%-*s%-*s%-*s%-*s\n",
		widthID, "ProdID",
		widthName, "Name",
		widthCategory, "Category",
		widthQty, "Qty",
		widthPrice, "Price")
	fmt.Fprintln(w, strings.Repeat("-", widthID+widthName+widthCategory+widthQty+widthPrice))

	for _, p := range products {
		fmt.Fprintf(w, "%-*d%-*s%-*s%-*d%-*s\n",
			widthID, p.ID,
			widthName, p.Name,
			widthCategory, p.Category,
			widthQty, p.Quantity,
			widthPrice, p.Price.StringFixed(2))
	}
}

// NumberedCatalog writes a product subset with 1-based line numbers,
// price and remaining stock, as shown during order placement.
func NumberedCatalog(w io.Writer, products []model.Product) {
	fmt.Fprintf(w, "\n--- Product Catalog ---\n")
	fmt.Fprintf(w, "%-4s%-*s%-*s%-*s%-*s\n",
		"#",
		widthName, "Name",
		widthCategory, "Category",
		widthPrice, "Price",
		widthQty, "Stock")
	fmt.Fprintln(w, strings.Repeat("-", 4+widthName+widthCategory+widthPrice+widthQty))

	for i, p := range products {
		fmt.Fprintf(w, "%-4d%-*s%-*s%-*s%-*d\n",
			i+1,
			widthName, p.Name,
			widthCategory, p.Category,
			widthPrice, p.Price.StringFixed(2),
			widthQty, p.Quantity)
	}
}

// CartSummary writes per-line costs and the grand total for a cart.
func CartSummary(w io.Writer, lines []model.OrderLine, total decimal.Decimal) {
	fmt.Fprintf(w, "\n--- Order Summary ---\n")
	fmt.Fprintf(w, "%-*s%-*s%-*s\n",
		widthSummaryName, "Product",
		widthSummaryQty, "Qty",
		widthSummaryCost, "Total Cost")
	fmt.Fprintln(w, strings.Repeat("-", widthSummaryName+widthSummaryQty+widthSummaryCost))

	for _, line := range lines {
		fmt.Fprintf(w, "%-*s%-*d%s\n",
			widthSummaryName, line.Name,
			widthSummaryQty, line.Quantity,
			line.LineCost.StringFixed(2))
	}

	fmt.Fprintln(w, strings.Repeat("-", widthSummaryName+widthSummaryQty+widthSummaryCost))
	fmt.Fprintf(w, "Grand Total: %s\n", total.StringFixed(2))
}

// ProductDetails writes one product's fields line by line.
func ProductDetails(w io.Writer, p model.Product) {
	fmt.Fprintf(w, "\nProduct details:\n")
	fmt.Fprintf(w, "ID: %d\n", p.ID)
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Category: %s\n", p.Category)
	fmt.Fprintf(w, "Quantity: %d\n", p.Quantity)
	fmt.Fprintf(w, "Price: %s\n", p.Price.StringFixed(2))
}

// OrderHistory writes recorded orders line by line.
func OrderHistory(w io.Writer, orders []model.Order) {
	fmt.Fprintf(w, "\n--- Order History ---\n")
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders recorded.")
		return
	}

	for _, o := range orders {
		fmt.Fprintf(w, "Order %s (%s)\n", o.ID, o.PlacedAt.Format("2006-01-02 15:04:05"))
		for _, line := range o.Lines {
			fmt.Fprintf(w, "  %-*s%-*d%s\n",
				widthSummaryName, line.Name,
				widthSummaryQty, line.Quantity,
				line.LineCost.StringFixed(2))
		}
		fmt.Fprintf(w, "  Total: %s  Payment: %s\n", o.Total.StringFixed(2), o.Payment)
	}
}
