//go:build functional

package functional

import (
	"strings"
	"testing"
)

const threeProductCatalog = "1|Rice|Grains|5|20\n" +
	"2|Milk|Dairy|8|15.50\n" +
	"3|Soap|Hygiene|10|9.25\n"

func TestSession_FullShoppingTrip(t *testing.T) {
	// View the catalog, then buy 2 Rice and 1 Milk from two category
	// rounds, pay cash, and exit.
	s := NewTestSession(t, threeProductCatalog,
		"1\n"+
			"2\n"+
			"1\n1\n2\n0\nY\n"+
			"2\n1\n1\n0\nN\n"+
			"Y\n1\n"+
			"0\n")

	s.Run()

	s.AssertOutput("Grand Total: 55.50")
	s.AssertOutput("Payment Method: Cash")
	s.AssertOutput("Thank you for visiting!")

	if got := s.PersistedQuantity(1); got != 3 {
		t.Errorf("Rice stock after order = %d, want 3", got)
	}
	if got := s.PersistedQuantity(2); got != 7 {
		t.Errorf("Milk stock after order = %d, want 7", got)
	}

	if !strings.Contains(s.Receipts(), "Payment Method: Cash") {
		t.Error("Receipt file missing the completed order")
	}
}

func TestSession_AdminRestockThenOrder(t *testing.T) {
	// An admin stocks in 5 Rice, then a customer orders 8.
	s := NewTestSession(t, threeProductCatalog,
		"admin\n2\n1\n1\n5\n0\n"+
			"2\nA\n1\n8\n0\nN\nY\n1\n"+
			"0\n")

	s.Run()

	s.AssertOutput("Stock increased.")
	s.AssertOutput("Grand Total: 160.00")

	if got := s.PersistedQuantity(1); got != 2 {
		t.Errorf("Rice stock = %d, want 2", got)
	}
}

func TestSession_GrossIncomeAccumulatesAcrossOrders(t *testing.T) {
	// Two separate orders in one session, then the admin checks the
	// gross income.
	s := NewTestSession(t, threeProductCatalog,
		"2\nA\n1\n1\n0\nN\nY\n1\n"+
			"2\nA\n3\n2\n0\nN\nY\n1\n"+
			"admin\n8\n0\n"+
			"0\n")

	s.Run()

	s.AssertOutput("Gross Income: 38.50")

	if got := strings.Count(s.Receipts(), "Store Receipt"); got != 2 {
		t.Errorf("Receipt file holds %d receipts, want 2", got)
	}
}

func TestSession_EWalletOrder(t *testing.T) {
	s := NewTestSession(t, threeProductCatalog,
		"2\nA\n2\n1\n0\nN\nY\n2\nY\n"+
			"0\n")

	s.Run()

	s.AssertOutput("Send to store account:")
	s.AssertOutput("Payment Method: E-Wallet")

	if got := s.PersistedQuantity(2); got != 7 {
		t.Errorf("Milk stock = %d, want 7", got)
	}
}

func TestSession_AdminAddsProductThenCustomerOrdersIt(t *testing.T) {
	s := NewTestSession(t, threeProductCatalog,
		"admin\n1\nBread\nBakery\n6\n12\n0\n"+
			"2\n4\n1\n2\n0\nN\nY\n1\n"+
			"0\n")

	s.Run()

	s.AssertOutput("Product added successfully!")
	s.AssertOutput("Grand Total: 24.00")

	if got := s.PersistedQuantity(4); got != 4 {
		t.Errorf("Bread stock = %d, want 4", got)
	}
}

func TestSession_CancelledOrderLeavesCatalogUntouched(t *testing.T) {
	s := NewTestSession(t, threeProductCatalog,
		"2\nA\n1\n3\n0\nN\nN\n"+
			"0\n")

	s.Run()

	s.AssertOutput("Order cancelled.")
	s.AssertNoOutput("Store Receipt")

	if got := s.PersistedQuantity(1); got != 5 {
		t.Errorf("Rice stock = %d, want 5", got)
	}
	if s.Receipts() != "" {
		t.Error("Receipt file written for a cancelled order")
	}
}
