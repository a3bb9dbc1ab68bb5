package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yanexstore/storefront/internal/model"
	"github.com/yanexstore/storefront/internal/prompt"
)

// selectPayment runs payment method selection until a terminal method
// is reached. Backing out of the e-wallet confirmation re-enters
// selection with a fresh attempt budget; it never rolls back the stock
// deduction that already happened.
func (w *Workflow) selectPayment(total decimal.Decimal) model.PaymentMethod {
	for {
		method, done := w.paymentRound(total)
		if done {
			return method
		}
		fmt.Fprintln(w.out, "Returning to payment method selection.")
	}
}

// paymentRound runs one pass of the payment menu. done is false when
// the user asked to re-enter selection.
func (w *Workflow) paymentRound(total decimal.Decimal) (model.PaymentMethod, bool) {
	attempts := 0

	for {
		if w.in.EOF() {
			return model.PaymentCash, true
		}
		if attempts >= w.cfg.PaymentAttempts {
			fmt.Fprintln(w.out, "Maximum attempts reached. Defaulting to Cash payment.")
			return model.PaymentCash, true
		}
		attempts++

		fmt.Fprintf(w.out, "\nSelect Payment Method:\n")
		fmt.Fprintln(w.out, "1. Cash")
		fmt.Fprintln(w.out, "2. E-Wallet")

		res := w.in.MenuChoiceOnce("Enter choice: ", 1, 2)
		switch res.Outcome {
		case prompt.Back:
			if w.in.EOF() {
				return model.PaymentCash, true
			}
			return "", false
		case prompt.Invalid:
			fmt.Fprintln(w.out, "Invalid input. Please enter a number or 'B' to go back.")
			continue
		}

		if res.Value == 1 {
			return model.PaymentCash, true
		}

		return w.confirmEWallet(total)
	}
}

// confirmEWallet shows the payee account and waits for the customer to
// confirm the transfer. done is false when the user wants to reselect
// the payment method.
func (w *Workflow) confirmEWallet(total decimal.Decimal) (model.PaymentMethod, bool) {
	fmt.Fprintf(w.out, "\nTotal amount to send: %s\n", total.StringFixed(2))
	fmt.Fprintln(w.out, "Send to store account:")
	fmt.Fprintln(w.out, w.cfg.EWalletAccount)

	attempts := 0

	for {
		if w.in.EOF() || attempts >= w.cfg.PaymentAttempts {
			if attempts >= w.cfg.PaymentAttempts {
				fmt.Fprintln(w.out, "Maximum confirmation attempts reached. Assuming payment is sent.")
			}
			return model.PaymentEWallet, true
		}

		res := w.in.Line("Have you sent the payment? (Y/N/B for back): ")
		if res.Outcome == prompt.Back {
			if w.in.EOF() {
				return model.PaymentEWallet, true
			}
			return "", false
		}
		if res.Value == "" {
			continue
		}
		attempts++

		switch res.Value[0] {
		case 'Y', 'y':
			return model.PaymentEWallet, true
		case 'N', 'n':
			reselect := w.in.YesNo("Do you want to reselect the payment method? (Y/N): ")
			if reselect.Outcome == prompt.OK && reselect.Value {
				return "", false
			}
		default:
			fmt.Fprintln(w.out, "Invalid choice. Please enter Y, N, or B.")
		}
	}
}
