package stripe

import "strings"

// Stripe-ish normalization used ONLY for checkout.session.payment_status
func NormalizePaymentStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "paid":
		return "paid"
	case "no_payment_required":
		return "paid"
	case "unpaid", "":
		return "unpaid"
	default:
		return strings.TrimSpace(s)
	}
}

// SessionPaid reports whether a checkout session's payment_status means
// the purchase went through.
func SessionPaid(s string) bool {
	return NormalizePaymentStatus(s) == "paid"
}
