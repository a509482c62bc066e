package stripewebhooks

import (
	"errors"
	"fmt"

	"guide-app/database"
	"guide-app/internal/domain/billing"
	stripeinfra "guide-app/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// handleCheckoutSessionCompleted marks the local session record
// completed and records the payment. The purchase itself is granted
// later, when the signed-in client calls /associate-session: the
// webhook can't know which account the buyer will sign in with.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("payment_intent"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if !stripeinfra.SessionPaid(string(fullSession.PaymentStatus)) {
		return errors.New("checkout session completed but not paid")
	}

	var record billing.CheckoutSession
	if err := database.DB.Where("stripe_session_id = ?", fullSession.ID).First(&record).Error; err != nil {
		return fmt.Errorf("checkout session not found for stripe id=%s: %w", fullSession.ID, err)
	}

	if record.Completed {
		// webhook redelivery
		return nil
	}

	if err := database.DB.Model(&billing.CheckoutSession{}).
		Where("id = ?", record.ID).
		Update("completed", true).Error; err != nil {
		return fmt.Errorf("failed to mark session completed: %w", err)
	}

	payment := billing.Payment{
		PackageKey:      record.PackageKey,
		Licenses:        record.Licenses,
		StripeSessionID: fullSession.ID,
		AmountUSD:       float64(fullSession.AmountTotal) / 100,
		Status:          "paid",
	}
	if fullSession.PaymentIntent != nil && fullSession.PaymentIntent.ID != "" {
		id := fullSession.PaymentIntent.ID
		payment.PaymentIntentID = &id
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	return nil
}
