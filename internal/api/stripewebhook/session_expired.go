package stripewebhooks

import (
	"fmt"

	"guide-app/database"
	"guide-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
)

// handleCheckoutSessionExpired discards the local record of an
// abandoned checkout. The client's polling loop then finds no session
// to reconcile and goes idle.
func handleCheckoutSessionExpired(session *stripe.CheckoutSession) error {
	var record billing.CheckoutSession
	if err := database.DB.Where("stripe_session_id = ?", session.ID).First(&record).Error; err != nil {
		// already gone, nothing to do
		return nil
	}

	if record.Completed || record.UserID != nil {
		return fmt.Errorf("refusing to expire completed session stripe id=%s", session.ID)
	}

	return database.DB.Delete(&record).Error
}
