package stripewebhooks

import (
	"fmt"

	"guide-app/database"
	"guide-app/internal/domain/billing"
	"guide-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// handleChargeRefunded marks the payment refunded and revokes the
// purchase from whichever account the session was associated with.
func handleChargeRefunded(charge *stripe.Charge) error {
	if charge.PaymentIntent == nil || charge.PaymentIntent.ID == "" {
		return fmt.Errorf("refunded charge %s has no payment intent", charge.ID)
	}

	var payment billing.Payment
	if err := database.DB.Where("payment_intent_id = ?", charge.PaymentIntent.ID).First(&payment).Error; err != nil {
		return fmt.Errorf("payment not found for intent=%s: %w", charge.PaymentIntent.ID, err)
	}

	if payment.Refunded {
		return nil
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&billing.Payment{}).
			Where("id = ?", payment.ID).
			Updates(map[string]interface{}{"refunded": true, "status": "refunded"}).Error; err != nil {
			return err
		}

		var session billing.CheckoutSession
		err := tx.Where("stripe_session_id = ?", payment.StripeSessionID).First(&session).Error
		if err != nil || session.UserID == nil {
			// never associated; nothing to revoke
			return nil
		}

		return tx.Model(&users.User{}).
			Where("id = ?", *session.UserID).
			Updates(map[string]interface{}{"has_purchased": nil, "ebook_url": nil}).Error
	})
}
