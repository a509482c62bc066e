package billing

import (
	"time"

	"guide-app/internal/domain/users"
)

// CheckoutSession mirrors one Stripe checkout session from creation
// until it is associated with a user account. Completed flips when the
// checkout.session.completed webhook arrives; UserID is set by the
// association mutation, which the client polls for.
type CheckoutSession struct {
	ID              uint   `gorm:"primaryKey"`
	StripeSessionID string `gorm:"column:stripe_session_id;not null;uniqueIndex:idx_checkout_sessions_stripe_session_id"`
	PackageKey      string `gorm:"column:package_key;not null"`
	Licenses        int
	AmountUSD       float64
	Completed       bool

	UserID *uint
	User   *users.User

	CreatedAt time.Time
	UpdatedAt time.Time
}
