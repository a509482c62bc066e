package billing

import (
	"time"

	"guide-app/internal/domain/users"
)

type Payment struct {
	ID              uint `gorm:"primaryKey"`
	UserID          *uint
	User            *users.User
	PackageKey      string `gorm:"column:package_key"`
	Licenses        int
	StripeSessionID string  `gorm:"uniqueIndex"`
	PaymentIntentID *string `gorm:"column:payment_intent_id;index"`
	AmountUSD       float64
	Status          string
	ReceiptURL      *string
	Refunded        bool
	CreatedAt       time.Time
}
