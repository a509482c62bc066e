package users

import (
	"time"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	FirstName    string
	Name         string
	Username     string `gorm:"uniqueIndex:idx_users_username"`
	Email        string `gorm:"not null;uniqueIndex:idx_users_email"`
	Photo        string
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'github'"`
	GithubID     *string `gorm:"column:github_id;uniqueIndex:idx_users_github_id"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	// HasPurchased holds the purchased package key ("basic", "pro",
	// "full", "training", "team", "fullteam"). Nil means no purchase.
	HasPurchased *string `gorm:"column:has_purchased"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	TeamID *uint `gorm:"column:team_id"`

	HasTshirt bool    `gorm:"column:has_tshirt"`
	EbookURL  *string `gorm:"column:ebook_url"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PurchasedKey returns the purchased package key, or "" when the user
// is nil or has not purchased.
func (u *User) PurchasedKey() string {
	if u == nil || u.HasPurchased == nil {
		return ""
	}
	return *u.HasPurchased
}
