package reviews

import (
	"time"

	"guide-app/internal/domain/users"
)

type Review struct {
	ID     uint   `gorm:"primaryKey"`
	Text   string `gorm:"not null"`
	Stars  *int
	UserID uint `gorm:"not null;index"`
	User   users.User

	Favorites []Favorite `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Favorite marks a review as favorited by one user.
type Favorite struct {
	ID       uint `gorm:"primaryKey"`
	ReviewID uint `gorm:"not null;uniqueIndex:idx_favorites_review_user"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_favorites_review_user"`

	CreatedAt time.Time
}
