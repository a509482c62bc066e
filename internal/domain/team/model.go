package team

import (
	"time"

	"guide-app/internal/domain/users"
)

type Team struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	URLToken   string `gorm:"column:url_token;not null;uniqueIndex:idx_teams_url_token"`
	TotalSeats int    `gorm:"not null"`
	PackageKey string `gorm:"column:package_key;not null"` // "team" | "fullteam"

	Members []users.User `gorm:"foreignKey:TeamID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeatsLeft returns the number of unclaimed seats, never negative.
func (t *Team) SeatsLeft() int {
	left := t.TotalSeats - len(t.Members)
	if left < 0 {
		return 0
	}
	return left
}
