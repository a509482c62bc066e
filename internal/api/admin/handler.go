package admin

import (
	"net/http"
	"time"

	"guide-app/database"
	"guide-app/internal/domain/billing"
	"guide-app/internal/domain/team"
	"guide-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	IsVerified   bool    `json:"is_verified"`
	HasPurchased *string `json:"has_purchased,omitempty"`
	TeamID       *uint   `json:"team_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type AdminPayment struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email,omitempty"`
	PackageKey string  `json:"package_key"`
	Licenses   int     `json:"licenses,omitempty"`
	AmountUSD  float64 `json:"amount_usd"`
	Status     string  `json:"status"`
	Refunded   bool    `json:"refunded"`
	CreatedAt  string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers      int            `json:"total_users"`
	TotalRevenue    float64        `json:"total_revenue"`
	RecentRevenue   float64        `json:"recent_revenue"`
	BuyersPerTier   map[string]int `json:"buyers_per_tier"`
	PendingSessions int            `json:"pending_sessions"`
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(all))
	for _, u := range all {
		out = append(out, AdminUser{
			ID:           u.ID,
			Name:         u.Name,
			Username:     u.Username,
			Email:        u.Email,
			Role:         u.Role,
			IsVerified:   u.IsVerified,
			HasPurchased: u.HasPurchased,
			TeamID:       u.TeamID,
			CreatedAt:    u.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, out)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.Preload("User").Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]AdminPayment, 0, len(payments))
	for _, p := range payments {
		email := ""
		if p.User != nil {
			email = p.User.Email
		}
		out = append(out, AdminPayment{
			ID:         p.ID,
			Email:      email,
			PackageKey: p.PackageKey,
			Licenses:   p.Licenses,
			AmountUSD:  p.AmountUSD,
			Status:     p.Status,
			Refunded:   p.Refunded,
			CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, out)
}

func GetAdminStats(c *gin.Context) {
	var stats AdminStats

	var totalUsers int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	stats.TotalUsers = int(totalUsers)

	database.DB.Model(&billing.Payment{}).
		Where("refunded = ?", false).
		Select("COALESCE(SUM(amount_usd), 0)").
		Scan(&stats.TotalRevenue)

	since := time.Now().AddDate(0, -1, 0)
	database.DB.Model(&billing.Payment{}).
		Where("refunded = ? AND created_at > ?", false, since).
		Select("COALESCE(SUM(amount_usd), 0)").
		Scan(&stats.RecentRevenue)

	stats.BuyersPerTier = map[string]int{}
	rows, err := database.DB.Model(&users.User{}).
		Select("has_purchased, COUNT(*)").
		Where("has_purchased IS NOT NULL").
		Group("has_purchased").
		Rows()
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var tier string
			var count int
			if err := rows.Scan(&tier, &count); err == nil {
				stats.BuyersPerTier[tier] = count
			}
		}
	}

	var pending int64
	database.DB.Model(&billing.CheckoutSession{}).
		Where("completed = ? ", false).
		Count(&pending)
	stats.PendingSessions = int(pending)

	c.JSON(http.StatusOK, stats)
}

func GetUserDetails(c *gin.Context) {
	id := c.Param("id")

	var user users.User
	if err := database.DB.Where("id = ?", id).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var userTeam *team.Team
	if user.TeamID != nil {
		var t team.Team
		if err := database.DB.Preload("Members").First(&t, *user.TeamID).Error; err == nil {
			userTeam = &t
		}
	}

	var payments []billing.Payment
	database.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments)

	c.JSON(http.StatusOK, gin.H{
		"user":     user,
		"team":     userTeam,
		"payments": payments,
	})
}
