package billing

import (
	"net/http"

	"guide-app/database"
	"guide-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GET /payments
func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]gin.H, 0, len(payments))
	for _, p := range payments {
		out = append(out, gin.H{
			"id":         p.ID,
			"packageKey": p.PackageKey,
			"licenses":   p.Licenses,
			"amountUsd":  p.AmountUSD,
			"status":     p.Status,
			"receiptUrl": p.ReceiptURL,
			"refunded":   p.Refunded,
			"createdAt":  p.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"payments": out})
}
