package middleware

import (
	"net/http"

	"guide-app/database"
	"guide-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequirePurchase gates endpoints that only buyers may use (e.g.
// posting a review). Any package counts; per-path tier checks are the
// paywall's job.
func RequirePurchase() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user users.User
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if user.HasPurchased == nil || *user.HasPurchased == "" {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Purchase required",
			})
			return
		}

		c.Next()
	}
}
