package billing

import (
	"fmt"
	"net/http"
	"os"

	"guide-app/database"
	authapi "guide-app/internal/api/auth"
	"guide-app/internal/domain/billing"
	"guide-app/internal/domain/packages"
	"guide-app/internal/domain/team"
	"guide-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /associate-session
// Links a completed checkout session to the calling account. The
// client polls this until the checkout.session.completed webhook has
// landed; before that it answers 409 checkout-session-not-completed.
// Re-associating an already-linked session is idempotent.
func AssociateSession(c *gin.Context) {
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid session_id"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var session billing.CheckoutSession
	if err := database.DB.Where("stripe_session_id = ?", body.SessionID).First(&session).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown checkout session"})
		return
	}

	if !session.Completed {
		// Expected while the user is mid-checkout or the webhook is in
		// flight. The client keeps polling.
		c.JSON(http.StatusConflict, gin.H{"error": "checkout-session-not-completed"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if session.UserID != nil {
		if *session.UserID != user.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "session-already-associated"})
			return
		}
		c.JSON(http.StatusOK, associatedUserJSON(user))
		return
	}

	pkg, ok := packages.Get(session.PackageKey)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session has unknown package"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"has_purchased": pkg.Key,
		}
		if ebookURL := os.Getenv("EBOOK_URL"); ebookURL != "" {
			updates["ebook_url"] = ebookURL
		}

		if pkg.IsGroup {
			t := team.Team{
				Name:       teamNameFor(user),
				URLToken:   uuid.NewString(),
				TotalSeats: session.Licenses,
				PackageKey: pkg.Key,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			updates["team_id"] = t.ID
			// the buyer occupies a seat with the individual edition
			updates["has_purchased"] = pkg.Individual()
		}

		if err := tx.Model(&users.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&billing.CheckoutSession{}).
			Where("id = ?", session.ID).
			Update("user_id", user.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to associate session"})
		return
	}

	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload user"})
		return
	}

	if user.EbookURL != nil {
		// delivery failure shouldn't fail the association
		if err := authapi.SendEbookEmail(user.Email, pkg.Name, *user.EbookURL); err != nil {
			fmt.Println("Failed to send ebook email:", err)
		}
	}

	c.JSON(http.StatusOK, associatedUserJSON(user))
}

func associatedUserJSON(user users.User) gin.H {
	return gin.H{
		"user": gin.H{
			"id":           user.ID,
			"hasPurchased": user.HasPurchased,
		},
	}
}

func teamNameFor(user users.User) string {
	if user.FirstName != "" {
		return user.FirstName + "'s team"
	}
	return user.Username + "'s team"
}
