package content

import (
	"net/http"

	"guide-app/database"
	"guide-app/internal/domain/paywall"
	"guide-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /content/decision/*path
//
// The rendering layer asks this for every navigation and picks between
// the full page, the header-only shell, and the paywall message. Auth
// is optional: anonymous readers get sign-in prompts on gated paths.
func GetDecision(c *gin.Context) {
	pathname := c.Param("path")

	var user *users.User
	if userID := c.GetUint("user_id"); userID != 0 {
		var u users.User
		if err := database.DB.Where("id = ?", userID).First(&u).Error; err == nil {
			user = &u
		}
	}

	d := paywall.Decide(pathname, user)

	resp := gin.H{
		"visible":    d.Visible,
		"category":   string(d.Category),
		"headerOnly": d.HeaderOnly(),
	}
	if d.CTAMessage != "" {
		resp["ctaMessage"] = d.CTAMessage
	}
	if d.PromptSignIn {
		resp["promptSignIn"] = true
	}

	c.JSON(http.StatusOK, resp)
}
