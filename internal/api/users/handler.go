package users

import (
	"net/http"

	"guide-app/database"
	"guide-app/internal/domain/team"
	"guide-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var userTeam *team.Team
	if user.TeamID != nil {
		var t team.Team
		if err := database.DB.Preload("Members").Where("id = ?", *user.TeamID).First(&t).Error; err == nil {
			userTeam = &t
		}
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			FirstName:  user.FirstName,
			Name:       user.Name,
			Username:   user.Username,
			Email:      user.Email,
			Photo:      user.Photo,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Purchase: PurchaseDTO{
			HasPurchased: user.HasPurchased,
			Package:      BuildPackageDTO(user),
			HasTshirt:    user.HasTshirt,
			EbookURL:     user.EbookURL,
			Team:         BuildTeamDTO(userTeam),
		},
		Access: BuildAccessDTO(&user),
	}

	c.JSON(http.StatusOK, resp)
}

// GET /verify?token=...
func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := database.DB.Where("token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&t)

	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}
