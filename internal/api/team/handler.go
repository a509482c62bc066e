package team

import (
	"net/http"

	"guide-app/database"
	"guide-app/internal/domain/packages"
	"guide-app/internal/domain/team"
	"guide-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type memberDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func teamJSON(t team.Team) gin.H {
	members := make([]memberDTO, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, memberDTO{ID: m.ID, Name: m.Name, Username: m.Username})
	}
	return gin.H{
		"id":          t.ID,
		"name":        t.Name,
		"totalSeats":  t.TotalSeats,
		"seatsLeft":   t.SeatsLeft(),
		"packageType": t.PackageKey,
		"members":     members,
	}
}

// GET /teams/:token — public, so invitees see the team before signing in.
func GetTeam(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token parameter"})
		return
	}

	var t team.Team
	if err := database.DB.Preload("Members").Where("url_token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": teamJSON(t)})
}

// POST /teams/:token/join  body: {"claiming": bool}
//
// claiming is set when the user clicked "Claim seat" before signing in
// and the client is completing that intent after login. It bypasses the
// already-purchased rejection so a buyer can still land on their own
// team page and claim.
func JoinTeam(c *gin.Context) {
	token := c.Param("token")
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Claiming bool `json:"claiming"`
	}
	_ = c.ShouldBindJSON(&input) // body optional

	var t team.Team
	if err := database.DB.Preload("Members").Where("url_token = ?", token).First(&t).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such team"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if user.TeamID != nil && *user.TeamID == t.ID {
		// already a member; answer with the current roster
		c.JSON(http.StatusOK, gin.H{"team": teamJSON(t)})
		return
	}

	if user.HasPurchased != nil && !input.Claiming {
		c.JSON(http.StatusConflict, gin.H{
			"error": "You already have access to the Guide. Contact us with questions: team@graphql.guide",
		})
		return
	}

	pkg, ok := packages.Get(t.PackageKey)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Team has unknown package"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// recount inside the transaction so two claims can't take the
		// last seat twice
		var claimed int64
		if err := tx.Model(&users.User{}).Where("team_id = ?", t.ID).Count(&claimed).Error; err != nil {
			return err
		}
		if int(claimed) >= t.TotalSeats {
			return errTeamFull
		}

		return tx.Model(&users.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"team_id":       t.ID,
				"has_purchased": pkg.Individual(),
			}).Error
	})
	if err == errTeamFull {
		c.JSON(http.StatusConflict, gin.H{"error": "No seats left on this team"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim seat"})
		return
	}

	database.DB.Preload("Members").First(&t, t.ID)
	c.JSON(http.StatusOK, gin.H{"team": teamJSON(t)})
}
