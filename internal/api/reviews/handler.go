package reviews

import (
	"net/http"
	"strconv"

	"guide-app/database"
	"guide-app/internal/domain/reviews"

	"github.com/gin-gonic/gin"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func reviewID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review id"})
		return 0, false
	}
	return uint(id), true
}

// GET /reviews?limit=20&offset=0
func ListReviews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var list []reviews.Review
	err := database.DB.
		Preload("User").
		Preload("Favorites").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	userID := c.GetUint("user_id") // zero when anonymous

	out := make([]ReviewDTO, 0, len(list))
	for _, r := range list {
		out = append(out, toReviewDTO(r, userID))
	}
	c.JSON(http.StatusOK, gin.H{"reviews": out})
}

// POST /reviews (purchase required)
func CreateReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input struct {
		Text  string `json:"text" binding:"required"`
		Stars *int   `json:"stars"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Stars != nil && (*input.Stars < 1 || *input.Stars > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stars must be between 1 and 5"})
		return
	}

	review := reviews.Review{
		Text:   input.Text,
		Stars:  input.Stars,
		UserID: userID,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	database.DB.Preload("User").First(&review, review.ID)
	c.JSON(http.StatusCreated, gin.H{"review": toReviewDTO(review, userID)})
}

// PUT /reviews/:id
func UpdateReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var input struct {
		Text  string `json:"text" binding:"required"`
		Stars *int   `json:"stars"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var review reviews.Review
	if err := database.DB.Where("id = ?", id).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	// only the author may edit; surfaced to the client as a blocking
	// alert, never retried
	if review.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
		return
	}

	updates := map[string]interface{}{"text": input.Text, "stars": input.Stars}
	if err := database.DB.Model(&review).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	database.DB.Preload("User").Preload("Favorites").First(&review, review.ID)
	c.JSON(http.StatusOK, gin.H{"review": toReviewDTO(review, userID)})
}

// DELETE /reviews/:id
func DeleteReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var review reviews.Review
	if err := database.DB.Where("id = ?", id).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if review.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
		return
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// POST /reviews/:id/favorite  body: {"favorite": true|false}
func FavoriteReview(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := reviewID(c)
	if !ok {
		return
	}

	var input struct {
		Favorite *bool `json:"favorite" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing favorite flag"})
		return
	}

	var review reviews.Review
	if err := database.DB.Where("id = ?", id).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if *input.Favorite {
		fav := reviews.Favorite{ReviewID: id, UserID: userID}
		// unique index makes double-favoriting a no-op conflict
		if err := database.DB.Where(&fav).FirstOrCreate(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to favorite review"})
			return
		}
	} else {
		if err := database.DB.
			Where("review_id = ? AND user_id = ?", id, userID).
			Delete(&reviews.Favorite{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfavorite review"})
			return
		}
	}

	database.DB.Preload("User").Preload("Favorites").First(&review, id)
	c.JSON(http.StatusOK, gin.H{"review": toReviewDTO(review, userID)})
}
