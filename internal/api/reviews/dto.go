package reviews

import (
	"time"

	"guide-app/internal/domain/reviews"
)

type ReviewDTO struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Stars     *int      `json:"stars"`
	Favorited bool      `json:"favorited"`
	Favorites int       `json:"favoriteCount"`
	CreatedAt time.Time `json:"createdAt"`
	Author    AuthorDTO `json:"author"`
}

type AuthorDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Photo    string `json:"photo"`
}

func toReviewDTO(r reviews.Review, viewerID uint) ReviewDTO {
	favorited := false
	for _, f := range r.Favorites {
		if viewerID != 0 && f.UserID == viewerID {
			favorited = true
			break
		}
	}

	return ReviewDTO{
		ID:        r.ID,
		Text:      r.Text,
		Stars:     r.Stars,
		Favorited: favorited,
		Favorites: len(r.Favorites),
		CreatedAt: r.CreatedAt,
		Author: AuthorDTO{
			ID:       r.User.ID,
			Name:     r.User.Name,
			Username: r.User.Username,
			Photo:    r.User.Photo,
		},
	}
}
