package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"guide-app/config"
	"guide-app/database"
	"guide-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

func githubOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GITHUB_CLIENT_ID,
		ClientSecret: config.GITHUB_CLIENT_SECRET,
		RedirectURL:  config.GITHUB_REDIRECT_URL,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     github.Endpoint,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/github
func GithubStart(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// state lives in an HttpOnly cookie for the round trip
	c.SetCookie(
		"oauth_state",
		state,
		300, // 5 minutes
		"/",
		"",    // domain (set in prod)
		false, // secure (true in prod HTTPS)
		true,  // httpOnly
	)

	url := githubOAuthConfig().AuthCodeURL(state)
	c.Redirect(http.StatusFound, url)
}

// GET /auth/github/callback
func GithubCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	tok, err := githubOAuthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	profile, err := fetchGithubProfile(c, tok)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := findOrCreateGithubUser(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	tokenString, err := issueAppJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	redirect := config.GITHUB_FRONTEND_REDIRECT
	if redirect == "" {
		c.JSON(http.StatusOK, gin.H{"token": tokenString})
		return
	}
	c.Redirect(http.StatusFound, redirect+"?token="+tokenString)
}

/* ---------------- helpers ---------------- */

type githubProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func fetchGithubProfile(c *gin.Context, tok *oauth2.Token) (*githubProfile, error) {
	ctx := c.Request.Context()
	client := githubOAuthConfig().Client(ctx, tok)

	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch github profile")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to read github profile")
	}

	var profile githubProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode github profile")
	}
	if profile.ID == 0 || profile.Login == "" {
		return nil, fmt.Errorf("github profile missing id/login")
	}

	if profile.Email == "" {
		// the primary email is a separate call when it isn't public
		profile.Email, err = fetchGithubPrimaryEmail(client)
		if err != nil {
			return nil, err
		}
	}

	return &profile, nil
}

func fetchGithubPrimaryEmail(client *http.Client) (string, error) {
	resp, err := client.Get("https://api.github.com/user/emails")
	if err != nil {
		return "", fmt.Errorf("failed to fetch github emails")
	}
	defer resp.Body.Close()

	var entries []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&entries); err != nil {
		return "", fmt.Errorf("failed to decode github emails")
	}

	for _, e := range entries {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", fmt.Errorf("github account has no verified primary email")
}

func findOrCreateGithubUser(p *githubProfile) (users.User, error) {
	githubID := strconv.FormatInt(p.ID, 10)

	var user users.User

	// 1) Try by github_id
	if err := database.DB.Where("github_id = ?", githubID).First(&user).Error; err == nil {
		return user, nil
	}

	// 2) Try by email, then link github_id if missing
	if p.Email != "" {
		if err := database.DB.Where("email = ?", p.Email).First(&user).Error; err == nil {
			if user.GithubID == nil {
				user.GithubID = &githubID
				user.AuthProvider = "github"
				user.IsVerified = true
				if err := database.DB.Save(&user).Error; err != nil {
					return users.User{}, err
				}
			}
			return user, nil
		}
	}

	// 3) Create new user
	user = users.User{
		FirstName:    firstNameOf(p.Name),
		Name:         p.Name,
		Username:     p.Login,
		Email:        p.Email,
		Photo:        p.AvatarURL,
		Password:     nil,
		AuthProvider: "github",
		GithubID:     &githubID,
		Role:         "user",
		IsVerified:   true, // github verified the email already
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return users.User{}, err
	}
	return user, nil
}
