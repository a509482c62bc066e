package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP Associator implementation talking to the guide
// API's POST /associate-session endpoint with the user's bearer token.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type associateRequest struct {
	SessionID string `json:"session_id"`
}

type associateResponse struct {
	User *struct {
		ID           uint    `json:"id"`
		HasPurchased *string `json:"hasPurchased"`
	} `json:"user"`
	Error string `json:"error"`
}

func (c *Client) AssociateSession(ctx context.Context, sessionID string) (*AssociatedUser, error) {
	body, err := json.Marshal(associateRequest{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/associate-session", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var out associateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("associate session: bad response: %w", err)
	}

	if resp.StatusCode == http.StatusConflict && out.Error == ErrSessionNotCompleted.Error() {
		return nil, ErrSessionNotCompleted
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("associate session: %s (status %d)", out.Error, resp.StatusCode)
	}
	if out.User == nil {
		return nil, nil
	}

	user := &AssociatedUser{ID: out.User.ID}
	if out.User.HasPurchased != nil {
		user.HasPurchased = *out.User.HasPurchased
	}
	return user, nil
}
