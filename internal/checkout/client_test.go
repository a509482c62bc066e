package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func associateServer(t *testing.T, status int, body any) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/associate-session", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var req associateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cs_test_9", req.SessionID)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return srv, NewClient(srv.URL, "token-123")
}

func TestClientAssociateSessionSuccess(t *testing.T) {
	purchased := "full"
	_, client := associateServer(t, http.StatusOK, map[string]any{
		"user": map[string]any{"id": 42, "hasPurchased": purchased},
	})

	user, err := client.AssociateSession(context.Background(), "cs_test_9")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(42), user.ID)
	assert.Equal(t, "full", user.HasPurchased)
}

func TestClientAssociateSessionNotCompleted(t *testing.T) {
	_, client := associateServer(t, http.StatusConflict, map[string]any{
		"error": "checkout-session-not-completed",
	})

	user, err := client.AssociateSession(context.Background(), "cs_test_9")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrSessionNotCompleted)
}

func TestClientAssociateSessionNullUser(t *testing.T) {
	_, client := associateServer(t, http.StatusOK, map[string]any{
		"user": nil,
	})

	user, err := client.AssociateSession(context.Background(), "cs_test_9")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestClientAssociateSessionServerError(t *testing.T) {
	_, client := associateServer(t, http.StatusInternalServerError, map[string]any{
		"error": "Failed to associate session",
	})

	user, err := client.AssociateSession(context.Background(), "cs_test_9")
	assert.Nil(t, user)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotCompleted)
	assert.Contains(t, err.Error(), "status 500")
}
