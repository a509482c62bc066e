package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	store := NewMemoryStorage()

	_, ok := LoadSession(store)
	assert.False(t, ok)

	saveSession(store, Session{ID: "cs_1", PackageKey: "fullteam", Licenses: 25})
	sess, ok := LoadSession(store)
	require.True(t, ok)
	assert.Equal(t, Session{ID: "cs_1", PackageKey: "fullteam", Licenses: 25}, sess)

	// individual packages store no license count
	saveSession(store, Session{ID: "cs_2", PackageKey: "basic"})
	sess, _ = LoadSession(store)
	assert.Equal(t, 0, sess.Licenses)

	ClearSession(store)
	_, ok = LoadSession(store)
	assert.False(t, ok)
}

func TestClearSessionResetsDoneFlag(t *testing.T) {
	store := NewMemoryStorage()
	saveSession(store, Session{ID: "cs_1", PackageKey: "pro"})
	markAssociated(store)
	require.True(t, Associated(store))

	ClearSession(store)
	assert.False(t, Associated(store))
}

func TestDeclinedTshirt(t *testing.T) {
	store := NewMemoryStorage()
	assert.False(t, TshirtDeclined(store))
	DeclineTshirt(store)
	assert.True(t, TshirtDeclined(store))

	// the preference outlives the checkout session
	ClearSession(store)
	assert.True(t, TshirtDeclined(store))
}
