package checkout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Associator ---

type mockAssociator struct {
	mu          sync.Mutex
	associateFn func(ctx context.Context, sessionID string) (*AssociatedUser, error)

	calls    int
	inFlight int
	maxSeen  int
}

func (m *mockAssociator) AssociateSession(ctx context.Context, sessionID string) (*AssociatedUser, error) {
	m.mu.Lock()
	m.calls++
	m.inFlight++
	if m.inFlight > m.maxSeen {
		m.maxSeen = m.inFlight
	}
	fn := m.associateFn
	m.mu.Unlock()

	var user *AssociatedUser
	var err error
	if fn != nil {
		user, err = fn(ctx, sessionID)
	}

	m.mu.Lock()
	m.inFlight--
	m.mu.Unlock()
	return user, err
}

func (m *mockAssociator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func pendingStore(t *testing.T) Storage {
	t.Helper()
	store := NewMemoryStorage()
	saveSession(store, Session{ID: "cs_test_123", PackageKey: "full", Licenses: 0})
	return store
}

func TestBeginCheckoutPersistsBeforeRedirect(t *testing.T) {
	store := NewMemoryStorage()
	var events []string
	r := New(store, &mockAssociator{}, WithTracker(TrackerFunc(func(name string, fields map[string]string) {
		events = append(events, name)
	})))

	r.BeginCheckout(Session{ID: "cs_a", PackageKey: "team", Licenses: 10})

	sess, ok := LoadSession(store)
	require.True(t, ok)
	assert.Equal(t, "cs_a", sess.ID)
	assert.Equal(t, "team", sess.PackageKey)
	assert.Equal(t, 10, sess.Licenses)
	assert.Equal(t, StatePolling, r.State())
	assert.Equal(t, []string{"checkout"}, events)

	// a new checkout overwrites the prior unresolved session
	markAssociated(store)
	r.BeginCheckout(Session{ID: "cs_b", PackageKey: "basic"})
	sess, ok = LoadSession(store)
	require.True(t, ok)
	assert.Equal(t, "cs_b", sess.ID)
	assert.False(t, Associated(store), "done flag must reset with a new session")
}

func TestTickSuccessStopsPollingAndTracksPurchase(t *testing.T) {
	store := pendingStore(t)
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			return &AssociatedUser{ID: 7, HasPurchased: "full"}, nil
		},
	}
	var purchases []map[string]string
	r := New(store, assoc, WithTracker(TrackerFunc(func(name string, fields map[string]string) {
		if name == "purchase" {
			purchases = append(purchases, fields)
		}
	})))
	require.True(t, r.Resume())

	keepGoing := r.Tick(context.Background())

	assert.False(t, keepGoing, "loop must halt after success")
	assert.Equal(t, StateDone, r.State())
	assert.True(t, r.Done())
	require.Len(t, purchases, 1)
	assert.Equal(t, "full", purchases[0]["key"])

	// further ticks issue no more requests
	assert.False(t, r.Tick(context.Background()))
	assert.Equal(t, 1, assoc.callCount())
}

func TestDoneFlagSurvivesReload(t *testing.T) {
	store := pendingStore(t)
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			return &AssociatedUser{ID: 7, HasPurchased: "pro"}, nil
		},
	}
	r := New(store, assoc)
	require.True(t, r.Resume())
	require.False(t, r.Tick(context.Background()))

	// simulated page reload: fresh reconciler over the same storage
	reloaded := New(store, assoc)
	assert.False(t, reloaded.Resume(), "nothing left to poll for")
	assert.Equal(t, StateDone, reloaded.State())
	assert.True(t, reloaded.Done())
	assert.Equal(t, 1, assoc.callCount())
}

func TestSessionNotCompletedKeepsPolling(t *testing.T) {
	store := pendingStore(t)
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			return nil, ErrSessionNotCompleted
		},
	}
	r := New(store, assoc)
	require.True(t, r.Resume())

	assert.True(t, r.Tick(context.Background()))
	assert.Equal(t, StatePolling, r.State())
	assert.False(t, r.Done())
}

func TestEmptyResultKeepsPolling(t *testing.T) {
	store := pendingStore(t)
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			return nil, nil
		},
	}
	r := New(store, assoc)
	require.True(t, r.Resume())

	assert.True(t, r.Tick(context.Background()))
	assert.Equal(t, StatePolling, r.State())
}

func TestUnexpectedErrorRetriesOnNextTick(t *testing.T) {
	store := pendingStore(t)
	fail := true
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			if fail {
				return nil, context.DeadlineExceeded
			}
			return &AssociatedUser{ID: 1, HasPurchased: "basic"}, nil
		},
	}
	r := New(store, assoc)
	require.True(t, r.Resume())

	assert.True(t, r.Tick(context.Background()), "errors are retried, not fatal")
	assert.Equal(t, StatePolling, r.State())

	fail = false
	assert.False(t, r.Tick(context.Background()))
	assert.True(t, r.Done())
}

func TestAtMostOneRequestInFlight(t *testing.T) {
	store := pendingStore(t)
	release := make(chan struct{})
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			<-release
			return nil, ErrSessionNotCompleted
		},
	}
	r := New(store, assoc)
	require.True(t, r.Resume())

	// fire ticks far faster than the (blocked) response latency
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Tick(context.Background())
		}()
	}

	require.Eventually(t, func() bool {
		return assoc.callCount() == 1
	}, time.Second, time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, 1, assoc.maxSeen, "requests must never overlap")
	assert.Equal(t, 1, assoc.callCount(), "overlapping ticks are skipped, not queued")
}

func TestClearedSessionStopsLoop(t *testing.T) {
	store := pendingStore(t)
	r := New(store, &mockAssociator{})
	require.True(t, r.Resume())

	ClearSession(store)

	assert.False(t, r.Tick(context.Background()))
	assert.Equal(t, StateIdle, r.State())
}

func TestRetryCapStalls(t *testing.T) {
	store := pendingStore(t)
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			return nil, ErrSessionNotCompleted
		},
	}
	var stalled int
	r := New(store, assoc,
		WithMaxAttempts(3),
		WithTracker(TrackerFunc(func(name string, fields map[string]string) {
			if name == "stalled" {
				stalled++
			}
		})))
	require.True(t, r.Resume())

	for i := 0; i < 3; i++ {
		assert.True(t, r.Tick(context.Background()))
	}
	assert.False(t, r.Tick(context.Background()), "cap reached")
	assert.Equal(t, StateStalled, r.State())
	assert.Equal(t, 1, stalled)
	assert.Equal(t, 3, assoc.callCount())

	// the session reference is kept for manual resolution
	_, ok := LoadSession(store)
	assert.True(t, ok)
}

func TestRunPollsUntilAssociated(t *testing.T) {
	store := pendingStore(t)
	var mu sync.Mutex
	remaining := 3
	assoc := &mockAssociator{
		associateFn: func(ctx context.Context, sessionID string) (*AssociatedUser, error) {
			mu.Lock()
			defer mu.Unlock()
			if remaining > 0 {
				remaining--
				return nil, ErrSessionNotCompleted
			}
			return &AssociatedUser{ID: 9, HasPurchased: "team"}, nil
		},
	}
	r := New(store, assoc, WithInterval(time.Millisecond), WithTracker(TrackerFunc(func(string, map[string]string) {})))

	done := make(chan struct{})
	go func() {
		r.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not halt after association")
	}
	assert.True(t, r.Done())
	assert.Equal(t, 4, assoc.callCount())
}

func TestRunWithNoPendingSessionReturnsImmediately(t *testing.T) {
	r := New(NewMemoryStorage(), &mockAssociator{})

	done := make(chan struct{})
	go func() {
		r.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return with nothing to poll for")
	}
	assert.Equal(t, StateIdle, r.State())
}
