package checkout

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// State of the reconciliation loop.
type State string

const (
	StateIdle        State = "idle"
	StatePolling     State = "polling"
	StateAssociating State = "associating"
	StateDone        State = "done"
	StateStalled     State = "stalled"
)

// StalledMessage is surfaced when the retry cap is hit without the
// backend confirming the session. The session reference is kept so the
// purchase can be resolved manually.
const StalledMessage = "We couldn't confirm your payment yet. Please reply to " +
	"your receipt email with your GitHub username so we can associate it manually."

// ErrSessionNotCompleted is the expected "keep waiting" condition: the
// user either left checkout without paying or the payment provider's
// webhook hasn't reached the backend yet.
var ErrSessionNotCompleted = errors.New("checkout-session-not-completed")

// AssociatedUser is the account a session was linked to.
type AssociatedUser struct {
	ID           uint
	HasPurchased string
}

// Associator links a checkout session to the signed-in user's account.
// A nil user with a nil error means the backend has no confirmation
// yet; the caller keeps polling.
type Associator interface {
	AssociateSession(ctx context.Context, sessionID string) (*AssociatedUser, error)
}

// Reconciler polls the backend until a pending checkout session is
// associated with the user's account. All persistent state lives in
// Storage, so a fresh Reconciler over the same store resumes where the
// last one stopped.
type Reconciler struct {
	store       Storage
	assoc       Associator
	interval    time.Duration
	maxAttempts int
	tracker     Tracker

	mu          sync.Mutex
	state       State
	associating bool
	attempts    int
}

type Option func(*Reconciler)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(r *Reconciler) { r.interval = d }
}

// WithMaxAttempts overrides the retry cap. Zero means unbounded.
func WithMaxAttempts(n int) Option {
	return func(r *Reconciler) { r.maxAttempts = n }
}

// WithTracker overrides the analytics sink.
func WithTracker(t Tracker) Option {
	return func(r *Reconciler) { r.tracker = t }
}

func New(store Storage, assoc Associator, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:       store,
		assoc:       assoc,
		interval:    time.Second,
		maxAttempts: 300,
		tracker:     slogTracker{},
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BeginCheckout persists the session reference before the caller
// redirects to the hosted payment page, so the reference survives the
// round trip through the payment provider. Any prior unresolved
// session is overwritten.
func (r *Reconciler) BeginCheckout(sess Session) {
	saveSession(r.store, sess)

	r.mu.Lock()
	r.state = StatePolling
	r.attempts = 0
	r.mu.Unlock()

	r.tracker.Event("checkout", map[string]string{
		"key":      sess.PackageKey,
		"licenses": strconv.Itoa(sess.Licenses),
	})
}

// Resume restores state from storage on startup. It reports whether
// there is anything left to poll for.
func (r *Reconciler) Resume() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := LoadSession(r.store); !ok {
		r.state = StateIdle
		return false
	}
	if Associated(r.store) {
		r.state = StateDone
		return false
	}
	r.state = StatePolling
	return true
}

// Run polls until the session is associated, the retry cap is hit, the
// session reference is cleared, or ctx is cancelled. It blocks.
func (r *Reconciler) Run(ctx context.Context) {
	if !r.Resume() {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !r.Tick(ctx) {
				return
			}
		}
	}
}

// Tick runs one poll step and reports whether the loop should keep
// going. If an association request is already in flight the tick is
// skipped: at most one request is ever outstanding, however fast ticks
// arrive.
func (r *Reconciler) Tick(ctx context.Context) bool {
	r.mu.Lock()

	if r.associating {
		r.mu.Unlock()
		return true
	}
	if Associated(r.store) {
		r.state = StateDone
		r.mu.Unlock()
		return false
	}
	sess, ok := LoadSession(r.store)
	if !ok {
		r.state = StateIdle
		r.mu.Unlock()
		return false
	}
	if r.maxAttempts > 0 && r.attempts >= r.maxAttempts {
		r.state = StateStalled
		r.mu.Unlock()
		r.tracker.Event("stalled", map[string]string{"sessionId": sess.ID})
		slog.Warn("checkout: giving up on automatic association", "sessionId", sess.ID)
		return false
	}

	r.associating = true
	r.state = StateAssociating
	r.attempts++
	r.mu.Unlock()

	user, err := r.assoc.AssociateSession(ctx, sess.ID)

	r.mu.Lock()
	r.associating = false
	r.mu.Unlock()

	switch {
	case err == nil && user != nil:
		markAssociated(r.store)
		r.mu.Lock()
		r.state = StateDone
		r.mu.Unlock()
		r.tracker.Event("purchase", map[string]string{"key": user.HasPurchased})
		return false

	case err == nil || errors.Is(err, ErrSessionNotCompleted):
		// Not confirmed yet. Keep polling quietly.

	default:
		// The checkout may still complete, so this is retried on the
		// next tick rather than aborting.
		slog.Error("checkout: associate session failed", "sessionId", sess.ID, "error", err)
	}

	r.mu.Lock()
	r.state = StatePolling
	r.mu.Unlock()
	return true
}

// Done reports whether the pending session has been associated.
func (r *Reconciler) Done() bool {
	return Associated(r.store)
}

// State returns the loop's current state.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
