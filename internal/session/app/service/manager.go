package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/klwxsrx/simctl/internal/session/app/storage"
	"github.com/klwxsrx/simctl/internal/session/domain"
	"github.com/klwxsrx/simctl/pkg/log"
	pkgtime "github.com/klwxsrx/simctl/pkg/time"
)

const countdownPeriod = time.Second

const (
	StatusAnonymous     Status = "ANONYMOUS"
	StatusAuthenticated Status = "AUTHENTICATED"
)

const (
	ReasonStartup  Reason = "startup"
	ReasonLogin    Reason = "login"
	ReasonRejected Reason = "rejected"
	ReasonExplicit Reason = "explicit"
	ReasonExpired  Reason = "expired"
	ReasonRequest  Reason = "request"
)

var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrCredentialExpired = errors.New("credential expired")
)

type (
	Status string
	Reason string

	State struct {
		Status           Status
		Identity         *domain.Identity
		RemainingSeconds int64
	}

	// Listener is notified after each transition between ANONYMOUS and AUTHENTICATED.
	Listener func(context.Context, State, Reason)

	ManagerOption func(*Manager)

	// Manager owns the in-memory session and both of its timers: the expiry
	// timeout performing the logout and the countdown that only feeds
	// RemainingSeconds. The timeout is armed for the exact expiry instant so
	// countdown drift never delays the logout.
	Manager struct {
		store     storage.Store
		clock     pkgtime.Clock
		logger    log.Logger
		listeners []Listener

		mu          sync.Mutex
		identity    *domain.Identity
		remaining   int64
		expiryTimer pkgtime.Timer
		countdown   pkgtime.Timer
		// generation changes on every login and logout, timer callbacks of an older generation are ignored
		generation uint64
	}
)

func WithListener(listener Listener) ManagerOption {
	return func(m *Manager) {
		m.listeners = append(m.listeners, listener)
	}
}

func NewManager(store storage.Store, clock pkgtime.Clock, logger log.Logger, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		clock:  clock,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init restores the session persisted by a previous process. Anything but a
// fresh credential together with its identity ends in a logout that clears the store.
func (m *Manager) Init(ctx context.Context) State {
	credential, err := m.store.LoadCredential()
	if err != nil {
		m.logger.WithError(err).Warn(ctx, "failed to load stored credential")
	}

	decoded, ok := domain.DecodeCredential(credential).(domain.Decoded)
	now := m.clock.Now()
	if err != nil || !ok || !now.Before(decoded.ExpiresAt) {
		m.Logout(ctx, ReasonStartup)
		return m.State()
	}

	identity, err := m.store.LoadIdentity()
	if err != nil || identity == nil {
		m.logger.WithError(err).Warn(ctx, "stored credential has no identity")
		m.Logout(ctx, ReasonStartup)
		return m.State()
	}

	m.mu.Lock()
	state := m.activateLocked(ctx, *identity, decoded.ExpiresAt, now)
	m.mu.Unlock()

	m.logger.With(log.Fields{
		"userID":           identity.ID,
		"remainingSeconds": state.RemainingSeconds,
	}).Info(ctx, "session restored")
	m.notify(ctx, state, ReasonStartup)

	return state
}

// Login starts a session for a credential returned by the backend, replacing
// whatever session was active. A malformed or already expired credential is
// rejected with a logout.
func (m *Manager) Login(ctx context.Context, identity domain.Identity, credential domain.Credential) error {
	now := m.clock.Now()

	var expiresAt time.Time
	switch result := domain.DecodeCredential(credential).(type) {
	case domain.DecodeFailure:
		m.Logout(ctx, ReasonRejected)
		return fmt.Errorf("%w: %w", ErrInvalidCredential, result.Err)
	case domain.Decoded:
		expiresAt = result.ExpiresAt
	}

	if !now.Before(expiresAt) {
		m.Logout(ctx, ReasonRejected)
		return ErrCredentialExpired
	}

	m.mu.Lock()
	if err := m.store.Persist(identity, credential); err != nil {
		m.mu.Unlock()
		m.Logout(ctx, ReasonRejected)
		return fmt.Errorf("persist session: %w", err)
	}
	state := m.activateLocked(ctx, identity, expiresAt, now)
	m.mu.Unlock()

	m.logger.With(log.Fields{
		"userID":           identity.ID,
		"role":             identity.Role,
		"remainingSeconds": state.RemainingSeconds,
	}).Info(ctx, "session started")
	m.notify(ctx, state, ReasonLogin)

	return nil
}

// Logout ends the session. It is idempotent and safe to call from any
// goroutine; store failures are logged, never returned.
func (m *Manager) Logout(ctx context.Context, reason Reason) {
	m.terminate(ctx, reason, nil)
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stateLocked()
}

// Close cancels the timers and keeps the stored session for the next process.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopTimersLocked()
	m.generation++
}

func (m *Manager) activateLocked(ctx context.Context, identity domain.Identity, expiresAt, now time.Time) State {
	m.stopTimersLocked()
	m.generation++
	generation := m.generation

	m.identity = &identity
	m.remaining = domain.RemainingSeconds(expiresAt, now)

	timerCtx := context.WithoutCancel(ctx)
	m.expiryTimer = m.clock.AfterFunc(expiresAt.Sub(now), func() {
		m.terminate(timerCtx, ReasonExpired, &generation)
	})
	m.countdown = m.clock.Every(countdownPeriod, func() {
		m.tick(generation)
	})

	return m.stateLocked()
}

func (m *Manager) tick(generation uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if generation != m.generation || m.identity == nil {
		return
	}

	m.remaining--
	if m.remaining > 0 {
		return
	}

	// the expiry timer performs the logout, the countdown only floors at zero
	m.remaining = 0
	if m.countdown != nil {
		m.countdown.Stop()
		m.countdown = nil
	}
}

func (m *Manager) terminate(ctx context.Context, reason Reason, generation *uint64) {
	m.mu.Lock()
	if generation != nil && *generation != m.generation {
		m.mu.Unlock()
		return
	}

	wasActive := m.identity != nil
	m.stopTimersLocked()
	m.generation++
	m.identity = nil
	m.remaining = 0
	err := m.store.Clear()
	state := m.stateLocked()
	m.mu.Unlock()

	if err != nil {
		m.logger.WithError(err).Warn(ctx, "failed to clear session store")
	}
	if !wasActive {
		return
	}

	m.logger.WithField("reason", reason).Info(ctx, "session ended")
	m.notify(ctx, state, reason)
}

func (m *Manager) stopTimersLocked() {
	if m.expiryTimer != nil {
		m.expiryTimer.Stop()
		m.expiryTimer = nil
	}
	if m.countdown != nil {
		m.countdown.Stop()
		m.countdown = nil
	}
}

func (m *Manager) stateLocked() State {
	if m.identity == nil {
		return State{Status: StatusAnonymous}
	}

	identity := *m.identity
	return State{
		Status:           StatusAuthenticated,
		Identity:         &identity,
		RemainingSeconds: m.remaining,
	}
}

func (m *Manager) notify(ctx context.Context, state State, reason Reason) {
	for _, listener := range m.listeners {
		listener(ctx, state, reason)
	}
}
