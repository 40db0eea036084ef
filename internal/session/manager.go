// Package session owns the authentication token and the current user
// identity. All session transitions funnel through the Manager; nothing
// else mutates auth state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jolidon/olyst/internal/api"
	"github.com/jolidon/olyst/internal/ledger"
	"github.com/jolidon/olyst/internal/logging"
	"github.com/jolidon/olyst/internal/models"
	"github.com/jolidon/olyst/internal/storage/tokens"
)

// ErrSuperseded is returned when a login or register call resolves after a
// logout already tore the session down. The resolved credentials are
// discarded; the session stays logged out.
var ErrSuperseded = errors.New("login superseded by logout")

// Manager holds the session state. Invariants:
//   - user is present iff token is present and was validated by the backend;
//   - the client's bearer attachment always equals the current token;
//   - loading is true only during the bootstrap identity round trip.
type Manager struct {
	client       api.Client
	store        tokens.Repository
	log          logging.Logger
	referralBase string

	mu       sync.Mutex
	gen      uint64
	token    string
	user     *models.User
	loading  bool
	referral *models.ReferralProfile
}

func NewManager(client api.Client, store tokens.Repository, log logging.Logger, referralBase string) *Manager {
	return &Manager{
		client:       client,
		store:        store,
		log:          log.With("component", "session"),
		referralBase: referralBase,
	}
}

// Bootstrap restores the session from the persisted token, if any. A stored
// token is attached and validated against the backend; any resolution
// failure clears the session rather than retrying (fail-closed). Without a
// stored token the round trip is skipped entirely.
func (m *Manager) Bootstrap(ctx context.Context) error {
	token, err := m.store.Get(ctx, tokens.TokenKey)
	if err != nil {
		m.log.Warn(ctx, "token store unreadable, starting anonymous", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	m.mu.Lock()
	m.loading = true
	gen := m.gen
	m.mu.Unlock()

	m.client.SetToken(token)
	user, resolveErr := m.client.Me(ctx)

	m.mu.Lock()
	m.loading = false
	stale := gen != m.gen
	m.mu.Unlock()

	if stale {
		return nil
	}
	if resolveErr != nil {
		m.log.Info(ctx, "stored token rejected, logging out", "error", resolveErr)
		return m.Logout(ctx)
	}

	m.mu.Lock()
	m.token = token
	m.user = &user
	m.mu.Unlock()
	return nil
}

// Login authenticates with the backend. On success token and user are set
// together, the token is persisted and attached; on failure the session is
// left untouched and the error carries a user-displayable message
// (see api.Error.Message).
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.applyAuth(ctx, gen, resp, nil)
}

// Register creates an account and logs in, additionally provisioning the
// referral profile derived from the username. The profile is generated
// exactly once per registration and stays stable for the session.
func (m *Manager) Register(ctx context.Context, email, username, password string) error {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	resp, err := m.client.Register(ctx, email, username, password)
	if err != nil {
		return err
	}
	profile := ledger.NewProfile(m.referralBase, username)
	return m.applyAuth(ctx, gen, resp, &profile)
}

// applyAuth commits a successful auth response: persist first, then update
// memory and the bearer attachment together. A generation mismatch means a
// logout happened while the request was in flight; the response is dropped.
func (m *Manager) applyAuth(ctx context.Context, gen uint64, resp api.AuthResponse, profile *models.ReferralProfile) error {
	if err := m.store.Set(ctx, tokens.TokenKey, resp.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		// Undo the persisted token; the logout that raced us wins.
		if err := m.store.Clear(ctx); err != nil {
			m.log.Warn(ctx, "failed to clear superseded token", "error", err)
		}
		return ErrSuperseded
	}
	user := resp.User
	m.token = resp.Token
	m.user = &user
	if profile != nil {
		m.referral = profile
	}
	m.mu.Unlock()

	m.client.SetToken(resp.Token)
	return nil
}

// Logout clears the token, user, persisted entry, referral profile and the
// bearer attachment. Safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.gen++
	m.token = ""
	m.user = nil
	m.referral = nil
	m.mu.Unlock()

	m.client.ClearToken()

	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear token store: %w", err)
	}
	return nil
}

// User returns the current identity, if any.
func (m *Manager) User() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// Token returns the current credential ("" when logged out).
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// IsLoggedIn reports whether a validated identity is present.
func (m *Manager) IsLoggedIn() bool {
	_, ok := m.User()
	return ok
}

// IsAdmin reports whether the current user has the admin role.
func (m *Manager) IsAdmin() bool {
	u, ok := m.User()
	return ok && u.IsAdmin
}

// Loading reports whether the bootstrap identity round trip is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// ReferralProfile returns the profile provisioned at registration, if any.
func (m *Manager) ReferralProfile() (models.ReferralProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.referral == nil {
		return models.ReferralProfile{}, false
	}
	return *m.referral, true
}
