package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ZygmaCore/orbit/api"
	"github.com/ZygmaCore/orbit/lib/logger"
	"github.com/ZygmaCore/orbit/lib/store"
)

// Snapshot is a point-in-time read of the auth state.
// Me is non-nil only while Token is non-empty.
type Snapshot struct {
	Token   string
	Me      *api.AdminMe
	Loading bool
}

// IsAuthed reports whether a token is held (profile may still be unconfirmed)
func (s Snapshot) IsAuthed() bool {
	return s.Token != ""
}

// Manager owns the admin token and profile lifecycle. It returns to the
// anonymous state on Clear and on any authorization failure, and is the
// only writer of its persisted slot.
type Manager struct {
	client *api.Client
	slot   store.Slot

	mu      sync.RWMutex
	token   string
	me      *api.AdminMe
	loading bool

	onChange func(Snapshot)
}

// NewManager creates an auth manager and registers it as the client's
// implicit token source for elevated paths
func NewManager(client *api.Client, slot store.Slot) *Manager {
	m := &Manager{
		client: client,
		slot:   slot,
	}
	client.SetTokenSource(m.Token)
	return m
}

// SetOnChange sets a callback invoked after every state transition
func (m *Manager) SetOnChange(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Snapshot returns the current state
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{Token: m.token, Me: m.me, Loading: m.loading}
}

// Token returns the current admin token, or "" when anonymous
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// IsAuthed reports whether a token is currently held
func (m *Manager) IsAuthed() bool {
	return m.Token() != ""
}

func (m *Manager) setState(token string, me *api.AdminMe, loading bool) {
	m.mu.Lock()
	m.token = token
	m.me = me
	m.loading = loading
	callback := m.onChange
	snapshot := Snapshot{Token: token, Me: me, Loading: loading}
	m.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	callback := m.onChange
	snapshot := Snapshot{Token: m.token, Me: m.me, Loading: m.loading}
	m.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// Clear resets the state to anonymous and erases the persisted token
func (m *Manager) Clear() {
	m.setState("", nil, false)
	if err := m.slot.Clear(); err != nil {
		logger.Auth.Warn().Err(err).Msg("Failed to clear persisted admin token")
	}
}

// SetToken adopts a token, persists it and re-validates it against the
// profile endpoint unless fetchMe is false. A blank token is a Clear.
func (m *Manager) SetToken(ctx context.Context, token string, fetchMe bool) error {
	token = strings.TrimSpace(token)
	if token == "" {
		m.Clear()
		return nil
	}

	m.setState(token, nil, false)
	if err := m.slot.Write(token); err != nil {
		logger.Auth.Warn().Err(err).Msg("Failed to persist admin token")
	}

	if fetchMe {
		_, err := m.FetchMe(ctx, token)
		return err
	}
	return nil
}

// FetchMe re-validates a token against the profile endpoint. An empty
// token argument means the current one. A 401/403 clears the state and
// resolves to (nil, nil) rather than propagating; other failures are
// returned after the loading flag is reset.
//
// Overlapping calls are not coalesced: the last write to state wins.
// Callers needing at-most-one-in-flight semantics must serialize.
func (m *Manager) FetchMe(ctx context.Context, token string) (*api.AdminMe, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		token = m.Token()
	}
	if token == "" {
		return nil, nil
	}

	m.setLoading(true)

	me, err := m.client.AdminMeWithToken(ctx, token)
	if err != nil {
		if api.IsAuthError(err) {
			logger.Auth.Info().Msg("Admin token rejected, signing out")
			m.Clear()
			return nil, nil
		}
		m.setLoading(false)
		return nil, err
	}

	m.mu.Lock()
	m.me = me
	m.loading = false
	callback := m.onChange
	snapshot := Snapshot{Token: m.token, Me: m.me, Loading: false}
	m.mu.Unlock()
	if callback != nil {
		callback(snapshot)
	}

	logger.Auth.Debug().Str("email", me.Email).Msg("Admin profile confirmed")
	return me, nil
}

// LoadFromStorage adopts a persisted token, then re-validates it unless
// fetchMe is false. An empty or unreadable slot resets to anonymous and
// clears the slot.
func (m *Manager) LoadFromStorage(ctx context.Context, fetchMe bool) error {
	stored, err := m.slot.Read()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Auth.Warn().Err(err).Msg("Failed to read persisted admin token")
		}
		stored = ""
	}

	stored = strings.TrimSpace(stored)
	if stored == "" {
		m.Clear()
		return nil
	}

	// Adopt the token optimistically, then confirm the profile
	m.setState(stored, nil, false)

	if fetchMe {
		_, err := m.FetchMe(ctx, stored)
		return err
	}
	return nil
}
