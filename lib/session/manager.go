package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/ZygmaCore/orbit/api"
	"github.com/ZygmaCore/orbit/lib/logger"
	"github.com/ZygmaCore/orbit/lib/store"
)

// DefaultSessionTTL is applied when the server omits or mangles the
// session expiry timestamp
const DefaultSessionTTL = 2 * time.Hour

const recordKey = "play_session"

// Snapshot is a point-in-time read of the play session state
type Snapshot struct {
	PlayToken string
	ExpiresAt time.Time
	Loading   bool
}

// Manager owns the play token lifecycle for one platform. A session is
// ready while it holds a token whose expiry is in the future.
type Manager struct {
	client *api.Client
	slot   store.Slot

	mu        sync.RWMutex
	playToken string
	expiresAt time.Time
	loading   bool

	onChange func(Snapshot)

	// overridable for deterministic expiry tests
	now func() time.Time
}

// NewManager creates a session manager persisting into slot
func NewManager(client *api.Client, slot store.Slot) *Manager {
	return &Manager{
		client: client,
		slot:   slot,
		now:    time.Now,
	}
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
	return Snapshot{PlayToken: m.playToken, ExpiresAt: m.expiresAt, Loading: m.loading}
}

// IsReady reports whether an unexpired play token is held
func (m *Manager) IsReady() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playToken != "" && m.now().Before(m.expiresAt)
}

// ReadyToken returns the play token when the session is ready, "" otherwise
func (m *Manager) ReadyToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.playToken != "" && m.now().Before(m.expiresAt) {
		return m.playToken
	}
	return ""
}

func (m *Manager) setState(token string, expiresAt time.Time, loading bool) {
	m.mu.Lock()
	m.playToken = token
	m.expiresAt = expiresAt
	m.loading = loading
	callback := m.onChange
	snapshot := Snapshot{PlayToken: token, ExpiresAt: expiresAt, Loading: loading}
	m.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// ClearSession drops the session and erases the persisted record
func (m *Manager) ClearSession() {
	m.setState("", time.Time{}, false)
	if err := m.slot.Clear(); err != nil {
		logger.Session.Warn().Err(err).Msg("Failed to clear persisted play session")
	}
}

// StartSession obtains a fresh play token for gameID, adopts it and
// persists it. The game id is validated before any network traffic. A
// rejected session (401/403) drops any previous session before the
// error is returned.
func (m *Manager) StartSession(ctx context.Context, gameID int64) (string, error) {
	if gameID < 1 {
		return "", &api.APIError{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "game_id must be a positive number",
		}
	}

	m.setLoading(true)

	result, err := m.client.StartSession(ctx, gameID)
	if err != nil {
		if api.IsAuthError(err) {
			logger.Session.Info().Msg("Session start rejected, dropping session")
			m.ClearSession()
		} else {
			m.setLoading(false)
		}
		return "", err
	}

	token := strings.TrimSpace(result.PlayToken)
	if token == "" {
		m.setLoading(false)
		return "", &api.APIError{
			Status:  500,
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "missing play_token",
		}
	}

	expiresAt := m.parseExpiry(result.ExpiresAt)
	m.setState(token, expiresAt, false)
	m.persist(token, expiresAt)

	logger.Session.Debug().
		Int64("game_id", gameID).
		Time("expires_at", expiresAt).
		Msg("Play session started")
	return token, nil
}

func (m *Manager) setLoading(loading bool) {
	m.mu.Lock()
	m.loading = loading
	callback := m.onChange
	snapshot := Snapshot{PlayToken: m.playToken, ExpiresAt: m.expiresAt, Loading: loading}
	m.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// parseExpiry turns the server's expiry timestamp into a deadline,
// falling back to a fixed TTL when it is absent or unparseable
func (m *Manager) parseExpiry(value string) time.Time {
	value = strings.TrimSpace(value)
	if value != "" {
		if parsed, err := strfmt.ParseDateTime(value); err == nil {
			return time.Time(parsed)
		}
		logger.Session.Warn().Str("expires_at", value).Msg("Unparseable session expiry, using default TTL")
	}
	return m.now().Add(DefaultSessionTTL)
}

func (m *Manager) persist(token string, expiresAt time.Time) {
	encoded, err := encodeRecord(record{
		PlayToken: token,
		ExpiresAt: expiresAt.UnixMilli(),
	})
	if err != nil {
		logger.Session.Warn().Err(err).Msg("Failed to encode play session")
		return
	}
	if err := m.slot.Write(encoded); err != nil {
		logger.Session.Warn().Err(err).Msg("Failed to persist play session")
	}
}

// LoadFromStorage adopts a persisted play session. A missing record
// leaves the state untouched; a corrupt, blank or expired record is
// dropped together with its persisted copy.
func (m *Manager) LoadFromStorage() {
	stored, err := m.slot.Read()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return
		}
		logger.Session.Warn().Err(err).Msg("Failed to read persisted play session")
		m.ClearSession()
		return
	}

	r, err := decodeRecord(recordKey, stored)
	if err != nil {
		logger.Session.Warn().Err(err).Msg("Corrupt play session record, dropping it")
		m.ClearSession()
		return
	}

	token := strings.TrimSpace(r.PlayToken)
	expiresAt := time.UnixMilli(r.ExpiresAt)
	if token == "" || !m.now().Before(expiresAt) {
		m.ClearSession()
		return
	}

	m.setState(token, expiresAt, false)
	logger.Session.Debug().Time("expires_at", expiresAt).Msg("Play session restored")
}
