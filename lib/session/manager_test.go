package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZygmaCore/orbit/api"
	"github.com/ZygmaCore/orbit/database"
	"github.com/ZygmaCore/orbit/lib/logger"
	"github.com/ZygmaCore/orbit/lib/store"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	logger.Init(false)
	os.Exit(m.Run())
}

type sessionFixture struct {
	manager  *Manager
	slot     store.Slot
	requests *int32
}

// setupSession backs the manager with a real database slot and a server
// returning the given status and body on the session endpoint
func setupSession(t *testing.T, status int, body string) sessionFixture {
	t.Helper()

	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		assert.Equal(t, api.SessionStartPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	db, err := database.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot := store.NewBoltSlot(db, database.BucketPlaySessions, "http://test")
	manager := NewManager(api.NewClient(server.URL), slot)

	return sessionFixture{manager: manager, slot: slot, requests: &requests}
}

func TestStartSession_RejectsInvalidGameID(t *testing.T) {
	f := setupSession(t, http.StatusOK, `{}`)

	for _, id := range []int64{0, -1} {
		_, err := f.manager.StartSession(context.Background(), id)

		var apiErr *api.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Status)
		assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	}

	assert.Zero(t, atomic.LoadInt32(f.requests), "invalid ids never reach the network")
}

func TestStartSession_AdoptsAndPersists(t *testing.T) {
	expiresAt := time.Now().Add(30 * time.Minute).UTC().Format(time.RFC3339)
	f := setupSession(t, http.StatusOK,
		`{"data":{"play_token":"play-123","expires_at":"`+expiresAt+`"}}`)

	token, err := f.manager.StartSession(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "play-123", token)
	assert.True(t, f.manager.IsReady())
	assert.Equal(t, "play-123", f.manager.ReadyToken())

	// A fresh manager restores the session from the same slot
	restored := NewManager(api.NewClient("http://unused"), f.slot)
	restored.LoadFromStorage()
	assert.Equal(t, "play-123", restored.ReadyToken())
}

func TestStartSession_MissingPlayToken(t *testing.T) {
	f := setupSession(t, http.StatusOK, `{"data":{"expires_at":"2030-01-01T00:00:00Z"}}`)

	_, err := f.manager.StartSession(context.Background(), 7)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", apiErr.Code)
	assert.False(t, f.manager.IsReady())
}

func TestStartSession_UnparseableExpiryFallsBack(t *testing.T) {
	f := setupSession(t, http.StatusOK,
		`{"data":{"play_token":"play-123","expires_at":"soonish"}}`)

	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	f.manager.now = func() time.Time { return fixed }

	_, err := f.manager.StartSession(context.Background(), 7)
	require.NoError(t, err)

	snapshot := f.manager.Snapshot()
	assert.Equal(t, fixed.Add(DefaultSessionTTL), snapshot.ExpiresAt)
}

func TestStartSession_RejectionDropsPreviousSession(t *testing.T) {
	f := setupSession(t, http.StatusUnauthorized,
		`{"error":{"code":"UNAUTHORIZED","message":"blocked"}}`)

	// Seed a previous session directly through the slot
	encoded, err := encodeRecord(record{
		PlayToken: "old-token",
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
	})
	require.NoError(t, err)
	require.NoError(t, f.slot.Write(encoded))
	f.manager.LoadFromStorage()
	require.True(t, f.manager.IsReady())

	_, err = f.manager.StartSession(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, api.IsAuthError(err))

	assert.False(t, f.manager.IsReady())
	_, err = f.slot.Read()
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoadFromStorage_ExpiredRecordDropped(t *testing.T) {
	f := setupSession(t, http.StatusOK, `{}`)

	encoded, err := encodeRecord(record{
		PlayToken: "stale",
		ExpiresAt: time.Now().Add(-time.Minute).UnixMilli(),
	})
	require.NoError(t, err)
	require.NoError(t, f.slot.Write(encoded))

	f.manager.LoadFromStorage()

	assert.False(t, f.manager.IsReady())
	_, err = f.slot.Read()
	assert.ErrorIs(t, err, store.ErrNotFound, "expired record is removed from storage")
}

func TestLoadFromStorage_CorruptRecordDropped(t *testing.T) {
	f := setupSession(t, http.StatusOK, `{}`)
	require.NoError(t, f.slot.Write("{not json"))

	f.manager.LoadFromStorage()

	assert.False(t, f.manager.IsReady())
	_, err := f.slot.Read()
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoadFromStorage_MissingRecordIsQuiet(t *testing.T) {
	f := setupSession(t, http.StatusOK, `{}`)

	f.manager.LoadFromStorage()
	assert.False(t, f.manager.IsReady())
}

func TestIsReady_FlipsAtExpiry(t *testing.T) {
	f := setupSession(t, http.StatusOK,
		`{"data":{"play_token":"play-123","expires_at":"2026-08-01T14:00:00Z"}}`)

	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	f.manager.now = func() time.Time { return current }

	_, err := f.manager.StartSession(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, f.manager.IsReady())

	current = time.Date(2026, 8, 1, 14, 0, 1, 0, time.UTC)
	assert.False(t, f.manager.IsReady())
	assert.Empty(t, f.manager.ReadyToken())
}

func TestClearSession(t *testing.T) {
	f := setupSession(t, http.StatusOK,
		`{"data":{"play_token":"play-123","expires_at":"2030-01-01T00:00:00Z"}}`)

	_, err := f.manager.StartSession(context.Background(), 7)
	require.NoError(t, err)

	f.manager.ClearSession()

	assert.False(t, f.manager.IsReady())
	_, err = f.slot.Read()
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecord_DecodeError(t *testing.T) {
	_, err := decodeRecord("play_session", "not json")

	var decodeErr *store.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "play_session", decodeErr.Key)
}
