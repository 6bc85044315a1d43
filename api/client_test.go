package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZygmaCore/orbit/lib/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	logger.Init(false)
	os.Exit(m.Run())
}

func TestParseResponse_UnwrapsDataEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":7,"email":"admin@example.com","role":"admin"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var me AdminMe
	err := client.get(context.Background(), "/admin/auth/me", &me)
	require.NoError(t, err)

	assert.Equal(t, int64(7), me.ID)
	assert.Equal(t, "admin@example.com", me.Email)
}

func TestParseResponse_KeepsPaginatedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"game_id":1,"title":"Math Blast"}],"pagination":{"page":2,"limit":10,"total":31}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var page HistoryPage
	err := client.get(context.Background(), "/player/history", &page)
	require.NoError(t, err)

	// Pagination metadata must survive the unwrap
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Math Blast", page.Data[0].Title)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.Equal(t, 31, page.Pagination.Total)
}

func TestParseResponse_PlainObjectPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","expires_in":3600}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var result AdminLoginResult
	err := client.post(context.Background(), "/admin/auth/login", map[string]string{"email": "a"}, &result)
	require.NoError(t, err)

	assert.Equal(t, "tok-123", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
}

func TestParseResponse_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var result AdminLoginResult
	err := client.del(context.Background(), "/admin/games/1", &result)
	require.NoError(t, err)

	// Nothing decoded, destination stays zero
	assert.Empty(t, result.AccessToken)
}

func TestParseResponse_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(RequestIDHeader, "req-42")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"GAME_NOT_FOUND","message":"no such game"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.get(context.Background(), "/games/99", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "GAME_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "no such game", apiErr.Message)
	assert.Equal(t, "req-42", apiErr.RequestID)
}

func TestParseResponse_UnauthorizedWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.get(context.Background(), "/admin/dashboard/overview", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.True(t, IsAuthError(err))
}

func TestParseResponse_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>gateway exploded</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.get(context.Background(), "/games", nil)

	// A non-JSON body never masks the status classification
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "HTTP_ERROR", apiErr.Code)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
	assert.False(t, IsAuthError(err))
}

func TestDo_ImplicitTokenOnlyOnElevatedPaths(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetTokenSource(func() string { return "admin-token" })

	require.NoError(t, client.get(context.Background(), "/admin/games", nil))
	require.NoError(t, client.get(context.Background(), "/games", nil))

	require.Len(t, gotAuth, 2)
	assert.Equal(t, "Bearer admin-token", gotAuth[0])
	assert.Empty(t, gotAuth[1], "public paths must not receive the implicit token")
}

func TestDo_ExplicitTokenOverridesEverywhere(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetTokenSource(func() string { return "admin-token" })

	require.NoError(t, client.getWithToken(context.Background(), "/player/history", "  player-token  ", nil))
	assert.Equal(t, "Bearer player-token", gotAuth)
}

func TestDo_SendsRequestID(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.get(context.Background(), "/games", nil))
	assert.NotEmpty(t, gotID, "every request carries a correlation id")
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8080/api/")
	assert.Equal(t, "http://localhost:8080/api", client.BaseURL)
}
