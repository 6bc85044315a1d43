package analytics

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ZygmaCore/orbit/api"
	"github.com/ZygmaCore/orbit/lib/logger"
	"github.com/ZygmaCore/orbit/lib/session"
)

// Tracker fires best-effort gameplay events against the analytics
// endpoint. Events are dropped silently when no play session is ready
// or when the local rate limit is exceeded; delivery failures are
// logged and never surface to the caller.
type Tracker struct {
	client   *api.Client
	sessions *session.Manager
	limiter  *rate.Limiter
}

// NewTracker creates a tracker bound to the given session manager
func NewTracker(client *api.Client, sessions *session.Manager) *Tracker {
	return &Tracker{
		client:   client,
		sessions: sessions,
		// one event per second sustained, small bursts allowed
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Track sends one named event with optional payload data
func (t *Tracker) Track(ctx context.Context, name string, data map[string]interface{}) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	token := t.sessions.ReadyToken()
	if token == "" {
		logger.Analytics.Debug().Str("event", name).Msg("No ready play session, dropping event")
		return
	}

	if !t.limiter.Allow() {
		logger.Analytics.Debug().Str("event", name).Msg("Rate limit exceeded, dropping event")
		return
	}

	if err := t.client.TrackEvent(ctx, token, name, data); err != nil {
		mapped := api.MapError(err, "Failed to deliver analytics event")
		logger.Analytics.Warn().
			Str("event", name).
			Str("code", mapped.Code).
			Msg(mapped.Message)
	}
}
