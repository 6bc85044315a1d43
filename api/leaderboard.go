package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// LeaderboardPeriod selects the leaderboard window
type LeaderboardPeriod string

const (
	LeaderboardDaily  LeaderboardPeriod = "daily"
	LeaderboardWeekly LeaderboardPeriod = "weekly"
)

// LeaderboardScope selects per-game or global ranking
type LeaderboardScope string

const (
	LeaderboardScopeGame   LeaderboardScope = "game"
	LeaderboardScopeGlobal LeaderboardScope = "global"
)

// LeaderboardParams narrows a leaderboard read
type LeaderboardParams struct {
	Period LeaderboardPeriod
	Scope  LeaderboardScope
	Limit  int
}

// GetLeaderboard retrieves the leaderboard for a game
func (c *Client) GetLeaderboard(ctx context.Context, gameID int64, params LeaderboardParams) (*LeaderboardView, error) {
	if gameID < 1 {
		return nil, fmt.Errorf("game id must be >= 1")
	}

	q := url.Values{}
	if params.Period != "" {
		q.Set("period", string(params.Period))
	}
	if params.Scope != "" {
		q.Set("scope", string(params.Scope))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	path := LeaderboardPath(gameID)
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var view LeaderboardView
	if err := c.get(ctx, path, &view); err != nil {
		return nil, err
	}
	return &view, nil
}
