package api

import (
	"context"
	"net/url"
	"strconv"
)

// HistoryParams pages through a player's play history
type HistoryParams struct {
	Page  int
	Limit int
}

// GetPlayerHistory retrieves the play history for the given player token.
// The response keeps its envelope so pagination metadata reaches the caller.
func (c *Client) GetPlayerHistory(ctx context.Context, playerToken string, params HistoryParams) (*HistoryPage, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}

	path := PlayerHistoryPath
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page HistoryPage
	if err := c.getWithToken(ctx, path, playerToken, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
