package api

import "context"

// trackEventRequest is the body for the analytics ingest endpoint
type trackEventRequest struct {
	PlayToken string                 `json:"play_token"`
	Name      string                 `json:"name"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// TrackEvent submits a gameplay event under the given play token
func (c *Client) TrackEvent(ctx context.Context, playToken, name string, data map[string]interface{}) error {
	req := trackEventRequest{
		PlayToken: playToken,
		Name:      name,
		Data:      data,
	}
	return c.post(ctx, AnalyticsEventPath, req, nil)
}
