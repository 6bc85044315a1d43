package api

import "context"

// startSessionRequest is the body for starting a play session
type startSessionRequest struct {
	GameID int64 `json:"game_id"`
}

// StartSession requests a short-lived play token for a game. Input
// validation is owned by the session manager; this is the raw call.
func (c *Client) StartSession(ctx context.Context, gameID int64) (*StartSessionResult, error) {
	var result StartSessionResult
	if err := c.post(ctx, SessionStartPath, startSessionRequest{GameID: gameID}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
