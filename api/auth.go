package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// AdminLogin exchanges admin credentials for a bearer token
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*AdminLoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var result AdminLoginResult
	if err := c.post(ctx, AdminLoginPath, body, &result); err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.AccessToken) == "" {
		return nil, &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "INVALID_RESPONSE",
			Message: "missing access token",
		}
	}
	return &result, nil
}

// AdminMe retrieves the admin profile for the implicit token
func (c *Client) AdminMe(ctx context.Context) (*AdminMe, error) {
	var me AdminMe
	if err := c.get(ctx, AdminMePath, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// AdminMeWithToken retrieves the admin profile using an explicit token
func (c *Client) AdminMeWithToken(ctx context.Context, token string) (*AdminMe, error) {
	var me AdminMe
	if err := c.getWithToken(ctx, AdminMePath, token, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// playerAuthRequest is the body for player register/login
type playerAuthRequest struct {
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

func (c *Client) playerAuth(ctx context.Context, path, email, pin string) (*PlayerAuthResult, error) {
	req := playerAuthRequest{
		Email: strings.ToLower(strings.TrimSpace(email)),
		PIN:   pin,
	}

	var result PlayerAuthResult
	if err := c.post(ctx, path, req, &result); err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Token) == "" {
		return nil, &APIError{
			Status:  http.StatusInternalServerError,
			Code:    "INVALID_RESPONSE",
			Message: "missing player token",
		}
	}
	return &result, nil
}

// PlayerRegister creates a player account and returns its token
func (c *Client) PlayerRegister(ctx context.Context, email, pin string) (*PlayerAuthResult, error) {
	return c.playerAuth(ctx, PlayerRegisterPath, email, pin)
}

// PlayerLogin authenticates a player and returns its token
func (c *Client) PlayerLogin(ctx context.Context, email, pin string) (*PlayerAuthResult, error) {
	return c.playerAuth(ctx, PlayerLoginPath, email, pin)
}

// PlayerLogout invalidates a player token server-side. Callers should
// discard the local token even when this fails.
func (c *Client) PlayerLogout(ctx context.Context, token string) error {
	return c.postWithToken(ctx, PlayerLogoutPath, nil, token, nil)
}
