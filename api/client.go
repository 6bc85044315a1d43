package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/ZygmaCore/orbit/lib/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RequestIDHeader carries the request correlation id in both directions
const RequestIDHeader = "X-Request-ID"

// TokenSource supplies the current admin bearer token, or "" when anonymous
type TokenSource func() string

// Client is the HTTP client for the Kids Planet API.
// It owns no session state; the token source is consulted per request.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu          sync.RWMutex
	tokenSource TokenSource
}

// NewClient creates a new Kids Planet API client
func NewClient(baseURL string) *Client {
	// Ensure baseURL doesn't have trailing slash
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetTokenSource sets the function consulted for the implicit admin token.
// Requests under the elevated /admin prefix attach its result as a bearer
// header when non-empty; other paths never receive an implicit token.
func (c *Client) SetTokenSource(fn TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokenSource = fn
}

func (c *Client) implicitToken() string {
	c.mu.RLock()
	fn := c.tokenSource
	c.mu.RUnlock()
	if fn == nil {
		return ""
	}
	return strings.TrimSpace(fn())
}

// do performs an HTTP request. override selects token handling: nil applies
// the implicit elevated-prefix rule; non-nil is used unconditionally, with
// the empty string meaning "send no token". contentType is only consulted
// for raw (io.Reader / []byte) bodies; JSON bodies always get application/json.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, override *string, contentType string) (*http.Response, error) {
	target := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		target = c.BaseURL + path
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	// Encode the body: raw payloads pass through untouched, anything else
	// is serialized as JSON
	var bodyReader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		bodyReader = b
	case []byte:
		bodyReader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	token := ""
	if override != nil {
		token = strings.TrimSpace(*override)
	} else if strings.HasPrefix(path, AdminBase) {
		token = c.implicitToken()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// errorEnvelope is the backend's error wrapper
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// parseResponse classifies the response status and decodes the body into v.
// A 204 yields no value. A body is only parsed when it is declared and
// syntactically valid JSON; anything else degrades to "no body" so a parse
// problem never masks the real HTTP status.
func parseResponse(resp *http.Response, v interface{}) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.API.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	requestID := strings.TrimSpace(resp.Header.Get(RequestIDHeader))

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var body []byte
	if data, err := io.ReadAll(resp.Body); err != nil {
		logger.API.Warn().Err(err).Int("status", resp.StatusCode).Msg("Failed to read response body")
	} else {
		body = data
	}

	ct := resp.Header.Get("Content-Type")
	hasJSON := strings.Contains(ct, "application/json") && len(body) > 0 && json.Valid(body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Status:    resp.StatusCode,
			Code:      "HTTP_ERROR",
			Message:   "Request failed",
			RequestID: requestID,
		}
		if resp.StatusCode == http.StatusUnauthorized {
			apiErr.Code = "UNAUTHORIZED"
		}
		if text := http.StatusText(resp.StatusCode); text != "" {
			apiErr.Message = text
		}
		if hasJSON {
			var envelope errorEnvelope
			if err := json.Unmarshal(body, &envelope); err == nil {
				if envelope.Error.Code != "" {
					apiErr.Code = envelope.Error.Code
				}
				if envelope.Error.Message != "" {
					apiErr.Message = envelope.Error.Message
				}
			}
		}
		return apiErr
	}

	if v == nil || !hasJSON {
		return nil
	}

	// Unwrap the {data, pagination?} success envelope. When pagination
	// metadata is present the whole object is decoded so it reaches the
	// caller; otherwise only the data field is kept.
	payload := body
	if body[0] == '{' {
		var probe map[string]jsoniter.RawMessage
		if err := json.Unmarshal(body, &probe); err == nil {
			if data, ok := probe["data"]; ok {
				if _, paged := probe["pagination"]; !paged {
					payload = data
				}
			}
		}
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// APIError represents a classified error response from the API
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d %s: %s", e.Status, e.Code, e.Message)
}

// IsAuthError reports whether err is a classified 401/403 response
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// =============================================================================
// HTTP method helpers
// =============================================================================

// get performs a GET request and parses the response into v
func (c *Client) get(ctx context.Context, path string, v interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}

// getWithToken performs a GET request with an explicit bearer token
func (c *Client) getWithToken(ctx context.Context, path, token string, v interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, &token, "")
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}

// post performs a POST request with body and parses the response into v
func (c *Client) post(ctx context.Context, path string, body, v interface{}) error {
	resp, err := c.do(ctx, http.MethodPost, path, body, nil, "")
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}

// postWithToken performs a POST request with an explicit bearer token
func (c *Client) postWithToken(ctx context.Context, path string, body interface{}, token string, v interface{}) error {
	resp, err := c.do(ctx, http.MethodPost, path, body, &token, "")
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}

// postMultipart performs a POST request with a prepared multipart body.
// The content type comes from the multipart writer so the boundary
// encoding is never overridden.
func (c *Client) postMultipart(ctx context.Context, path string, form io.Reader, contentType string, v interface{}) error {
	resp, err := c.do(ctx, http.MethodPost, path, form, nil, contentType)
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}

// put performs a PUT request with body and parses the response into v
func (c *Client) put(ctx context.Context, path string, body, v interface{}) error {
	resp, err := c.do(ctx, http.MethodPut, path, body, nil, "")
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}

// del performs a DELETE request and parses the response into v
func (c *Client) del(ctx context.Context, path string, v interface{}) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	return parseResponse(resp, v)
}
