package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
)

// GamesSort selects the public catalog ordering
type GamesSort string

const (
	GamesSortNewest  GamesSort = "newest"
	GamesSortPopular GamesSort = "popular"
)

// ListGamesParams filters the public catalog listing
type ListGamesParams struct {
	AgeCategoryIDs       []int64
	EducationCategoryIDs []int64
	Sort                 GamesSort
	Page                 int
	Limit                int
}

// appendCategoryParams emits both the canonical id key and its short alias,
// matching what the backend accepts: a single id sets both keys, multiple
// ids go comma-joined into the alias only.
func appendCategoryParams(q url.Values, idKey, aliasKey string, ids []int64) {
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		if id >= 1 {
			normalized = append(normalized, strconv.FormatInt(id, 10))
		}
	}
	if len(normalized) == 0 {
		return
	}

	if len(normalized) == 1 {
		q.Set(idKey, normalized[0])
	}
	q.Set(aliasKey, strings.Join(normalized, ","))
}

func (p ListGamesParams) query() string {
	q := url.Values{}

	appendCategoryParams(q, "age_category_id", "age", p.AgeCategoryIDs)
	appendCategoryParams(q, "education_category_id", "education", p.EducationCategoryIDs)

	if p.Sort == GamesSortNewest || p.Sort == GamesSortPopular {
		q.Set("sort", string(p.Sort))
		if p.Sort == GamesSortPopular {
			q.Set("sort_by", "play_count")
			q.Set("order", "desc")
		}
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}

	if encoded := q.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// ListGames retrieves a normalized page of the public catalog
func (c *Client) ListGames(ctx context.Context, params ListGamesParams) (*GameList, error) {
	var raw interface{}
	if err := c.get(ctx, GamesBase+params.query(), &raw); err != nil {
		return nil, err
	}
	return normalizeGameList(raw), nil
}

// GetGame retrieves a single normalized public catalog entry
func (c *Client) GetGame(ctx context.Context, gameID int64) (*Game, error) {
	if gameID < 1 {
		return nil, fmt.Errorf("game id must be >= 1")
	}

	var raw interface{}
	if err := c.get(ctx, GamePath(gameID), &raw); err != nil {
		return nil, err
	}
	game := normalizeGame(raw)
	return &game, nil
}

// =============================================================================
// Admin catalog management
// =============================================================================

// AdminListGamesParams filters the admin catalog listing
type AdminListGamesParams struct {
	Status AdminGameStatus
	Page   int
	Limit  int
	Query  string
}

func (p AdminListGamesParams) query() string {
	q := url.Values{}

	switch p.Status {
	case GameStatusDraft, GameStatusActive, GameStatusArchived:
		q.Set("status", string(p.Status))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if search := strings.TrimSpace(p.Query); search != "" {
		q.Set("q", search)
	}

	if encoded := q.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// AdminListGames retrieves a page of the admin catalog
func (c *Client) AdminListGames(ctx context.Context, params AdminListGamesParams) (*AdminGameList, error) {
	var list AdminGameList
	if err := c.get(ctx, AdminGamesBase+params.query(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AdminCreateGame creates a catalog entry in draft state
func (c *Client) AdminCreateGame(ctx context.Context, req *CreateGameRequest) (*AdminGame, error) {
	if req == nil {
		return nil, fmt.Errorf("request body is required")
	}

	var created AdminGame
	if err := c.post(ctx, AdminGamesBase, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AdminUpdateGame applies a partial update to a catalog entry
func (c *Client) AdminUpdateGame(ctx context.Context, gameID int64, req *UpdateGameRequest) (*AdminGame, error) {
	if gameID < 1 {
		return nil, fmt.Errorf("game id must be >= 1")
	}
	if req == nil {
		return nil, fmt.Errorf("request body is required")
	}

	var updated AdminGame
	if err := c.put(ctx, AdminGamePath(gameID), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdminPublishGame moves a catalog entry to the active state
func (c *Client) AdminPublishGame(ctx context.Context, gameID int64) (*AdminGame, error) {
	if gameID < 1 {
		return nil, fmt.Errorf("game id must be >= 1")
	}

	var updated AdminGame
	if err := c.post(ctx, AdminGamePublishPath(gameID), nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdminUnpublishGame moves a catalog entry back to draft
func (c *Client) AdminUnpublishGame(ctx context.Context, gameID int64) (*AdminGame, error) {
	if gameID < 1 {
		return nil, fmt.Errorf("game id must be >= 1")
	}

	var updated AdminGame
	if err := c.post(ctx, AdminGameUnpublishPath(gameID), nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// AdminUploadGameZip uploads a game bundle as a multipart form. The body
// passes through untouched; the multipart writer owns the content type.
func (c *Client) AdminUploadGameZip(ctx context.Context, gameID int64, filename string, bundle io.Reader) (*UploadZipResult, error) {
	if gameID < 1 {
		return nil, fmt.Errorf("game id must be >= 1")
	}
	if bundle == nil {
		return nil, fmt.Errorf("bundle is required")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, bundle); err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	var result UploadZipResult
	if err := c.postMultipart(ctx, AdminGameUploadPath(gameID), &buf, writer.FormDataContentType(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
