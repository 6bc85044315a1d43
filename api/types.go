package api

import "time"

// AdminMe is the authenticated admin profile
type AdminMe struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminLoginResult is the response from the admin login endpoint
type AdminLoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// PlayerIdentity identifies a registered player
type PlayerIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PlayerAuthResult is the response from player register/login
type PlayerAuthResult struct {
	Token  string         `json:"token"`
	Player PlayerIdentity `json:"player"`
}

// StartSessionResult is the response from starting a play session.
// ExpiresAt stays a string so an unparseable instant can fall back to the
// default validity window instead of failing the whole response.
type StartSessionResult struct {
	PlayToken string `json:"play_token"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// Pagination is the paging metadata carried by paginated envelopes
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// EducationCategoryRef is an education category embedded in a game row
type EducationCategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Game is a normalized public catalog entry
type Game struct {
	ID                   int64
	Title                string
	Slug                 string
	Thumbnail            string
	GameURL              string
	Icon                 string
	AgeCategoryID        int64
	AgeRating            string
	AgeLabel             string
	AgeCategoryLabel     string
	MinAge               int64
	MaxAge               int64
	EducationCategoryIDs []int64
	EducationCategories  []EducationCategoryRef
	PlayCount            int64
	Free                 bool
	CreatedAt            time.Time
}

// GameList is a normalized page of the public catalog
type GameList struct {
	Items []Game
	Page  int
	Limit int
	Total int
}

// AgeCategory groups games by player age
type AgeCategory struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	MinAge    int64  `json:"min_age"`
	MaxAge    int64  `json:"max_age"`
	CreatedAt string `json:"created_at,omitempty"`
}

// EducationCategory groups games by learning topic
type EducationCategory struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PublicCategories is the combined public category listing
type PublicCategories struct {
	AgeCategories       []AgeCategory
	EducationCategories []EducationCategory
}

// AgeCategoryList is an admin page of age categories
type AgeCategoryList struct {
	Items []AgeCategory `json:"items"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// EducationCategoryList is an admin page of education categories
type EducationCategoryList struct {
	Items []EducationCategory `json:"items"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// AdminGameStatus is the moderation state of a catalog entry
type AdminGameStatus string

const (
	GameStatusDraft    AdminGameStatus = "draft"
	GameStatusActive   AdminGameStatus = "active"
	GameStatusArchived AdminGameStatus = "archived"
)

// AdminGame is the full catalog entry visible to administrators
type AdminGame struct {
	ID                   int64           `json:"id"`
	Title                string          `json:"title"`
	Slug                 string          `json:"slug"`
	Status               AdminGameStatus `json:"status"`
	Thumbnail            string          `json:"thumbnail,omitempty"`
	GameURL              string          `json:"game_url,omitempty"`
	Icon                 string          `json:"icon,omitempty"`
	AgeCategoryID        int64           `json:"age_category_id"`
	AgeRating            string          `json:"age_rating,omitempty"`
	MinAge               int64           `json:"min_age,omitempty"`
	MaxAge               int64           `json:"max_age,omitempty"`
	EducationCategoryIDs []int64         `json:"education_category_ids,omitempty"`
	PlayCount            int64           `json:"play_count,omitempty"`
	Free                 bool            `json:"free"`
	CreatedAt            string          `json:"created_at"`
	UpdatedAt            string          `json:"updated_at"`
}

// AdminGameList is an admin page of catalog entries
type AdminGameList struct {
	Items []AdminGame `json:"items"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int         `json:"total"`
}

// CreateGameRequest is the body for creating a catalog entry
type CreateGameRequest struct {
	Title                string  `json:"title"`
	Slug                 string  `json:"slug"`
	AgeCategoryID        int64   `json:"age_category_id"`
	EducationCategoryIDs []int64 `json:"education_category_ids,omitempty"`
	Thumbnail            string  `json:"thumbnail,omitempty"`
	GameURL              string  `json:"game_url,omitempty"`
	Free                 bool    `json:"free,omitempty"`
}

// UpdateGameRequest is the body for a partial catalog entry update
type UpdateGameRequest struct {
	Title                *string `json:"title,omitempty"`
	Slug                 *string `json:"slug,omitempty"`
	AgeCategoryID        *int64  `json:"age_category_id,omitempty"`
	EducationCategoryIDs []int64 `json:"education_category_ids,omitempty"`
	Thumbnail            *string `json:"thumbnail,omitempty"`
	GameURL              *string `json:"game_url,omitempty"`
	Free                 *bool   `json:"free,omitempty"`
}

// UploadZipResult is the response from uploading a game bundle
type UploadZipResult struct {
	ObjectKey string `json:"object_key"`
	ETag      string `json:"etag"`
	Size      int64  `json:"size"`
	GameURL   string `json:"game_url"`
}

// CreateAgeCategoryRequest is the body for creating an age category
type CreateAgeCategoryRequest struct {
	Label  string `json:"label"`
	MinAge int64  `json:"min_age"`
	MaxAge int64  `json:"max_age"`
}

// UpdateAgeCategoryRequest is the body for a partial age category update
type UpdateAgeCategoryRequest struct {
	Label  *string `json:"label,omitempty"`
	MinAge *int64  `json:"min_age,omitempty"`
	MaxAge *int64  `json:"max_age,omitempty"`
}

// CreateEducationCategoryRequest is the body for creating an education category
type CreateEducationCategoryRequest struct {
	Name string `json:"name"`
}

// UpdateEducationCategoryRequest is the body for renaming an education category
type UpdateEducationCategoryRequest struct {
	Name *string `json:"name,omitempty"`
}

// LeaderboardItem is a single leaderboard row
type LeaderboardItem struct {
	Member string `json:"member"`
	Score  int64  `json:"score"`
}

// LeaderboardView is a leaderboard read for one game
type LeaderboardView struct {
	GameID int64             `json:"game_id"`
	Period string            `json:"period"`
	Scope  string            `json:"scope"`
	Limit  int               `json:"limit"`
	Items  []LeaderboardItem `json:"items"`
}

// DashboardTopGame is a top-played entry in the dashboard overview
type DashboardTopGame struct {
	GameID int64  `json:"game_id"`
	Title  string `json:"title"`
	Plays  int64  `json:"plays"`
}

// DashboardOverview is the admin dashboard summary
type DashboardOverview struct {
	SessionsToday    int64              `json:"sessions_today"`
	TopGames         []DashboardTopGame `json:"top_games"`
	TotalActiveGames int64              `json:"total_active_games"`
	TotalPlayers     int64              `json:"total_players"`
}

// HistoryItem is one entry in a player's play history
type HistoryItem struct {
	GameID   int64  `json:"game_id"`
	Title    string `json:"title"`
	PlayedAt string `json:"played_at"`
	Score    int64  `json:"score,omitempty"`
	Status   string `json:"status,omitempty"`
}

// HistoryPage is a paginated slice of play history.
// The endpoint returns the whole envelope so the pagination metadata
// reaches the caller.
type HistoryPage struct {
	Data       []HistoryItem `json:"data"`
	Pagination Pagination    `json:"pagination"`
}
