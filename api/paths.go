package api

import "fmt"

// API path constants
const (
	// AdminBase is the elevated path prefix; requests under it get the
	// admin bearer token attached implicitly
	AdminBase = "/admin"

	// Admin authentication paths
	AdminLoginPath = AdminBase + "/auth/login"
	AdminMePath    = AdminBase + "/me"

	// Admin resource paths
	AdminDashboardOverviewPath   = AdminBase + "/dashboard/overview"
	AdminGamesBase               = AdminBase + "/games"
	AdminAgeCategoriesBase       = AdminBase + "/age-categories"
	AdminEducationCategoriesBase = AdminBase + "/education-categories"

	// Player authentication paths
	PlayerAuthBase     = "/auth/player"
	PlayerRegisterPath = PlayerAuthBase + "/register"
	PlayerLoginPath    = PlayerAuthBase + "/login"
	PlayerLogoutPath   = PlayerAuthBase + "/logout"

	// Play session and analytics paths
	SessionStartPath   = "/sessions/start"
	AnalyticsEventPath = "/analytics/event"

	// Catalog paths
	GamesBase      = "/games"
	CategoriesPath = "/categories"

	// Leaderboard and history paths
	LeaderboardBase   = "/leaderboard"
	PlayerHistoryPath = "/player/history"
)

// =============================================================================
// Catalog URL builders
// =============================================================================

// GamePath returns the public path for a specific game
func GamePath(gameID int64) string {
	return fmt.Sprintf("%s/%d", GamesBase, gameID)
}

// LeaderboardPath returns the path for a game's leaderboard
func LeaderboardPath(gameID int64) string {
	return fmt.Sprintf("%s/%d", LeaderboardBase, gameID)
}

// =============================================================================
// Admin URL builders
// =============================================================================

// AdminGamePath returns the admin path for a specific game
func AdminGamePath(gameID int64) string {
	return fmt.Sprintf("%s/%d", AdminGamesBase, gameID)
}

// AdminGamePublishPath returns the path to publish a game
func AdminGamePublishPath(gameID int64) string {
	return fmt.Sprintf("%s/%d/publish", AdminGamesBase, gameID)
}

// AdminGameUnpublishPath returns the path to unpublish a game
func AdminGameUnpublishPath(gameID int64) string {
	return fmt.Sprintf("%s/%d/unpublish", AdminGamesBase, gameID)
}

// AdminGameUploadPath returns the path to upload a game bundle zip
func AdminGameUploadPath(gameID int64) string {
	return fmt.Sprintf("%s/%d/upload", AdminGamesBase, gameID)
}

// AdminAgeCategoryPath returns the admin path for a specific age category
func AdminAgeCategoryPath(id int64) string {
	return fmt.Sprintf("%s/%d", AdminAgeCategoriesBase, id)
}

// AdminEducationCategoryPath returns the admin path for a specific education category
func AdminEducationCategoryPath(id int64) string {
	return fmt.Sprintf("%s/%d", AdminEducationCategoriesBase, id)
}
