package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZygmaCore/orbit/api"
	"github.com/ZygmaCore/orbit/lib/store"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%q is not a valid id", arg)
	}
	return id, nil
}

// printable turns any client failure into a one-line console message
func printable(err error, fallback string) error {
	mapped := api.MapError(err, fallback)
	return errors.New(api.FormatMapped(mapped, api.FormatOpts{IncludeCode: true}))
}

func newRootCmd(c *console) *cobra.Command {
	root := &cobra.Command{
		Use:           "orbit",
		Short:         "Console client for the Kids Planet game platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(c),
		newMeCmd(c),
		newLogoutCmd(c),
		newGamesCmd(c),
		newCategoriesCmd(c),
		newSessionCmd(c),
		newPlayerCmd(c),
		newDashboardCmd(c),
		newLeaderboardCmd(c),
		newHistoryCmd(c),
		newTrackCmd(c),
		newConfigCmd(c),
	)
	return root
}

func newLoginCmd(c *console) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a platform administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			result, err := c.client.AdminLogin(ctx, email, password)
			if err != nil {
				return printable(err, "Login failed")
			}
			if err := c.auth.SetToken(ctx, result.AccessToken, true); err != nil {
				return printable(err, "Failed to confirm admin profile")
			}

			snapshot := c.auth.Snapshot()
			if snapshot.Me == nil {
				return errors.New("token was rejected right after login")
			}

			c.rememberAdmin(snapshot.Me.Email)
			fmt.Printf("Signed in as %s (%s)\n", snapshot.Me.Email, snapshot.Me.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newMeCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in admin profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.auth.LoadFromStorage(cmd.Context(), true); err != nil {
				return printable(err, "Failed to fetch profile")
			}

			snapshot := c.auth.Snapshot()
			if snapshot.Me == nil {
				fmt.Println("Not signed in")
				return nil
			}
			fmt.Printf("ID:    %d\nEmail: %s\nRole:  %s\n", snapshot.Me.ID, snapshot.Me.Email, snapshot.Me.Role)
			return nil
		},
	}
}

func newLogoutCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored admin token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.auth.Clear()
			fmt.Println("Signed out")
			return nil
		},
	}
}

func newGamesCmd(c *console) *cobra.Command {
	games := &cobra.Command{
		Use:   "games",
		Short: "Browse the public game catalog",
	}

	var (
		ageIDs       []int64
		educationIDs []int64
		sortBy       string
		page, limit  int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog games",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.client.ListGames(cmd.Context(), api.ListGamesParams{
				AgeCategoryIDs:       ageIDs,
				EducationCategoryIDs: educationIDs,
				Sort:                 api.GamesSort(sortBy),
				Page:                 page,
				Limit:                limit,
			})
			if err != nil {
				return printable(err, "Failed to list games")
			}

			for _, game := range result.Items {
				fmt.Printf("%6d  %-40s  plays=%d\n", game.ID, game.Title, game.PlayCount)
			}
			fmt.Printf("page %d of %d games\n", result.Page, result.Total)
			return nil
		},
	}
	list.Flags().Int64SliceVar(&ageIDs, "age", nil, "age category ids")
	list.Flags().Int64SliceVar(&educationIDs, "education", nil, "education category ids")
	list.Flags().StringVar(&sortBy, "sort", "", "sort order (newest|popular)")
	list.Flags().IntVar(&page, "page", 0, "page number")
	list.Flags().IntVar(&limit, "limit", 0, "page size")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one catalog game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			game, err := c.client.GetGame(cmd.Context(), id)
			if err != nil {
				return printable(err, "Failed to fetch game")
			}

			fmt.Printf("Title:     %s\nSlug:      %s\nAge:       %s\nPlays:     %d\nURL:       %s\n",
				game.Title, game.Slug, game.AgeLabel, game.PlayCount, game.GameURL)
			return nil
		},
	}

	games.AddCommand(list, get)
	return games
}

func newCategoriesCmd(c *console) *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List public game categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.client.GetPublicCategories(cmd.Context(), api.CategoryType(categoryType))
			if err != nil {
				return printable(err, "Failed to list categories")
			}

			for _, age := range result.AgeCategories {
				fmt.Printf("age %6d  %s (%d-%d)\n", age.ID, age.Label, age.MinAge, age.MaxAge)
			}
			for _, edu := range result.EducationCategories {
				fmt.Printf("edu %6d  %s\n", edu.ID, edu.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", "", "restrict to one type (age|education)")
	return cmd
}

func newSessionCmd(c *console) *cobra.Command {
	session := &cobra.Command{
		Use:   "session",
		Short: "Manage the local play session",
	}

	start := &cobra.Command{
		Use:   "start <game-id>",
		Short: "Start a play session for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if _, err := c.sessions.StartSession(cmd.Context(), id); err != nil {
				return printable(err, "Failed to start session")
			}

			snapshot := c.sessions.Snapshot()
			fmt.Printf("Session ready until %s\n", snapshot.ExpiresAt.Format("15:04:05"))
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current play session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.sessions.IsReady() {
				fmt.Println("No active session")
				return nil
			}
			snapshot := c.sessions.Snapshot()
			fmt.Printf("Session active until %s\n", snapshot.ExpiresAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Drop the current play session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.sessions.ClearSession()
			fmt.Println("Session cleared")
			return nil
		},
	}

	session.AddCommand(start, status, clear)
	return session
}

func newPlayerCmd(c *console) *cobra.Command {
	player := &cobra.Command{
		Use:   "player",
		Short: "Manage the player account",
	}

	var email, pin string
	addCredFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&email, "email", "", "parent email")
		cmd.Flags().StringVar(&pin, "pin", "", "player PIN")
		_ = cmd.MarkFlagRequired("email")
		_ = cmd.MarkFlagRequired("pin")
	}

	register := &cobra.Command{
		Use:   "register",
		Short: "Create a player account",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.client.PlayerRegister(cmd.Context(), email, pin)
			if err != nil {
				return printable(err, "Registration failed")
			}
			if err := c.playerSlot.Write(result.Token); err != nil {
				return fmt.Errorf("failed to store player token: %w", err)
			}
			fmt.Printf("Registered %s\n", result.Player.Email)
			return nil
		},
	}
	addCredFlags(register)

	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.client.PlayerLogin(cmd.Context(), email, pin)
			if err != nil {
				return printable(err, "Login failed")
			}
			if err := c.playerSlot.Write(result.Token); err != nil {
				return fmt.Errorf("failed to store player token: %w", err)
			}
			fmt.Printf("Signed in as %s\n", result.Player.Email)
			return nil
		},
	}
	addCredFlags(login)

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out the player",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.playerSlot.Read()
			if err == nil && token != "" {
				// Best effort: the local token is dropped either way
				if err := c.client.PlayerLogout(cmd.Context(), token); err != nil {
					fmt.Println("Server-side logout failed, dropping local token anyway")
				}
			}
			if err := c.playerSlot.Clear(); err != nil {
				return fmt.Errorf("failed to clear player token: %w", err)
			}
			fmt.Println("Player signed out")
			return nil
		},
	}

	player.AddCommand(register, login, logout)
	return player
}

func newDashboardCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin dashboard overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.auth.LoadFromStorage(cmd.Context(), false); err != nil {
				return err
			}

			overview, err := c.client.AdminDashboardOverview(cmd.Context())
			if err != nil {
				return printable(err, "Failed to fetch dashboard")
			}

			fmt.Printf("Sessions today: %d\nActive games:   %d\nPlayers:        %d\n",
				overview.SessionsToday, overview.TotalActiveGames, overview.TotalPlayers)
			for _, top := range overview.TopGames {
				fmt.Printf("  %-40s %d plays\n", top.Title, top.Plays)
			}
			return nil
		},
	}
}

func newLeaderboardCmd(c *console) *cobra.Command {
	var period, scope string
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard <game-id>",
		Short: "Show the leaderboard for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			view, err := c.client.GetLeaderboard(cmd.Context(), id, api.LeaderboardParams{
				Period: api.LeaderboardPeriod(period),
				Scope:  api.LeaderboardScope(scope),
				Limit:  limit,
			})
			if err != nil {
				return printable(err, "Failed to fetch leaderboard")
			}

			for i, item := range view.Items {
				fmt.Printf("%3d. %-30s %d\n", i+1, item.Member, item.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "period (daily|weekly)")
	cmd.Flags().StringVar(&scope, "scope", "", "scope (game|global)")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of rows")
	return cmd
}

func newHistoryCmd(c *console) *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the signed-in player's play history",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.playerSlot.Read()
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					fmt.Println("No player signed in")
					return nil
				}
				return fmt.Errorf("failed to read player token: %w", err)
			}

			result, err := c.client.GetPlayerHistory(cmd.Context(), token, api.HistoryParams{
				Page:  page,
				Limit: limit,
			})
			if err != nil {
				return printable(err, "Failed to fetch history")
			}

			for _, item := range result.Data {
				fmt.Printf("%s  %-40s score=%d\n", item.PlayedAt, item.Title, item.Score)
			}
			fmt.Printf("page %d of %d entries\n", result.Pagination.Page, result.Pagination.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	return cmd
}

func newTrackCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "track <event>",
		Short: "Send a gameplay analytics event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.tracker.Track(cmd.Context(), args[0], nil)
			return nil
		},
	}
}

func newConfigCmd(c *console) *cobra.Command {
	config := &cobra.Command{
		Use:   "config",
		Short: "Show or change the client configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("base URL: %s\ndebug:    %v\n", c.cfg.BaseURL(), c.cfg.Debug())
			return nil
		},
	}

	setURL := &cobra.Command{
		Use:   "set-url <base-url>",
		Short: "Change the platform base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.cfg.SetBaseURL(args[0]); err != nil {
				return err
			}
			fmt.Println("Base URL updated, tokens for the previous platform stay untouched")
			return nil
		},
	}

	config.AddCommand(show, setURL)
	return config
}
