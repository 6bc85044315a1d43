package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/ZygmaCore/orbit/api"
	"github.com/ZygmaCore/orbit/database"
	orbit "github.com/ZygmaCore/orbit/lib"
	"github.com/ZygmaCore/orbit/lib/analytics"
	"github.com/ZygmaCore/orbit/lib/auth"
	"github.com/ZygmaCore/orbit/lib/logger"
	"github.com/ZygmaCore/orbit/lib/session"
	"github.com/ZygmaCore/orbit/lib/store"
	"github.com/ZygmaCore/orbit/model"
)

// console wires the database, config, API client and state managers
// together for the command-line surface.
type console struct {
	db       *database.DB
	cfg      *orbit.Config
	client   *api.Client
	auth     *auth.Manager
	sessions *session.Manager
	tracker  *analytics.Tracker

	playerSlot store.Slot
}

func newConsole() (*console, error) {
	db, err := database.Open(orbit.ConfigPath())
	if err != nil {
		if errors.Is(err, database.ErrDatabaseLocked) {
			return nil, fmt.Errorf("another instance is already running")
		}
		return nil, err
	}

	cfg, err := orbit.NewConfig(db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Console.Warn().Err(closeErr).Msg("Failed to close database after config error")
		}
		return nil, err
	}

	baseURL := cfg.BaseURL()
	client := api.NewClient(baseURL)

	// Per-platform slots: admin and player tokens live in the OS keyring,
	// the play session record lives in the local database.
	adminSlot := store.NewKeyringSlot(orbit.AppName, "admin_token:"+baseURL)
	playerSlot := store.NewKeyringSlot(orbit.AppName, "player_token:"+baseURL)
	sessionSlot := store.NewBoltSlot(db, database.BucketPlaySessions, baseURL)

	authManager := auth.NewManager(client, adminSlot)
	sessionManager := session.NewManager(client, sessionSlot)
	sessionManager.LoadFromStorage()

	return &console{
		db:         db,
		cfg:        cfg,
		client:     client,
		auth:       authManager,
		sessions:   sessionManager,
		tracker:    analytics.NewTracker(client, sessionManager),
		playerSlot: playerSlot,
	}, nil
}

func (c *console) close() {
	if err := c.db.Close(); err != nil {
		logger.Console.Warn().Err(err).Msg("Failed to close database")
	}
}

// rememberAdmin records a successful admin login on the platform record
func (c *console) rememberAdmin(email string) {
	baseURL := c.cfg.BaseURL()
	platform, err := orbit.GetPlatform(c.db, baseURL)
	if err != nil {
		logger.Console.Warn().Err(err).Msg("Failed to load platform record")
		return
	}
	if platform == nil {
		platform = &model.Platform{Name: baseURL, BaseURL: baseURL}
	}

	platform.AddOrUpdateAdminRef(email)
	platform.LastLogin = time.Now()
	if err := orbit.SavePlatform(c.db, platform); err != nil {
		logger.Console.Warn().Err(err).Msg("Failed to save platform record")
	}
}
