package orbit

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kirsle/configdir"

	"github.com/ZygmaCore/orbit/database"
	"github.com/ZygmaCore/orbit/lib/logger"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AppName is used for the config directory and the keyring service name
const AppName = "orbit"

// DefaultBaseURL is the API base used when no platform has been configured
const DefaultBaseURL = "http://localhost:8080/api"

const configKey = "config"

// ConfigPath returns the per-user config directory for the application
func ConfigPath() string {
	return configdir.LocalConfig(AppName)
}

// Config holds global app settings persisted in the app_settings bucket
type Config struct {
	db *database.DB
	mu sync.RWMutex

	settings settings
}

type settings struct {
	BaseURL string `json:"base_url"`
	Debug   bool   `json:"debug,omitempty"`
}

// NewConfig loads the persisted settings, creating defaults on first run
func NewConfig(db *database.DB) (*Config, error) {
	c := &Config{
		db:       db,
		settings: settings{BaseURL: DefaultBaseURL},
	}

	data, err := db.Get(database.BucketAppSettings, configKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if data == nil {
		// First run, persist defaults
		if err := c.save(); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := json.Unmarshal(data, &c.settings); err != nil {
		// Corrupt settings are replaced with defaults rather than blocking startup
		logger.Config.Warn().Err(err).Msg("Failed to decode settings, resetting to defaults")
		c.settings = settings{BaseURL: DefaultBaseURL}
		if err := c.save(); err != nil {
			return nil, err
		}
	}

	if c.settings.BaseURL == "" {
		c.settings.BaseURL = DefaultBaseURL
	}

	return c, nil
}

func (c *Config) save() error {
	data, err := json.Marshal(c.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := c.db.Set(database.BucketAppSettings, configKey, data); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}

// BaseURL returns the configured API base URL
func (c *Config) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.BaseURL
}

// SetBaseURL updates and persists the API base URL
func (c *Config) SetBaseURL(baseURL string) error {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.BaseURL = baseURL
	return c.save()
}

// Debug returns whether debug logging is enabled
func (c *Config) Debug() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Debug
}

// SetDebug updates and persists the debug flag
func (c *Config) SetDebug(debug bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Debug = debug
	return c.save()
}
