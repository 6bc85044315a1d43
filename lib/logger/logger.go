package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Pre-configured loggers for different components
var (
	// Logger is the base logger instance
	Logger *zerolog.Logger

	// Component-specific loggers
	API       *zerolog.Logger
	Auth      *zerolog.Logger
	Session   *zerolog.Logger
	Store     *zerolog.Logger
	DB        *zerolog.Logger
	Analytics *zerolog.Logger
	Config    *zerolog.Logger
	Console   *zerolog.Logger
)

// Init initializes all loggers with console output
func Init(debug bool) {
	// Configure console writer for human-readable output
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	// Create base logger
	baseLogger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
	Logger = &baseLogger

	// Create component-specific loggers (once, at startup)
	apiLogger := baseLogger.With().Str("component", "api").Logger()
	API = &apiLogger

	authLogger := baseLogger.With().Str("component", "auth").Logger()
	Auth = &authLogger

	sessionLogger := baseLogger.With().Str("component", "session").Logger()
	Session = &sessionLogger

	storeLogger := baseLogger.With().Str("component", "store").Logger()
	Store = &storeLogger

	dbLogger := baseLogger.With().Str("component", "db").Logger()
	DB = &dbLogger

	analyticsLogger := baseLogger.With().Str("component", "analytics").Logger()
	Analytics = &analyticsLogger

	configLogger := baseLogger.With().Str("component", "config").Logger()
	Config = &configLogger

	consoleLogger := baseLogger.With().Str("component", "console").Logger()
	Console = &consoleLogger
}
