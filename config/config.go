// Package config provides configuration for the ClipHunter TUI.
// Values are loaded from environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultServiceURL is the base address of the remote cutting service.
	DefaultServiceURL = "https://clip-hunter-backend-production.up.railway.app"
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
	// DefaultMaxAttempts is the default number of cut submission attempts.
	DefaultMaxAttempts = 3
	// DefaultRetryDelay is the default base delay between cut retries.
	DefaultRetryDelay = 1200 * time.Millisecond

	// Environment variable names
	EnvServiceURL   = "CLIPHUNTER_API_URL"
	EnvDataDir      = "CLIPHUNTER_DATA_DIR"
	EnvLogLevel     = "CLIPHUNTER_LOG_LEVEL"
	EnvMaxAttempts  = "CLIPHUNTER_MAX_ATTEMPTS"
	EnvRetryDelayMs = "CLIPHUNTER_RETRY_DELAY_MS"

	// DBFilename is the SQLite database filename inside the data directory.
	DBFilename = "clips.db"
	// LogFilename is the log filename inside the data directory.
	LogFilename = "cliphunter.log"
)

// Emotions are the selectable scene emotions for a clip.
var Emotions = []string{"Comedy", "Drama", "Action", "Happy", "Sad", "Epic", "Tense", "General"}

// Categories are the selectable clip categories.
var Categories = []string{"Action", "Drama", "Documentary", "General"}

// Config holds the resolved application configuration.
// It is built once at startup and injected into the components that need it;
// nothing reads the environment after New returns.
type Config struct {
	serviceURL  string
	dataDir     string
	logLevel    string
	maxAttempts int
	retryDelay  time.Duration
}

// New creates a Config with defaults and environment variable overrides.
func New() (*Config, error) {
	cfg := &Config{
		serviceURL:  DefaultServiceURL,
		dataDir:     defaultDataDir(),
		logLevel:    DefaultLogLevel,
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
	}

	if u := os.Getenv(EnvServiceURL); u != "" {
		cfg.serviceURL = u
	}

	if dd := os.Getenv(EnvDataDir); dd != "" {
		cfg.dataDir = dd
	}

	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}

	if ma := os.Getenv(EnvMaxAttempts); ma != "" {
		n, err := strconv.Atoi(ma)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvMaxAttempts, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid %s: must be at least 1", EnvMaxAttempts)
		}
		cfg.maxAttempts = n
	}

	if rd := os.Getenv(EnvRetryDelayMs); rd != "" {
		ms, err := strconv.Atoi(rd)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvRetryDelayMs, err)
		}
		if ms < 0 {
			return nil, fmt.Errorf("invalid %s: must not be negative", EnvRetryDelayMs)
		}
		cfg.retryDelay = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

// ServiceURL returns the base address of the remote cutting service.
func (c *Config) ServiceURL() string {
	return c.serviceURL
}

// DataDir returns the data directory path.
func (c *Config) DataDir() string {
	return c.dataDir
}

// DBPath returns the full path to the SQLite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.dataDir, DBFilename)
}

// LogPath returns the full path to the log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.dataDir, LogFilename)
}

// LogLevel returns the log level (debug, info, warn, error).
func (c *Config) LogLevel() string {
	return c.logLevel
}

// MaxAttempts returns the number of cut submission attempts.
func (c *Config) MaxAttempts() int {
	return c.maxAttempts
}

// RetryDelay returns the base delay between cut retries.
func (c *Config) RetryDelay() time.Duration {
	return c.retryDelay
}

// defaultDataDir returns the default data directory path.
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".cliphunter"
	}
	return filepath.Join(homeDir, ".local", "share", "cliphunter-tui")
}
