// Package config loads application settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrParsingConfig = errors.New("failed to parse config")
	ErrLoadingEnv    = errors.New("failed to load env file")
)

// Config holds every runtime setting.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StaticDir is served under /web/static.
	StaticDir string `env:"STATIC_DIR" envDefault:"web/static"`

	WorkspaceTTL             time.Duration `env:"WORKSPACE_TTL" envDefault:"30m"`
	WorkspaceCleanupInterval time.Duration `env:"WORKSPACE_CLEANUP_INTERVAL" envDefault:"10m"`

	MaxLogoBytes       int64  `env:"MAX_LOGO_BYTES" envDefault:"5242880"`
	EscapeSpecialChars bool   `env:"ESCAPE_SPECIAL_CHARS" envDefault:"false"`
	ExportTempDir      string `env:"EXPORT_TEMP_DIR"`
}

// Load reads the given env files (".env" when none are named) and parses the
// environment. A missing default .env file is not an error; a missing named
// file is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Join(ErrLoadingEnv, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnv, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}
