package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/klwxsrx/simctl/pkg/env"
	"github.com/klwxsrx/simctl/pkg/log"
)

const (
	envPrefix = "simctl"

	DefaultBackendURL      = "http://localhost:8080"
	DefaultHTTPTimeout     = 10 * time.Second
	DefaultRetryMaxElapsed = 5 * time.Second
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

// Config is read from the environment first, command line flags overwrite it
// before any dependency is loaded.
type Config struct {
	BackendURL      string
	SessionFile     string
	Ephemeral       bool
	HTTPTimeout     time.Duration
	RetryMaxElapsed time.Duration
	LogLevel        string
	LogFormat       string
}

func LoadConfig() (*Config, error) {
	var (
		c   Config
		err error
	)
	if c.BackendURL, err = env.ParseOrDefault(env.Key(envPrefix, "backendURL"), DefaultBackendURL); err != nil {
		return nil, err
	}

	sessionFile, err := env.ParseOptional[string](env.Key(envPrefix, "sessionFile"))
	if err != nil {
		return nil, err
	}
	if sessionFile != nil {
		c.SessionFile = *sessionFile
	} else if c.SessionFile, err = defaultSessionFile(); err != nil {
		return nil, err
	}

	if c.Ephemeral, err = env.ParseOrDefault(env.Key(envPrefix, "ephemeral"), false); err != nil {
		return nil, err
	}
	if c.HTTPTimeout, err = env.ParseOrDefault(env.Key(envPrefix, "httpTimeout"), DefaultHTTPTimeout); err != nil {
		return nil, err
	}
	if c.RetryMaxElapsed, err = env.ParseOrDefault(env.Key(envPrefix, "httpRetryMaxElapsed"), DefaultRetryMaxElapsed); err != nil {
		return nil, err
	}
	if c.LogLevel, err = env.ParseOrDefault("LOG_LEVEL", "warn"); err != nil {
		return nil, err
	}
	if c.LogFormat, err = env.ParseOrDefault("LOG_FORMAT", string(log.FormatText)); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) BindFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVar(&c.BackendURL, "backend-url", c.BackendURL, "backend base URL")
	flags.StringVar(&c.SessionFile, "session-file", c.SessionFile, "file keeping the session between runs")
	flags.BoolVar(&c.Ephemeral, "ephemeral", c.Ephemeral, "keep the session in memory only")
	flags.DurationVar(&c.HTTPTimeout, "http-timeout", c.HTTPTimeout, "timeout of a single backend call")
}

func (c *Config) Level() log.Level {
	level, ok := logLevelMap[c.LogLevel]
	if !ok {
		return log.LevelWarn
	}
	return level
}

func defaultSessionFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "simctl", "session.db"), nil
}
