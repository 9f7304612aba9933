package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by Load
const (
	EnvConfigFile        = "PWDMNGR_CONFIG"
	EnvDBPath            = "PWDMNGR_DB_PATH"
	EnvLogLevel          = "LOG_LEVEL"
	EnvRemoteTimeout     = "PWDMNGR_REMOTE_TIMEOUT"
	EnvNotifyTTL         = "PWDMNGR_NOTIFY_TTL"
	EnvExchangeNotifyTTL = "PWDMNGR_EXCHANGE_NOTIFY_TTL"
)

// Config holds runtime settings for the CLI
type Config struct {
	DBPath        string        `yaml:"db_path"`
	LogLevel      string        `yaml:"log_level"`
	RemoteTimeout time.Duration `yaml:"remote_timeout"`
	// NotifyTTL is how long form notifications stay visible
	NotifyTTL time.Duration `yaml:"notify_ttl"`
	// ExchangeNotifyTTL is how long import and export notifications stay visible
	ExchangeNotifyTTL time.Duration `yaml:"exchange_notify_ttl"`
}

// Default returns the built-in settings
func Default() Config {
	dbPath := "vault.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".pwdmngr", "vault.db")
	}
	return Config{
		DBPath:            dbPath,
		LogLevel:          "info",
		RemoteTimeout:     10 * time.Second,
		NotifyTTL:         3 * time.Second,
		ExchangeNotifyTTL: 5 * time.Second,
	}
}

// Load builds the configuration from defaults, an optional YAML file, a
// .env file in the working directory and finally the environment. An empty
// path falls back to $PWDMNGR_CONFIG; a missing .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("cannot read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("error loading .env file: %w", err)
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	durations := []struct {
		env string
		dst *time.Duration
	}{
		{EnvRemoteTimeout, &cfg.RemoteTimeout},
		{EnvNotifyTTL, &cfg.NotifyTTL},
		{EnvExchangeNotifyTTL, &cfg.ExchangeNotifyTTL},
	}
	for _, d := range durations {
		v := os.Getenv(d.env)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", d.env, err)
		}
		*d.dst = parsed
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.DBPath == "" {
		return errors.New("database path must not be empty")
	}
	if c.RemoteTimeout <= 0 {
		return errors.New("remote timeout must be positive")
	}
	return nil
}
