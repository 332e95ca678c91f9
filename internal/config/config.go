package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"auction-client/utils"

	"github.com/joho/godotenv"
)

// Admin verification modes
const (
	AdminAuthBackend = "backend"
	AdminAuthStatic  = "static"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Storage StorageConfig
	Polling PollingConfig
	Admin   AdminConfig
	Log     LogConfig
	Demo    DemoConfig
}

type ServerConfig struct {
	ListenAddr      string
	ShutdownTimeout time.Duration
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig selects where sessions are kept. An empty Path keeps them in memory.
type StorageConfig struct {
	Path string
}

type PollingConfig struct {
	Interval time.Duration
}

type AdminConfig struct {
	Auth     string // AdminAuthStatic (default) or AdminAuthBackend
	Email    string
	Password string
}

type LogConfig struct {
	Level string
}

type DemoConfig struct {
	Seed bool
}

// Load reads the given .env files (default ".env") into the environment
// and builds the configuration. Missing files are ignored; variables
// already set in the environment win.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			utils.Warn("config: could not read env file", map[string]any{"file": f, "error": err.Error()})
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from lookup, applying defaults.
func FromEnv(lookup func(string) (string, bool)) *Config {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	adminAuth := strings.ToLower(get("AUCTION_ADMIN_AUTH", AdminAuthStatic))
	if adminAuth != AdminAuthBackend && adminAuth != AdminAuthStatic {
		utils.Warn("config: unknown admin auth mode, using static", map[string]any{"value": adminAuth})
		adminAuth = AdminAuthStatic
	}

	return &Config{
		Server: ServerConfig{
			ListenAddr:      get("AUCTION_LISTEN_ADDR", ":3000"),
			ShutdownTimeout: duration(get, "AUCTION_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Backend: BackendConfig{
			BaseURL: get("AUCTION_API_BASE_URL", "http://localhost:8080/api"),
			Timeout: duration(get, "AUCTION_API_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			Path: get("AUCTION_STORAGE_PATH", ""),
		},
		Polling: PollingConfig{
			Interval: duration(get, "AUCTION_POLL_INTERVAL", 30*time.Second),
		},
		Admin: AdminConfig{
			Auth:     adminAuth,
			Email:    get("AUCTION_ADMIN_EMAIL", "admin@gmail.com"),
			Password: get("AUCTION_ADMIN_PASSWORD", "admin123"),
		},
		Log: LogConfig{
			Level: get("AUCTION_LOG_LEVEL", "info"),
		},
		Demo: DemoConfig{
			Seed: boolean(get, "AUCTION_SEED_DEMO", false),
		},
	}
}

func duration(get func(string, string) string, key string, def time.Duration) time.Duration {
	raw := get(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		utils.Warn("config: invalid duration, using default", map[string]any{"key": key, "value": raw, "default": def.String()})
		return def
	}
	return d
}

func boolean(get func(string, string) string, key string, def bool) bool {
	raw := get(key, "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		utils.Warn("config: invalid boolean, using default", map[string]any{"key": key, "value": raw})
		return def
	}
	return b
}
