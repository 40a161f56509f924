package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDatabaseURL = "weddingwall.db"
	defaultUploadDir   = "./uploads"
	defaultPort        = "8080"
)

type Config struct {
	AppEnv      string
	DatabaseURL string
	UploadDir   string
	Port        string
}

// Load reads configuration from the environment. A plain filename in
// DATABASE_URL means local SQLite; a postgres:// URL selects PostgreSQL.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(strings.TrimSpace(getEnv("APP_ENV", "dev"))),
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		UploadDir:   strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir)),
		Port:        strings.TrimSpace(getEnv("PORT", defaultPort)),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT value %q", cfg.Port)
	}

	return cfg, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
