package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "grahini.db"
	defaultAdminEmail    = "admin@grahini.in"
	defaultAdminPassword = "grahini123"
)

type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	AdminEmail    string
	AdminPassword string
}

func Load() (*Config, error) {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.AdminEmail = strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", defaultAdminEmail)))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", defaultAdminPassword)

	if cfg.AppEnv == "prod" && cfg.AdminPassword == defaultAdminPassword {
		return nil, fmt.Errorf("ADMIN_PASSWORD must be set explicitly in prod")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
