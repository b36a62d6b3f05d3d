package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL = "skinclinic.db"
	defaultPort        = "8080"
	defaultJWTTTL      = "24h"
	defaultUploadsDir  = "./uploads"
)

type Config struct {
	AppEnv      string
	DatabaseURL string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	UploadsDir  string
}

// Load reads .env if present, then the process environment. JWT_SECRET is
// the only value without a default: a signing key must never be implicit.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		Port:        getEnv("PORT", defaultPort),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		UploadsDir:  getEnv("UPLOADS_DIR", defaultUploadsDir),
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be > 0")
	}
	cfg.JWTTTL = ttl

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
