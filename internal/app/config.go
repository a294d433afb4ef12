package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SecretKey string // Required: HMAC signing secret for tokens
	Algorithm string // Optional: JWT signing algorithm (HS256, HS384, HS512) (default: HS256)

	AccessTokenExpireMinutes int // Optional: access token TTL in minutes (default: 15)
	RefreshTokenExpireDays   int // Optional: refresh token TTL in days (default: 7)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./citypass.db)
	CORSAllowedOrigins  []string      // Optional: comma-separated browser origins
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SecretKey:                os.Getenv("SECRET_KEY"),
		Algorithm:                getEnvOrDefault("JWT_ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getEnvIntOrDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 15),
		RefreshTokenExpireDays:   getEnvIntOrDefault("REFRESH_TOKEN_EXPIRE_DAYS", 7),
		DatabaseFile:             getEnvOrDefault("DATABASE_FILE", "citypass.db"),
		CORSAllowedOrigins: splitCommaList(getEnvOrDefault(
			"CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173",
		)),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate fails fast on settings the process cannot run without. The signer
// performs its own algorithm check; this catches everything else before any
// dependency is initialized.
func (c Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if c.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.AccessTokenExpireMinutes)
	}
	if c.RefreshTokenExpireDays <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_EXPIRE_DAYS must be positive, got %d", c.RefreshTokenExpireDays)
	}
	return nil
}

// AccessTTL returns the configured access token lifetime.
func (c Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// RefreshTTL returns the configured refresh token lifetime.
func (c Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpireDays) * 24 * time.Hour
}

// CookieSecure reports whether the refresh cookie should be https-only.
// Only dev runs over plain http.
func (c Config) CookieSecure() bool {
	return c.Env != "dev"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
