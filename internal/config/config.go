package config

import (
	"fmt"
	"os"
)

// Config holds application configuration values.
type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	JWTSecret     string
	CORSOrigin    string
	AdminEmail    string
	AdminPassword string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from environment variables with development
// defaults. DATABASE_URL wins over the DB_* parts.
func Load() Config {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_NAME", "chemiflex"),
			getenv("DB_PORT", "5432"),
		)
	}

	return Config{
		Env:           getenv("APP_ENV", "development"),
		Port:          getenv("PORT", "4000"),
		DatabaseURL:   dsn,
		JWTSecret:     getenv("JWT_SECRET", "change-me-in-prod"),
		CORSOrigin:    getenv("CORS_ORIGIN", "*"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}
