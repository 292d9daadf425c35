package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment. It is
// loaded once in main and handed to each component at construction, so
// nothing else in the codebase touches os.Getenv.
type Config struct {
	Port        string
	DatabaseDSN string

	// AppSecret signs session tokens.
	AppSecret string

	// FrontendURL is the allowed CORS origin and the base for links in
	// outbound emails.
	FrontendURL string

	StripeSecretKey string

	SMTPAddress       string
	SMTPHost          string
	FromEmail         string
	FromEmailPassword string
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine in production; variables come from the host.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		AppSecret:         os.Getenv("APP_SECRET"),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:7777"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		SMTPAddress:       os.Getenv("SMTP_ADDRESS"),
		SMTPHost:          os.Getenv("FROM_EMAIL_SMTP"),
		FromEmail:         os.Getenv("FROM_EMAIL"),
		FromEmailPassword: os.Getenv("FROM_EMAIL_PASSWORD"),
	}

	if cfg.AppSecret == "" {
		return nil, fmt.Errorf("APP_SECRET is not set")
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
