package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port      string
	SiteURL   string
	DataDir   string
	PublicDir string

	StripeSecretKey  string
	StripeWebhookKey string

	SMTPHost        string
	SMTPPort        string
	SMTPSecure      bool
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	ContactReceiver string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present.
func LoadConfig() (*Config, error) {
	// Ignore the error: absent .env just means plain env vars.
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		SiteURL:   getEnv("SITE_URL", "http://localhost:3000"),
		DataDir:   getEnv("DATA_DIR", "data"),
		PublicDir: getEnv("PUBLIC_DIR", "public"),

		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookKey: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPSecure:      os.Getenv("SMTP_SECURE") == "true",
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        os.Getenv("SMTP_FROM"),
		ContactReceiver: os.Getenv("CONTACT_RECEIVER"),
	}

	if cfg.StripeSecretKey == "" || cfg.StripeWebhookKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY and STRIPE_WEBHOOK_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
