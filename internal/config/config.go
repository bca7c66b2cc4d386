package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string

	// Payments
	PaymentsWebhookToken string

	// Mailer (outbound replies from the email hub)
	MailerAPIBaseURL string
	MailerAPIKey     string
	MailerFrom       string

	// Reconciler
	ReconcilerSchedule string
	ReconcilerRepair   bool

	// Server
	Port           string
	Environment    string
	BaseURL        string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "broll-footage"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		PaymentsWebhookToken: getEnv("PAYMENTS_WEBHOOK_TOKEN", ""),

		MailerAPIBaseURL: getEnv("MAILER_API_BASE_URL", "https://api.resend.com/"),
		MailerAPIKey:     getEnv("MAILER_API_KEY", ""),
		MailerFrom:       getEnv("MAILER_FROM", ""),

		ReconcilerSchedule: getEnv("RECONCILER_SCHEDULE", "0 * * * *"),
		ReconcilerRepair:   getEnv("RECONCILER_REPAIR", "false") == "true",

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabasePublishableKey == "" {
		return fmt.Errorf("SUPABASE_PUBLISHABLE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
