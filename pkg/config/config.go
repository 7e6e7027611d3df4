package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Shared secret for the cron trigger endpoint.
	CronSecret string

	// Optional in-process schedule (cron expression). Empty disables the
	// internal scheduler; the digest is then triggered externally.
	DigestSchedule string

	// GitHub token is optional; raises the search API rate limit from 60
	// to 5000 requests/hour.
	GitHubToken string

	// OpenAI key is optional; without it summaries fall back to the
	// deterministic template.
	OpenAIAPIKey string

	// Email provider: "resend" or "smtp". The provider is disabled (sends
	// become no-op successes) when its credentials are absent.
	EmailProvider string
	ResendAPIKey  string
	EmailFrom     string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string

	// Public base URL used for unsubscribe links in digest emails.
	AppURL string

	// Pacing between consecutive digest sends.
	EmailSendDelay time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sendDelay := 500 * time.Millisecond
	if d := os.Getenv("EMAIL_SEND_DELAY"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			sendDelay = parsed
		}
	}

	smtpPort := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			smtpPort = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=trendwatch port=5432 sslmode=disable"),
		CronSecret:     getEnv("CRON_SECRET", ""),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", ""),
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		EmailProvider:  getEnv("EMAIL_PROVIDER", "resend"),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "TrendWatch AI <onboarding@resend.dev>"),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       smtpPort,
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		AppURL:         getEnv("APP_URL", "http://localhost:8080"),
		EmailSendDelay: sendDelay,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
