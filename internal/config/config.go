package config

import (
	"fmt"
	"strings"

	"github.com/Netflix/go-env"
)

type Config struct {
	DatabaseDSN       string `env:"DATABASE_DSN,required=true"`
	RedisURL          string `env:"REDIS_URL,required=true"`
	ResendAPIKey      string `env:"RESEND_API_KEY"`
	SenderEmail       string `env:"RESEND_SENDER_EMAIL,default=onboarding@resend.dev"`
	SenderName        string `env:"SENDER_NAME,default=Optimus Design & Customs"`
	RecipientEmail    string `env:"RECIPIENT_EMAIL,required=true"`
	CORSOrigins       string `env:"CORS_ORIGINS,default=*"`
	FallbackLog       bool   `env:"FALLBACK_LOG_ENABLED,default=true"`
	SubmitRatePerMin  int    `env:"SUBMIT_RATE_LIMIT_PER_MIN,default=30"`
	APIPort           int    `env:"API_PORT,default=8080"`
	LogLevel          string `env:"LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// NotificationsEnabled reports whether an email provider key is configured.
// The service starts without one; notifications are skipped and logged.
func (c *Config) NotificationsEnabled() bool {
	return strings.TrimSpace(c.ResendAPIKey) != ""
}

// Sender returns the From header value, e.g. "Optimus Design & Customs <onboarding@resend.dev>".
func (c *Config) Sender() string {
	name := strings.TrimSpace(c.SenderName)
	if name == "" {
		return c.SenderEmail
	}
	return fmt.Sprintf("%s <%s>", name, c.SenderEmail)
}

// AllowedOrigins splits the comma-separated CORS origin list.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
