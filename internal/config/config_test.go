package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "host=localhost user=test password=test dbname=test port=5432 sslmode=disable")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RECIPIENT_EMAIL", "operator@example.com")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIPort != 8080 {
		t.Errorf("APIPort = %d, want 8080", cfg.APIPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.SubmitRatePerMin != 30 {
		t.Errorf("SubmitRatePerMin = %d, want 30", cfg.SubmitRatePerMin)
	}
	if !cfg.FallbackLog {
		t.Error("FallbackLog should default to true")
	}
	if cfg.SenderEmail != "onboarding@resend.dev" {
		t.Errorf("SenderEmail = %s, want onboarding@resend.dev", cfg.SenderEmail)
	}
	if cfg.CORSOrigins != "*" {
		t.Errorf("CORSOrigins = %s, want *", cfg.CORSOrigins)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUBMIT_RATE_LIMIT_PER_MIN", "5")
	t.Setenv("FALLBACK_LOG_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIPort != 9090 {
		t.Errorf("APIPort = %d, want 9090", cfg.APIPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.SubmitRatePerMin != 5 {
		t.Errorf("SubmitRatePerMin = %d, want 5", cfg.SubmitRatePerMin)
	}
	if cfg.FallbackLog {
		t.Error("FallbackLog should be false")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=localhost")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required env vars, got nil")
	}
}

func TestNotificationsEnabled(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = true without an api key")
	}

	t.Setenv("RESEND_API_KEY", "re_test_key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.NotificationsEnabled() {
		t.Error("NotificationsEnabled() = false with an api key")
	}
}

func TestSender(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Optimus Design & Customs <onboarding@resend.dev>"
	if got := cfg.Sender(); got != want {
		t.Fatalf("Sender() = %q, want %q", got, want)
	}
}

func TestAllowedOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "https://example.com, https://www.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := cfg.AllowedOrigins()
	if len(got) != 2 {
		t.Fatalf("AllowedOrigins() = %v, want 2 entries", got)
	}
	if got[0] != "https://example.com" || got[1] != "https://www.example.com" {
		t.Fatalf("AllowedOrigins() = %v", got)
	}
}
