package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "JWT_SECRET", "ALLOWED_ORIGINS", "FEE_CURRENCY", "FEE_REPORT_SCHEDULE", "STRIPE_SECRET_KEY"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Development)
	assert.Equal(t, "dev-secret-change-me", cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "usd", cfg.FeeCurrency)
	assert.Equal(t, "@daily", cfg.FeeReportSchedule)
	assert.Empty(t, cfg.StripeSecretKey)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://dmv.example, https://admin.dmv.example,")
	t.Setenv("FEE_REPORT_SCHEDULE", "0 18 * * *")
	t.Setenv("TWILIO_FROM_NUMBER", "+17205550100")

	cfg := FromEnv()
	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.Development)
	assert.Equal(t, []string{"https://dmv.example", "https://admin.dmv.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "0 18 * * *", cfg.FeeReportSchedule)
	assert.Equal(t, "+17205550100", cfg.TwilioFromNumber)
}
