package config

import (
	"os"
	"strings"
)

// Config is read once at startup from the environment (and .env, loaded by main).
type Config struct {
	Port          string
	Development   bool
	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	AllowedOrigins []string

	StripeSecretKey    string
	FeeCurrency        string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	FeeReportSchedule string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		Development:   getEnv("APP_ENV", "development") == "development",
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),

		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		FeeCurrency:        getEnv("FEE_CURRENCY", "usd"),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/registrations/confirmation?session_id={CHECKOUT_SESSION_ID}"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/registrations/failed?session_id={CHECKOUT_SESSION_ID}"),

		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "DMV"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),

		FeeReportSchedule: getEnv("FEE_REPORT_SCHEDULE", "@daily"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
