package service

import (
	"dmv/internal/config"
	"dmv/internal/logging"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrChannelDisabled is returned when a notification channel has no credentials configured.
var ErrChannelDisabled = errors.New("notification channel not configured")

type EmailSender interface {
	SendEmail(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error
}

type SMSSender interface {
	SendSMS(toNumber, messageBody string) error
}

type SendGridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridMailer(cfg config.Config) *SendGridMailer {
	return &SendGridMailer{
		apiKey:    cfg.SendGridAPIKey,
		fromEmail: cfg.SendGridFromEmail,
		fromName:  cfg.SendGridFromName,
	}
}

func (m *SendGridMailer) SendEmail(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	if m.apiKey == "" || m.fromEmail == "" {
		logging.Warn().Msg("SENDGRID_API_KEY or SENDGRID_FROM_EMAIL not set, email not sent")
		return fmt.Errorf("sendgrid: %w", ErrChannelDisabled)
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s: %w", toEmailAddress, err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		logging.Info().Str("to", toEmailAddress).Str("subject", subject).Int("status", response.StatusCode).Msg("email sent")
		return nil
	}
	return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
}

type TwilioSMS struct {
	accountSid string
	authToken  string
	fromNumber string
}

func NewTwilioSMS(cfg config.Config) *TwilioSMS {
	return &TwilioSMS{
		accountSid: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		fromNumber: cfg.TwilioFromNumber,
	}
}

func (s *TwilioSMS) SendSMS(toNumber, messageBody string) error {
	if s.accountSid == "" || s.authToken == "" || s.fromNumber == "" {
		logging.Warn().Msg("Twilio credentials not fully configured, SMS not sent")
		return fmt.Errorf("twilio: %w", ErrChannelDisabled)
	}

	if !strings.HasPrefix(toNumber, "+") {
		logging.Warn().Str("to", toNumber).Msg("destination number is not E.164, SMS may fail")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   s.accountSid,
		Password:   s.authToken,
		AccountSid: s.accountSid,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.fromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s: %w", toNumber, err)
	}

	if resp != nil && resp.Sid != nil {
		logging.Info().Str("to", toNumber).Str("sid", *resp.Sid).Msg("SMS sent")
	}
	return nil
}
