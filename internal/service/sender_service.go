package service

import (
	"bytes"
	"dmv/internal/db"
	"dmv/internal/entities"
	"dmv/internal/logging"
	"fmt"
	"html/template"
	"sync"
	"time"
)

// License events a registrant is notified about.
const (
	EventLicenseIssued  = "issued"
	EventLicenseRenewed = "renewed"
)

var licenseEmailTemplate = template.Must(template.New("license_email").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Hello {{.RegistrantName}},</p>
<p>Your driver's license was {{.Event}} at {{.FacilityName}} on {{.DateFormatted}}.</p>
<p>Thank you for visiting the DMV.</p>
<p>&copy; {{.CurrentYear}} DMV. All rights reserved.</p>
</body>
</html>`))

// SenderService tells registrants about license events by email and SMS. Email goes out
// asynchronously; Wait blocks until pending emails finish.
type SenderService struct {
	email EmailSender
	sms   SMSSender
	clock func() time.Time
	wg    sync.WaitGroup
}

func NewSenderService(email EmailSender, sms SMSSender) *SenderService {
	return &SenderService{email: email, sms: sms, clock: time.Now}
}

// NotifyLicenseEvent sends whatever channels the registrant has contact details for.
func (s *SenderService) NotifyLicenseEvent(r *db.Registrant, facilityName, event string) {
	if r.Email != "" && s.email != nil {
		s.SendLicenseEmail(r, facilityName, event)
	}
	if r.Phone != "" && s.sms != nil {
		s.SendLicenseSMS(r, facilityName, event)
	}
}

func (s *SenderService) SendLicenseEmail(r *db.Registrant, facilityName, event string) {
	now := s.clock()
	emailData := entities.LicenseEmailData{
		RegistrantName: r.Name,
		FacilityName:   facilityName,
		Event:          event,
		DateFormatted:  now.Format("02 Jan 2006"),
		CurrentYear:    now.Year(),
	}

	subject := fmt.Sprintf("Your driver's license was %s", event)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour driver's license was %s at %s on %s.\n\nThank you for visiting the DMV.",
		emailData.RegistrantName, event, facilityName, emailData.DateFormatted,
	)

	var htmlBody bytes.Buffer
	if err := licenseEmailTemplate.Execute(&htmlBody, emailData); err != nil {
		logging.Error().Err(err).Str("registrant", r.Name).Msg("rendering license email")
		return
	}

	s.wg.Add(1)
	go func(toEmail, toName, subject, plainBody, htmlContent string) {
		defer s.wg.Done()
		if err := s.email.SendEmail(toEmail, toName, subject, plainBody, htmlContent); err != nil {
			logging.Warn().Err(err).Str("registrant", toName).Msg("license email failed")
		}
	}(r.Email, r.Name, subject, plainTextBody, htmlBody.String())
}

func (s *SenderService) SendLicenseSMS(r *db.Registrant, facilityName, event string) {
	message := fmt.Sprintf("DMV: %s, your driver's license was %s at %s on %s.",
		r.Name, event, facilityName, s.clock().Format("01/02/2006"))
	if err := s.sms.SendSMS(r.Phone, message); err != nil {
		logging.Warn().Err(err).Str("registrant", r.Name).Msg("license SMS failed")
	}
}

func (s *SenderService) Wait() {
	s.wg.Wait()
}
