package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// IEmailService delivers staff notification mail. An empty recipient list
// means the channel is disabled.
type IEmailService interface {
	Enabled() bool
	SendNotification(subject, plainBody, htmlBody string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	recipients  []string
}

func NewEmailService(host string, port int, username, password, senderName string, recipients []string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		recipients:  recipients,
	}
}

func (s *emailService) Enabled() bool {
	return s.dialer.Host != "" && len(s.recipients) > 0
}

func (s *emailService) SendNotification(subject, plainBody, htmlBody string) error {
	if !s.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", s.recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send notification mail: %w", err)
	}
	return nil
}
