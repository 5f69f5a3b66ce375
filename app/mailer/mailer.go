package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"
)

// Mailer delivers plain-text mail. The reset-password flow is the only
// caller and must be able to tell delivery failure apart from success.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTP struct {
	Host string
	Port int
	From string
}

func (m *SMTP) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.From, to, subject, body)
	if err := smtp.SendMail(addr, nil, m.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Log is the dev fallback when no SMTP host is configured.
type Log struct{}

func (Log) Send(to, subject, body string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("mail (dev, not sent)")
	return nil
}
