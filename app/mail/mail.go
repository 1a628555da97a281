// Package mail is the outbound email boundary. Handlers talk to the
// Mailer interface only; delivery failures surface as plain errors.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

// Mailer sends a single outbound message.
type Mailer interface {
	Send(subject, body string, to []string) error
}

// SMTPMailer delivers mail through a plain SMTP relay.
type SMTPMailer struct {
	Addr string // host:port
	From string
}

// NewSMTPMailer creates a mailer pointed at the given relay.
func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{Addr: addr, From: from}
}

// Send delivers the message to all recipients in one SMTP session.
func (m *SMTPMailer) Send(subject, body string, to []string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.From, strings.Join(to, ", "), subject, body,
	)
	if err := smtp.SendMail(m.Addr, nil, m.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogMailer writes messages to the log instead of sending them. Used in
// development when no relay is configured.
type LogMailer struct{}

func (LogMailer) Send(subject, body string, to []string) error {
	log.Info().
		Strs("to", to).
		Str("subject", subject).
		Msg("outbound email (log only)")
	log.Debug().Str("body", body).Msg("email body")
	return nil
}
