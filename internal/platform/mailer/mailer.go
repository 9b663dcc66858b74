// Package mailer sends HTML mail over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer wraps a gomail dialer with a fixed sender address.
type Mailer struct {
	dialer      *gomail.Dialer
	fromAddress string
	fromName    string
}

// NewMailer builds a mailer for the given SMTP endpoint.
func NewMailer(host string, port int, username, password, fromAddress, fromName string) *Mailer {
	return &Mailer{
		dialer:      gomail.NewDialer(host, port, username, password),
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

// Send delivers one HTML message. Each call dials a fresh SMTP session, which
// is fine at receipt volume.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.fromAddress, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
