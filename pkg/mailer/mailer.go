// Package mailer sends inquiry notification emails over SMTP.
package mailer

import (
	"fmt"
	"html"

	"zenithmed/internal/models"

	gomail "gopkg.in/gomail.v2"
)

// Config holds SMTP connection details and the inbox inquiries are
// delivered to.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// Mailer sends inquiry emails. The From header is the authenticated SMTP
// user; the customer's address goes in Reply-To so the recipient can answer
// directly.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New creates a Mailer from SMTP configuration.
func New(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.Username,
		to:     cfg.To,
	}
}

// SendInquiry delivers one inquiry email.
func (m *Mailer) SendInquiry(inquiry *models.Inquiry) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", inquiry.Email)
	msg.SetHeader("Subject", fmt.Sprintf("New Inquiry for %s", inquiry.ProductName))
	msg.SetBody("text/html", inquiryBody(inquiry))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send inquiry email: %w", err)
	}
	return nil
}

func inquiryBody(inquiry *models.Inquiry) string {
	return fmt.Sprintf(`<h3>Inquiry Details</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Product:</strong> %s</p>
<p><strong>Message:</strong> %s</p>`,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Phone),
		html.EscapeString(inquiry.ProductName),
		html.EscapeString(inquiry.Message))
}
