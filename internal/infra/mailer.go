package infra

import (
	"fmt"
	"net/smtp"

	"onyxshop/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for operator notification emails.
// The mailer is optional: when no SMTP host is configured, Habilitado
// reports false and callers skip the email path.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

func (m *Mailer) Habilitado() bool { return m.host != "" }

// Enviar sends a plain-text notification.
func (m *Mailer) Enviar(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
