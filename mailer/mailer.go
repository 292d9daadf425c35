package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

type Config struct {
	// Address is the host:port the SMTP dial goes to; Host is the name used
	// for PLAIN auth.
	Address  string
	Host     string
	From     string
	Password string
}

// Mailer sends transactional HTML mail over SMTP.
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

var resetTemplate = template.Must(template.New("reset").Parse(`
<div style="border: 1px solid black; padding: 20px; font-family: sans-serif; line-height: 2; font-size: 20px;">
  <h2>Hello {{.Name}},</h2>
  <p>You requested a password reset. Click the link below to choose a new password. The link is valid for one hour.</p>
  <p><a href="{{.ResetURL}}">Reset your password</a></p>
  <p>If you did not request this, you can ignore this email.</p>
</div>
`))

// SendPasswordReset emails the reset link to the user.
func (m *Mailer) SendPasswordReset(to, name, resetURL string) error {
	var body bytes.Buffer
	err := resetTemplate.Execute(&body, struct {
		Name     string
		ResetURL string
	}{Name: name, ResetURL: resetURL})
	if err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}
	return m.send(to, "Your password reset link", body.String())
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.cfg.From,
		to,
		subject,
		htmlBody,
	)

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Address, auth, m.cfg.From, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
