package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"forum-admin/internal/config"
)

// SendEmail delivers one HTML mail through the configured SMTP relay.
func SendEmail(cfg config.SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// ModeratorWelcomeHTML is the body mailed to a freshly created moderator.
func ModeratorWelcomeHTML(name string) string {
	return fmt.Sprintf(`<p>Hi %s,</p><p>A moderator account has been created for you on the forum. You can sign in with the email this message was sent to.</p>`, name)
}
