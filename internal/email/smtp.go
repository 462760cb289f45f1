package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Configured reports whether the settings are complete enough to send mail.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.FromEmail != ""
}

// SMTPProvider sends mail over SMTP via gomail.
type SMTPProvider struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) Send(msg *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}
