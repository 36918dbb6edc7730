package email

import (
	"fmt"

	"serveeny_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPConfig - конфигурация SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPNotifier отправляет уведомления через gomail
type SMTPNotifier struct {
	config SMTPConfig
}

func NewSMTPNotifier(config SMTPConfig) (*SMTPNotifier, error) {
	if config.Host == "" || config.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from_email are required")
	}
	if config.Port == 0 {
		config.Port = 587
	}
	return &SMTPNotifier{config: config}, nil
}

func (n *SMTPNotifier) SendStatusChanged(provider *models.Provider) error {
	subject, body := statusMessage(provider)

	m := gomail.NewMessage()
	from := n.config.FromEmail
	if n.config.FromName != "" {
		from = m.FormatAddress(n.config.FromEmail, n.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", provider.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		n.config.Host,
		n.config.Port,
		n.config.Username,
		n.config.Password,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
