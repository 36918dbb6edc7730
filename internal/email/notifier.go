package email

import (
	"serveeny_backend/internal/logger"
	"serveeny_backend/internal/models"
)

// Notifier шлет провайдеру уведомление о смене статуса аккаунта
type Notifier interface {
	SendStatusChanged(provider *models.Provider) error
}

// LogNotifier - заглушка, когда SMTP не сконфигурирован.
// Письмо только логируется.
type LogNotifier struct{}

func NewLogNotifier() Notifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendStatusChanged(provider *models.Provider) error {
	subject, _ := statusMessage(provider)
	logger.Info("email notification skipped (SMTP not configured)",
		"to", provider.Email,
		"subject", subject,
		"status", provider.Status,
	)
	return nil
}
