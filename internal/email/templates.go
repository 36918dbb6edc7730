package email

import (
	"fmt"

	"serveeny_backend/internal/models"
)

// statusMessage возвращает тему и тело письма по статусу провайдера.
// Тексты на французском - язык интерфейса сервиса.
func statusMessage(provider *models.Provider) (subject, body string) {
	switch provider.Status {
	case models.ProviderStatusVerified:
		subject = "Votre compte Serveeny a été approuvé"
		body = fmt.Sprintf(
			"Bonjour %s,\n\n"+
				"Votre compte prestataire a été approuvé par l'administrateur. "+
				"Vous pouvez maintenant vous connecter et apparaître dans le catalogue.\n\n"+
				"L'équipe Serveeny",
			provider.Name,
		)
	case models.ProviderStatusRejected:
		subject = "Votre compte Serveeny a été rejeté"
		body = fmt.Sprintf(
			"Bonjour %s,\n\n"+
				"Votre compte prestataire a été rejeté. "+
				"Veuillez contacter l'administrateur pour plus d'informations.\n\n"+
				"L'équipe Serveeny",
			provider.Name,
		)
	default:
		subject = "Votre compte Serveeny"
		body = fmt.Sprintf("Bonjour %s,\n\nLe statut de votre compte a changé: %s.\n", provider.Name, provider.Status)
	}
	return subject, body
}
