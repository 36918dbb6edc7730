package validator

import (
	"log"

	"serveeny_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные правила валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-category': категория из фиксированного списка каталога
	mustRegister("is-category", validateCategory)

	// 'is-provider-status': статус жизненного цикла провайдера
	mustRegister("is-provider-status", validateProviderStatus)
}

func validateCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	return models.IsValidCategory(value)
}

func validateProviderStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProviderStatus(value) {
	case models.ProviderStatusPending, models.ProviderStatusVerified, models.ProviderStatusRejected:
		return true
	default:
		return false
	}
}
