package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок бизнес-логики.
Предопределенные переменные неизменяемы: хелперы WithDetails/WithError
возвращают копию.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidStatus - фабрика для невалидных переходов статуса (409)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// --- Auth & Accounts ---

// ErrEmailAlreadyExists - email уже используется.
// Публичный контракт API фиксирует 400 для дубликата, а не 409.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - неверный email или пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
// Просроченный и поддельный токены намеренно не различаются для клиента.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - не-админ пытается выполнить админ-действие
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrWeakPassword - пароль слишком слабый
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// --- Provider lifecycle ---

// ErrProviderPending - аккаунт провайдера еще не одобрен админом.
// Сообщения на французском - их рендерит фронтенд как есть.
var ErrProviderPending = New(
	CodeAccountNotApproved,
	"provider",
	"Votre compte est en attente d'approbation par l'administrateur",
	http.StatusForbidden,
).WithDetails(map[string]string{"status": "pending"})

// ErrProviderRejected - аккаунт провайдера отклонен
var ErrProviderRejected = New(
	CodeAccountNotApproved,
	"provider",
	"Votre compte a été rejeté. Veuillez contacter l'administrateur",
	http.StatusForbidden,
).WithDetails(map[string]string{"status": "rejected"})
