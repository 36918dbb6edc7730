package models

type ProviderStatus string
type UserRole string

const (
	// Жизненный цикл провайдера: pending -> verified | rejected.
	// Оба конечных статуса терминальны для админ-переходов,
	// обратного пути в pending нет.
	ProviderStatusPending  ProviderStatus = "pending"
	ProviderStatusVerified ProviderStatus = "verified"
	ProviderStatusRejected ProviderStatus = "rejected"

	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)
