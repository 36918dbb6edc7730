package dto

import (
	"serveeny_backend/internal/models"
)

// RegisterRequest - регистрация пользователя
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest - вход пользователя, провайдера или админа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProviderRegisterRequest - самостоятельная регистрация провайдера.
// Запись всегда создается в статусе pending.
type ProviderRegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Phone        string `json:"phone" binding:"required"`
	Whatsapp     string `json:"whatsapp" binding:"required"`
	Category     string `json:"category" binding:"required" validate:"is-category"`
	Location     string `json:"location" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Services     string `json:"services" binding:"required"`
	Availability string `json:"availability" binding:"required"`
	PriceRange   string `json:"priceRange" binding:"required"`
}

// UserAuthResponse - ответ на регистрацию/логин пользователя
type UserAuthResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites,omitempty"`
	Token     string   `json:"token"`
}

// ProviderAuthResponse - ответ на регистрацию/логин провайдера
type ProviderAuthResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Category string                `json:"category,omitempty"`
	Status   models.ProviderStatus `json:"status,omitempty"`
	Token    string                `json:"token"`
}

// AdminAuthResponse - ответ на логин админа
type AdminAuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}
