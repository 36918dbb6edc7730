package dto

// UserProfileResponse - публичное представление профиля
type UserProfileResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Favorites []string `json:"favorites"`
}

// UserUpdateRequest - изменяемые поля профиля
type UserUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}

// FavoriteRequest - добавление/удаление избранного
type FavoriteRequest struct {
	UserID     string `json:"userId" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
}
