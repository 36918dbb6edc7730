package services

import (
	"serveeny_backend/internal/auth"
	"serveeny_backend/internal/models"
	"serveeny_backend/internal/repositories"
	"serveeny_backend/internal/services/dto"
	"serveeny_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	RegisterUser(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserAuthResponse, error)
	LoginUser(db *gorm.DB, req *dto.LoginRequest) (*dto.UserAuthResponse, error)
	RegisterProvider(db *gorm.DB, req *dto.ProviderRegisterRequest) (*dto.ProviderAuthResponse, error)
	LoginProvider(db *gorm.DB, req *dto.LoginRequest) (*dto.ProviderAuthResponse, error)
	LoginAdmin(db *gorm.DB, req *dto.LoginRequest) (*dto.AdminAuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	providerRepo repositories.ProviderRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		providerRepo: providerRepo,
	}
}

// RegisterUser - регистрация пользователя
func (s *AuthServiceImpl) RegisterUser(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserAuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         models.UserRoleUser,
		Favorites:    []string{},
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, auth.RoleUser)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserAuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// LoginUser - аутентификация пользователя
func (s *AuthServiceImpl) LoginUser(db *gorm.DB, req *dto.LoginRequest) (*dto.UserAuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserAuthResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Favorites: user.Favorites,
		Token:     token,
	}, nil
}

// RegisterProvider - самостоятельная регистрация провайдера.
// Запись создается в pending; в публичную выдачу провайдер попадет
// только после явного одобрения админом.
func (s *AuthServiceImpl) RegisterProvider(db *gorm.DB, req *dto.ProviderRegisterRequest) (*dto.ProviderAuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	provider := &models.Provider{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		Category:     req.Category,
		Location:     req.Location,
		Description:  req.Description,
		Services:     req.Services,
		Availability: req.Availability,
		PriceRange:   req.PriceRange,
		IsAvailable:  false,
		IsPremium:    false,
		Rating:       0,
		ReviewCount:  0,
		Status:       models.ProviderStatusPending,
	}

	if err := s.providerRepo.Create(db, provider); err != nil {
		if apperrors.Is(err, repositories.ErrProviderAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(provider.ID, auth.RoleProvider)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProviderAuthResponse{
		ID:    provider.ID,
		Name:  provider.Name,
		Email: provider.Email,
		Token: token,
	}, nil
}

// LoginProvider - аутентификация провайдера.
// Корректного пароля недостаточно: pending и rejected получают 403
// со статусом в деталях, токен выдается только verified.
func (s *AuthServiceImpl) LoginProvider(db *gorm.DB, req *dto.LoginRequest) (*dto.ProviderAuthResponse, error) {
	provider, err := s.providerRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, provider.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch provider.Status {
	case models.ProviderStatusPending:
		return nil, apperrors.ErrProviderPending
	case models.ProviderStatusRejected:
		return nil, apperrors.ErrProviderRejected
	}

	token, err := auth.GenerateToken(provider.ID, auth.RoleProvider)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProviderAuthResponse{
		ID:       provider.ID,
		Name:     provider.Name,
		Email:    provider.Email,
		Category: provider.Category,
		Status:   provider.Status,
		Token:    token,
	}, nil
}

// LoginAdmin - аутентификация админа.
// Админы живут в таблице users с role=admin; любой другой аккаунт
// получает те же "Invalid credentials", чтобы не раскрывать роль.
func (s *AuthServiceImpl) LoginAdmin(db *gorm.DB, req *dto.LoginRequest) (*dto.AdminAuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, auth.RoleAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminAuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
		Token: token,
	}, nil
}
