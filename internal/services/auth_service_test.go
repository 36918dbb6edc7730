package services

import (
	"testing"

	"serveeny_backend/internal/auth"
	"serveeny_backend/internal/config"
	"serveeny_backend/internal/models"
	"serveeny_backend/internal/services/dto"
	"serveeny_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 720
	config.AppConfig = cfg
}

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeProviderRepo) {
	setTestConfig(t)
	userRepo := newFakeUserRepo()
	providerRepo := newFakeProviderRepo()
	return NewAuthService(userRepo, providerRepo), userRepo, providerRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Favorites:    []string{},
	}
	require.NoError(t, repo.Create(nil, user))
	return user
}

func seedProvider(t *testing.T, repo *fakeProviderRepo, email, password string, status models.ProviderStatus) *models.Provider {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	provider := &models.Provider{
		Name:         "Ahmed Ben Ali",
		Email:        email,
		PasswordHash: hash,
		Phone:        "+216 20 123 456",
		Whatsapp:     "+216 20 123 456",
		Category:     "plumbing",
		Location:     "Tunis",
		Description:  "Plombier professionnel",
		Services:     "Réparation fuites, Installation sanitaire",
		Availability: "Lun-Sam 8h-18h",
		PriceRange:   "30-80 TND",
		Status:       status,
	}
	require.NoError(t, repo.Create(nil, provider))
	return provider
}

func TestRegisterUser_Success(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)

	resp, err := svc.RegisterUser(nil, &dto.RegisterRequest{
		Name:     "Sami",
		Email:    "sami@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "sami@example.com", resp.Email)

	// Токен несет {id, role} зарегистрированного пользователя
	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, auth.RoleUser, claims.Role)

	stored, err := userRepo.FindByID(nil, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, stored.Role)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "taken@example.com", "password123", models.UserRoleUser)

	_, err := svc.RegisterUser(nil, &dto.RegisterRequest{
		Name:     "Second",
		Email:    "taken@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.RegisterUser(nil, &dto.RegisterRequest{
		Name:     "Sami",
		Email:    "sami@example.com",
		Password: "12345",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestLoginUser(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "sami@example.com", "password123", models.UserRoleUser)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.LoginUser(nil, &dto.LoginRequest{
			Email:    "sami@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginUser(nil, &dto.LoginRequest{
			Email:    "sami@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.LoginUser(nil, &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestRegisterProvider_AlwaysPending(t *testing.T) {
	svc, _, providerRepo := newAuthFixture(t)

	resp, err := svc.RegisterProvider(nil, &dto.ProviderRegisterRequest{
		Name:         "Fatma Trabelsi",
		Email:        "fatma@example.com",
		Password:     "password123",
		Phone:        "+216 22 345 678",
		Whatsapp:     "+216 22 345 678",
		Category:     "cleaning",
		Location:     "Sfax",
		Description:  "Service de nettoyage",
		Services:     "Nettoyage maison, Nettoyage bureaux",
		Availability: "Tous les jours",
		PriceRange:   "20-50 TND",
	})
	require.NoError(t, err)

	stored, err := providerRepo.FindByID(nil, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderStatusPending, stored.Status)
	assert.False(t, stored.IsAvailable)
	assert.False(t, stored.IsPremium)
	assert.Nil(t, stored.VerifiedAt)
}

func TestLoginProvider_StatusGate(t *testing.T) {
	svc, _, providerRepo := newAuthFixture(t)
	seedProvider(t, providerRepo, "pending@example.com", "password123", models.ProviderStatusPending)
	seedProvider(t, providerRepo, "rejected@example.com", "password123", models.ProviderStatusRejected)
	verified := seedProvider(t, providerRepo, "verified@example.com", "password123", models.ProviderStatusVerified)

	t.Run("pending gets 403 with status detail", func(t *testing.T) {
		_, err := svc.LoginProvider(nil, &dto.LoginRequest{
			Email:    "pending@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, apperrors.ErrProviderPending)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, 403, appErr.HTTPCode)
		assert.Equal(t, map[string]string{"status": "pending"}, appErr.Details)
	})

	t.Run("rejected gets 403 with status detail", func(t *testing.T) {
		_, err := svc.LoginProvider(nil, &dto.LoginRequest{
			Email:    "rejected@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, apperrors.ErrProviderRejected)

		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, map[string]string{"status": "rejected"}, appErr.Details)
	})

	t.Run("wrong password wins over status", func(t *testing.T) {
		// Пока пароль неверен, статус аккаунта не раскрывается
		_, err := svc.LoginProvider(nil, &dto.LoginRequest{
			Email:    "pending@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("verified gets token", func(t *testing.T) {
		resp, err := svc.LoginProvider(nil, &dto.LoginRequest{
			Email:    "verified@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, verified.ID, resp.ID)
		assert.Equal(t, models.ProviderStatusVerified, resp.Status)

		claims, err := auth.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleProvider, claims.Role)
	})
}

func TestLoginAdmin(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "admin@serveeny.tn", "admin-password", models.UserRoleAdmin)
	seedUser(t, userRepo, "plain@example.com", "password123", models.UserRoleUser)

	t.Run("admin account", func(t *testing.T) {
		resp, err := svc.LoginAdmin(nil, &dto.LoginRequest{
			Email:    "admin@serveeny.tn",
			Password: "admin-password",
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)

		claims, err := auth.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("non-admin account gets same invalid credentials", func(t *testing.T) {
		// Роль аккаунта не раскрывается через админ-логин
		_, err := svc.LoginAdmin(nil, &dto.LoginRequest{
			Email:    "plain@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
