package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"serveeny_backend/internal/config"
	"serveeny_backend/internal/middleware"
	"serveeny_backend/internal/models"
	"serveeny_backend/internal/services/dto"
	"serveeny_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Стабы сервисов: поле-функция на каждый метод, незаданный метод
// в тесте не должен вызываться.

type stubAuthService struct {
	registerUser     func(req *dto.RegisterRequest) (*dto.UserAuthResponse, error)
	loginUser        func(req *dto.LoginRequest) (*dto.UserAuthResponse, error)
	registerProvider func(req *dto.ProviderRegisterRequest) (*dto.ProviderAuthResponse, error)
	loginProvider    func(req *dto.LoginRequest) (*dto.ProviderAuthResponse, error)
	loginAdmin       func(req *dto.LoginRequest) (*dto.AdminAuthResponse, error)
}

func (s *stubAuthService) RegisterUser(_ *gorm.DB, req *dto.RegisterRequest) (*dto.UserAuthResponse, error) {
	return s.registerUser(req)
}

func (s *stubAuthService) LoginUser(_ *gorm.DB, req *dto.LoginRequest) (*dto.UserAuthResponse, error) {
	return s.loginUser(req)
}

func (s *stubAuthService) RegisterProvider(_ *gorm.DB, req *dto.ProviderRegisterRequest) (*dto.ProviderAuthResponse, error) {
	return s.registerProvider(req)
}

func (s *stubAuthService) LoginProvider(_ *gorm.DB, req *dto.LoginRequest) (*dto.ProviderAuthResponse, error) {
	return s.loginProvider(req)
}

func (s *stubAuthService) LoginAdmin(_ *gorm.DB, req *dto.LoginRequest) (*dto.AdminAuthResponse, error) {
	return s.loginAdmin(req)
}

type stubProviderService struct {
	list          func(query *dto.ProviderListQuery) ([]models.Provider, error)
	featured      func() ([]models.Provider, error)
	getByID       func(id string) (*models.Provider, error)
	updateProfile func(id string, req *dto.ProviderUpdateRequest) (*models.Provider, error)
	pending       func() ([]models.Provider, error)
	verify        func(id string) (*models.Provider, error)
	reject        func(id string) (*models.Provider, error)
}

func (s *stubProviderService) List(_ *gorm.DB, query *dto.ProviderListQuery) ([]models.Provider, error) {
	return s.list(query)
}

func (s *stubProviderService) Featured(_ *gorm.DB) ([]models.Provider, error) {
	return s.featured()
}

func (s *stubProviderService) GetByID(_ *gorm.DB, id string) (*models.Provider, error) {
	return s.getByID(id)
}

func (s *stubProviderService) UpdateProfile(_ *gorm.DB, id string, req *dto.ProviderUpdateRequest) (*models.Provider, error) {
	return s.updateProfile(id, req)
}

func (s *stubProviderService) Pending(_ *gorm.DB) ([]models.Provider, error) {
	return s.pending()
}

func (s *stubProviderService) Verify(_ *gorm.DB, id string) (*models.Provider, error) {
	return s.verify(id)
}

func (s *stubProviderService) Reject(_ *gorm.DB, id string) (*models.Provider, error) {
	return s.reject(id)
}

type stubUserService struct {
	getProfile     func(id string) (*dto.UserProfileResponse, error)
	updateProfile  func(id string, req *dto.UserUpdateRequest) (*dto.UserProfileResponse, error)
	addFavorite    func(userID, providerID string) ([]string, error)
	removeFavorite func(userID, providerID string) ([]string, error)
}

func (s *stubUserService) GetProfile(_ *gorm.DB, id string) (*dto.UserProfileResponse, error) {
	return s.getProfile(id)
}

func (s *stubUserService) UpdateProfile(_ *gorm.DB, id string, req *dto.UserUpdateRequest) (*dto.UserProfileResponse, error) {
	return s.updateProfile(id, req)
}

func (s *stubUserService) AddFavorite(_ *gorm.DB, userID, providerID string) ([]string, error) {
	return s.addFavorite(userID, providerID)
}

func (s *stubUserService) RemoveFavorite(_ *gorm.DB, userID, providerID string) ([]string, error) {
	return s.removeFavorite(userID, providerID)
}

// newTestRouter собирает gin как в проде, но без реальной БД:
// DBMiddleware кладет nil, стабы сервисов его игнорируют
func newTestRouter(t *testing.T, register func(rg *gin.RouterGroup)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLHours = 720
	config.AppConfig = cfg

	r := gin.New()
	r.Use(middleware.DBMiddleware(nil))

	api := r.Group("/api")
	register(api)
	return r
}

func newTestBase() *BaseHandler {
	return NewBaseHandler(validator.New())
}

func performJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
