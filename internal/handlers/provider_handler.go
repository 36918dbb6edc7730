package handlers

import (
	"net/http"

	"serveeny_backend/internal/auth"
	"serveeny_backend/internal/middleware"
	"serveeny_backend/internal/services"
	"serveeny_backend/internal/services/dto"
	"serveeny_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	*BaseHandler
	providerService services.ProviderService
}

func NewProviderHandler(base *BaseHandler, providerService services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		BaseHandler:     base,
		providerService: providerService,
	}
}

// RegisterRoutes регистрирует маршруты каталога и модерации.
// Порядок важен: /pending и /featured должны идти до /:id.
func (h *ProviderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	providers := rg.Group("/providers")
	{
		// Публичные
		providers.GET("", h.List)
		providers.GET("/featured", h.Featured)

		// Админ-модерация
		adminOnly := providers.Group("")
		adminOnly.Use(middleware.AuthMiddleware(), middleware.RequireRoles(auth.RoleAdmin))
		{
			adminOnly.GET("/pending", h.Pending)
			adminOnly.PUT("/:id/verify", h.Verify)
			adminOnly.PUT("/:id/reject", h.Reject)
		}

		// Самообслуживание провайдера
		providers.PUT("/:id", middleware.AuthMiddleware(), h.Update)

		// Публичный, последним - чтобы не перехватывать /featured и /pending
		providers.GET("/:id", h.GetByID)
	}
}

// List - публичная выдача: только verified, фильтры category и search
func (h *ProviderHandler) List(c *gin.Context) {
	var query dto.ProviderListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	providers, err := h.providerService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, providers)
}

// Featured - топ premium+available по рейтингу, максимум 4
func (h *ProviderHandler) Featured(c *gin.Context) {
	db := h.GetDB(c)

	providers, err := h.providerService.Featured(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) GetByID(c *gin.Context) {
	db := h.GetDB(c)

	provider, err := h.providerService.GetByID(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}

// Update - провайдер редактирует свой профиль.
// Чужой профиль может менять только админ.
func (h *ProviderHandler) Update(c *gin.Context) {
	subjectID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if subjectID != id && middleware.GetRole(c) != auth.RoleAdmin {
		h.HandleServiceError(c, apperrors.ErrInsufficientPermissions)
		return
	}

	var req dto.ProviderUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	provider, err := h.providerService.UpdateProfile(db, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) Pending(c *gin.Context) {
	db := h.GetDB(c)

	providers, err := h.providerService.Pending(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) Verify(c *gin.Context) {
	db := h.GetDB(c)

	provider, err := h.providerService.Verify(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) Reject(c *gin.Context) {
	db := h.GetDB(c)

	provider, err := h.providerService.Reject(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}
