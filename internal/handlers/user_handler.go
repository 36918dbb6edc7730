package handlers

import (
	"net/http"

	"serveeny_backend/internal/middleware"
	"serveeny_backend/internal/services"
	"serveeny_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes регистрирует маршруты профиля и избранного
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("/favorites", h.AddFavorite)
		users.DELETE("/favorites", h.RemoveFavorite)
		users.GET("/:id", h.GetProfile)
		users.PUT("/:id", h.UpdateProfile)
	}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	db := h.GetDB(c)

	profile, err := h.userService.GetProfile(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UserUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.UpdateProfile(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddFavorite - идемпотентное добавление в избранное.
// Ответ - актуальный список избранного.
func (h *UserHandler) AddFavorite(c *gin.Context) {
	var req dto.FavoriteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	favorites, err := h.userService.AddFavorite(db, req.UserID, req.ProviderID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// RemoveFavorite - идемпотентное удаление, отсутствующий id - no-op
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	var req dto.FavoriteRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	favorites, err := h.userService.RemoveFavorite(db, req.UserID, req.ProviderID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}
