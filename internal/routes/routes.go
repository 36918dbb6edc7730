package routes

import (
	"serveeny_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/", appHandlers.HealthHandler.Index)

	api := ginRouter.Group("/api")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProviderHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
	}
}
