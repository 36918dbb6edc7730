package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	sqlDB *sql.DB
}

func NewHealthHandler(sqlDB *sql.DB) *HealthHandler {
	return &HealthHandler{sqlDB: sqlDB}
}

// RegisterRoutes регистрирует health-check
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health - liveness + доступность хранилища
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	connected := true

	if h.sqlDB == nil {
		dbStatus = "not configured"
		connected = false
	} else if err := h.sqlDB.Ping(); err != nil {
		dbStatus = "disconnected"
		connected = false
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"database": gin.H{
			"status":    dbStatus,
			"connected": connected,
		},
	})
}

// Index - корневой маршрут с описанием API
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Serveeny API Server",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":    "/api/health",
			"auth":      "/api/auth",
			"providers": "/api/providers",
			"users":     "/api/users",
		},
	})
}
