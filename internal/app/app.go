package app

import (
	"database/sql"
	"errors"
	"fmt"

	"serveeny_backend/internal/auth"
	"serveeny_backend/internal/config"
	"serveeny_backend/internal/database"
	"serveeny_backend/internal/email"
	"serveeny_backend/internal/handlers"
	"serveeny_backend/internal/logger"
	"serveeny_backend/internal/middleware"
	"serveeny_backend/internal/models"
	"serveeny_backend/internal/repositories"
	"serveeny_backend/internal/routes"
	"serveeny_backend/internal/services"
	"serveeny_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа сервис бесполезен - модерация невозможна
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, sqlDB)
	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var notifier email.Notifier
	if cfg.Email.SMTPHost != "" {
		smtpNotifier, err := email.NewSMTPNotifier(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Warn("SMTP misconfigured, falling back to log notifier", "error", err)
			notifier = email.NewLogNotifier()
		} else {
			notifier = smtpNotifier
			logger.Info("SMTP notifier initialized", "host", cfg.Email.SMTPHost)
		}
	} else {
		logger.Warn("SMTP not configured, status notifications will only be logged")
		notifier = email.NewLogNotifier()
	}

	userRepo := repositories.NewUserRepository()
	providerRepo := repositories.NewProviderRepository()

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, providerRepo),
		UserService:     services.NewUserService(userRepo),
		ProviderService: services.NewProviderService(providerRepo, notifier),
	}
}

func initializeHandlers(services *services.ServiceContainer, sqlDB *sql.DB) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:     handlers.NewUserHandler(baseHandler, services.UserService),
		ProviderHandler: handlers.NewProviderHandler(baseHandler, services.ProviderService),
		HealthHandler:   handlers.NewHealthHandler(sqlDB),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin создает первого админа из переменных окружения.
// Без заданных кредов - скип, сервер стартует без админа.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Name:         "Serveeny Administration",
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		Favorites:    []string{},
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("✅ Successfully created first admin user", "email", adminEmail)
	return nil
}
