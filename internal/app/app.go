package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mentorhub_backend/internal/auth"
	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/handlers"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/routes"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/validator"
)

// Run boots the whole service: config, logger, database, DI wiring and
// finally the HTTP listener. It only returns on fatal startup errors.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Availability{},
	); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full gin engine. Integration tests call it
// directly against a test database instead of binding a listener.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTTLHours)*time.Hour,
		time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour,
	)

	serviceContainer := initializeServices(cfg, gormDB, tokens)
	appHandlers := handlers.NewAppHandlers(cfg, serviceContainer, validator.New())

	router := initializeGinRouter(cfg)
	routes.Register(router, appHandlers, tokens)
	return router
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tokens *auth.TokenManager) *services.ServiceContainer {
	var emailProvider email.Provider = email.NoopProvider{}
	smtpCfg := email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}
	if smtpCfg.Configured() {
		emailProvider = email.NewSMTPProvider(smtpCfg)
		logger.Info("SMTP email provider enabled", "host", smtpCfg.Host)
	} else {
		logger.Warn("SMTP not configured, welcome emails disabled")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	availabilityRepo := repositories.NewAvailabilityRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, tokens, emailProvider),
		ProfileService:      services.NewProfileService(profileRepo, userRepo),
		AvailabilityService: services.NewAvailabilityService(availabilityRepo),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.HTTP.CORSOrigin))
	router.Use(middleware.BodyLimitMiddleware(cfg.HTTP.MaxBodyBytes))
	return router
}
