package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/devshowcase/api/configs"
	"github.com/devshowcase/api/internal/application/services"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/devshowcase/api/internal/infrastructure/db"
	"github.com/devshowcase/api/internal/infrastructure/email"
	"github.com/devshowcase/api/internal/infrastructure/health"
	"github.com/devshowcase/api/internal/infrastructure/httpserver"
	"github.com/devshowcase/api/internal/infrastructure/redis"
	"github.com/devshowcase/api/internal/infrastructure/repositories"
	"github.com/devshowcase/api/internal/infrastructure/token"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting DevShowcase API...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabaseWithConfig(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Initialize Redis client
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	logger.Info("Connected to Redis successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Initialize generic Redis cache for read-heavy entities
	redisCache := redis.NewRedisCache(redisClient, "appcache")

	// Initialize db repository implementations
	baseUserRepo := repositories.NewUserRepository(database, logger)
	baseProjectRepo := repositories.NewProjectRepository(database, logger)

	// Decorate with caching (choose TTLs)
	userRepo := repositories.NewCachingUserRepository(baseUserRepo, redisCache, 3*time.Minute)
	projectRepo := repositories.NewCachingProjectRepository(baseProjectRepo, redisCache, 5*time.Minute)

	// Initialize email service
	emailConfig := &email.EmailConfig{
		SendGridAPIKey: cfg.Email.SendGridAPIKey,
		FromEmail:      cfg.Email.FromEmail,
		FromName:       cfg.Email.FromName,
		CompanyName:    cfg.Email.CompanyName,
	}
	emailService, err := email.NewEmailService(emailConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email service:", err)
	}

	// Wire all services with their dependencies
	signer := token.NewJWTSigner(&cfg.JWT)
	codes := services.NewCodeGenerator()

	authService := services.NewAuthService(userRepo, emailService, signer, codes, &cfg.Auth, logger)
	userService := services.NewUserService(userRepo, projectRepo, logger)
	projectService := services.NewProjectService(projectRepo, logger)
	adminService := services.NewAdminService(userRepo, projectRepo, logger)

	hcSlice := []ports.HealthChecker{health.NewDBHealthChecker(database), health.NewRedisHealthChecker(redisClient)}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	// Initialize HTTP server using ServerDeps for clearer wiring
	deps := httpserver.ServerDeps{
		AuthService:    authService,
		UserService:    userService,
		ProjectService: projectService,
		AdminService:   adminService,
		TokenSigner:    signer,
		HealthCheckers: hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
