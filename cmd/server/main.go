package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bardabar-be-svc/docs"
	"bardabar-be-svc/internal/config"
	"bardabar-be-svc/internal/database"
	"bardabar-be-svc/internal/handler"
	"bardabar-be-svc/internal/middleware"
	"bardabar-be-svc/internal/repository"
	"bardabar-be-svc/internal/seed"
	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/internal/upload"
	"bardabar-be-svc/pkg/logger"
)

// @title Bar-da-bar Backend API
// @version 1.0
// @description REST API for the Bar-da-bar venue website and admin panel

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Bar-da-bar backend...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Load development seed data when requested
	if cfg.Seed.Enabled {
		if err := seed.Run(db.DB, appLogger); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to load seed data")
		}
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db.DB)
	eventRepo := repository.NewEventRepository(db.DB)
	newsRepo := repository.NewNewsRepository(db.DB)
	staffRepo := repository.NewStaffRepository(db.DB)
	contactRepo := repository.NewContactRepository(db.DB)
	aboutRepo := repository.NewAboutRepository(db.DB)
	adminRepo := repository.NewAdminRepository(db.DB)

	// Initialize image uploader
	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to create uploads directory")
	}
	uploader := upload.NewUploader(cfg.Upload.Dir)

	// Initialize services
	menuService := service.NewMenuService(menuRepo, uploader, appLogger)
	eventService := service.NewEventService(eventRepo, uploader, appLogger)
	newsService := service.NewNewsService(newsRepo, uploader, appLogger)
	staffService := service.NewStaffService(staffRepo, uploader, appLogger)
	contactService := service.NewContactService(contactRepo, appLogger)
	aboutService := service.NewAboutService(aboutRepo, appLogger)
	adminService := service.NewAdminService(adminRepo, cfg.JWT, appLogger)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RequestLogger(appLogger))
	router.NoRoute(middleware.NoRouteHandler())

	// Serve uploaded images
	router.Static("/uploads", cfg.Upload.Dir)

	// Setup routes
	handler.SetupRoutes(router, menuService, eventService, newsService, staffService,
		contactService, aboutService, adminService, cfg.JWT.Secret, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
