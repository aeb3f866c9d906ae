package main

// @title Travel Admin API
// @version 1.0.0
// @description Management backend for the travel agency site. Covers tours with their nested collections, blog posts, homepage sections (hero, map, featured, opportunity), tour type pages, services, partners, stats, destinations, agency applications and image uploads into hosted object storage.

// @contact.name API Support
// @contact.email support@travel-admin.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/travel-admin/docs"
	"github.com/travel-admin/internal/config"
	httpDelivery "github.com/travel-admin/internal/delivery/http"
	"github.com/travel-admin/internal/delivery/http/handler"
	"github.com/travel-admin/internal/infrastructure/storage"
	"github.com/travel-admin/internal/pkg/logger"
	"github.com/travel-admin/internal/repository/cache"
	"github.com/travel-admin/internal/repository/postgres"
	redisRepo "github.com/travel-admin/internal/repository/redis"
	"github.com/travel-admin/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Travel Admin API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	tourRepo := postgres.NewTourRepository(db, log)
	blogRepo := postgres.NewBlogRepository(db, log)
	settingsRepo := postgres.NewSettingsRepository(db, log)
	tourTypeRepo := postgres.NewTourTypeRepository(db, log)
	contentRepo := postgres.NewContentRepository(db, log)
	regionRepo := postgres.NewRegionImageRepository(db, log)
	agencyRepo := postgres.NewAgencyRepository(db, log)
	sessionRepo := redisRepo.NewSessionRepository(redisClient.Client(), log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	storageRepo := storage.NewStorageClient(&cfg.Storage, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	assetUC := usecase.NewAssetUseCase(storageRepo, streamRepo, log)
	tourUC := usecase.NewTourUseCase(tourRepo, assetUC, log)
	blogUC := usecase.NewBlogUseCase(blogRepo, storageRepo, streamRepo, log)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, assetUC, log)
	tourTypeUC := usecase.NewTourTypeUseCase(tourTypeRepo, assetUC, log)
	contentUC := usecase.NewContentUseCase(contentRepo, assetUC, log)
	destinationUC := usecase.NewDestinationUseCase(tourRepo, regionRepo, log)
	agencyUC := usecase.NewAgencyUseCase(agencyRepo, log)
	authUC := usecase.NewAuthUseCase(sessionRepo, &cfg.Auth, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authUC, log)
	tourHandler := handler.NewTourHandler(tourUC, log)
	blogHandler := handler.NewBlogHandler(blogUC, log)
	settingsHandler := handler.NewSettingsHandler(settingsUC, log)
	tourTypeHandler := handler.NewTourTypeHandler(tourTypeUC, log)
	contentHandler := handler.NewContentHandler(contentUC, log)
	destinationHandler := handler.NewDestinationHandler(destinationUC, log)
	agencyHandler := handler.NewAgencyHandler(agencyUC, log)
	uploadHandler := handler.NewUploadHandler(assetUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		authHandler,
		tourHandler,
		blogHandler,
		settingsHandler,
		tourTypeHandler,
		contentHandler,
		destinationHandler,
		agencyHandler,
		uploadHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
