package main

// @title NYC Cat Tracker API
// @version 1.0.0
// @description Records and retrieves geotagged cat sighting reports: a
// @description location, optional metadata (name, description, photo), a source
// @description tag and timestamps. Serves the web client with create/list/get
// @description endpoints, an image upload endpoint and date-range reports.

// @host localhost:5000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cat-tracker/docs"
	"github.com/cat-tracker/internal/config"
	httpDelivery "github.com/cat-tracker/internal/delivery/http"
	"github.com/cat-tracker/internal/delivery/http/handler"
	"github.com/cat-tracker/internal/domain/repository"
	"github.com/cat-tracker/internal/pkg/logger"
	"github.com/cat-tracker/internal/repository/cache"
	"github.com/cat-tracker/internal/repository/postgres"
	"github.com/cat-tracker/internal/usecase"
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

	log.Info("Starting Cat Tracker API")
	log.Info("Configuration loaded",
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("upload_dir", cfg.Upload.Dir),
	)

	// 3. Connect to PostgreSQL; the pool is built once here and injected
	// into the repository, never read as a global.
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Apply migrations
	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(migrateCtx); err != nil {
		cancel()
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	cancel()

	// 5. Connect to Redis when configured; the API runs fine without it.
	var cacheRepo repository.CacheRepository
	if cfg.HasRedis() {
		redisClient, err := cache.NewRedis(cfg, log)
		if err != nil {
			log.Warn("Redis unavailable, summary caching disabled", zap.Error(err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}()
			cacheRepo = cache.NewCacheRepository(redisClient)
		}
	}

	// 6. Initialize repositories
	sightingRepo := postgres.NewSightingRepository(db, log)

	// 7. Initialize use cases
	sightingUC := usecase.NewSightingUseCase(sightingRepo, log)
	reportUC := usecase.NewReportUseCase(sightingRepo, cacheRepo, log, cfg.Cache.SummaryTTL)
	uploadUC, err := usecase.NewUploadUseCase(cfg.Upload.Dir, log)
	if err != nil {
		log.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// 8. Initialize HTTP handlers
	sightingHandler := handler.NewSightingHandler(sightingUC, log)
	reportHandler := handler.NewReportHandler(reportUC, log)
	uploadHandler := handler.NewUploadHandler(uploadUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		sightingHandler,
		reportHandler,
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
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
