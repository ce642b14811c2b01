package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cat-tracker/internal/config"
	"github.com/cat-tracker/internal/delivery/http/handler"
	"github.com/cat-tracker/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server for the cat tracker API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	sightingHandler *handler.SightingHandler
	reportHandler   *handler.ReportHandler
	uploadHandler   *handler.UploadHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sightingHandler *handler.SightingHandler,
	reportHandler *handler.ReportHandler,
	uploadHandler *handler.UploadHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "NYC Cat Tracker API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    16 * 1024 * 1024, // upper bound for image uploads
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		sightingHandler: sightingHandler,
		reportHandler:   reportHandler,
		uploadHandler:   uploadHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Uploaded images
	s.app.Static("/uploads", s.config.Upload.Dir)

	// Liveness/info
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "NYC Cat Tracker API",
			"version": "1.0.0",
		})
	})

	api := s.app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Sightings
	api.Get("/cats", s.sightingHandler.List)
	api.Post("/cats", s.sightingHandler.Create)
	api.Get("/cats/:id", s.sightingHandler.GetByID)

	// Uploads
	api.Post("/upload", s.uploadHandler.Upload)

	// Reports
	api.Get("/reports/summary", s.reportHandler.Summary)
	api.Get("/reports/export", s.reportHandler.Export)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
