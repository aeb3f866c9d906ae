package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/config"
	"github.com/travel-admin/internal/delivery/http/handler"
	"github.com/travel-admin/internal/delivery/http/middleware"
	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/usecase"
)

// Server wires the Fiber app, middleware and route table.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUC *usecase.AuthUseCase

	// Handlers
	authHandler        *handler.AuthHandler
	tourHandler        *handler.TourHandler
	blogHandler        *handler.BlogHandler
	settingsHandler    *handler.SettingsHandler
	tourTypeHandler    *handler.TourTypeHandler
	contentHandler     *handler.ContentHandler
	destinationHandler *handler.DestinationHandler
	agencyHandler      *handler.AgencyHandler
	uploadHandler      *handler.UploadHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	authHandler *handler.AuthHandler,
	tourHandler *handler.TourHandler,
	blogHandler *handler.BlogHandler,
	settingsHandler *handler.SettingsHandler,
	tourTypeHandler *handler.TourTypeHandler,
	contentHandler *handler.ContentHandler,
	destinationHandler *handler.DestinationHandler,
	agencyHandler *handler.AgencyHandler,
	uploadHandler *handler.UploadHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Travel Admin API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    12 * 1024 * 1024,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		authUC:             authUC,
		authHandler:        authHandler,
		tourHandler:        tourHandler,
		blogHandler:        blogHandler,
		settingsHandler:    settingsHandler,
		tourTypeHandler:    tourTypeHandler,
		contentHandler:     contentHandler,
		destinationHandler: destinationHandler,
		agencyHandler:      agencyHandler,
		uploadHandler:      uploadHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Login is the only public endpoint
	api.Post("/auth/login", s.authHandler.Login)

	admin := api.Group("", middleware.RequireAuth(s.authUC))

	admin.Post("/auth/logout", s.authHandler.Logout)

	// Tours
	admin.Get("/tours", s.tourHandler.List)
	admin.Post("/tours", s.tourHandler.Create)
	admin.Get("/tours/opportunities", s.tourHandler.ListOpportunities)
	admin.Get("/tours/:id", s.tourHandler.Get)
	admin.Put("/tours/:id", s.tourHandler.Update)
	admin.Delete("/tours/:id", s.tourHandler.Delete)
	admin.Put("/tours/:id/popular", s.tourHandler.SetPopular)
	admin.Put("/tours/:id/opportunity", s.tourHandler.SetOpportunity)
	admin.Put("/tours/:id/destination", s.tourHandler.SetDestinationStatus)

	// Blog
	admin.Get("/blog/posts", s.blogHandler.List)
	admin.Post("/blog/posts", s.blogHandler.Create)
	admin.Get("/blog/posts/:id", s.blogHandler.Get)
	admin.Put("/blog/posts/:id", s.blogHandler.Update)
	admin.Delete("/blog/posts/:id", s.blogHandler.Delete)

	// Site settings
	admin.Get("/settings/hero", s.settingsHandler.GetHero)
	admin.Put("/settings/hero", s.settingsHandler.SaveHero)
	admin.Get("/settings/logo", s.settingsHandler.GetLogo)
	admin.Put("/settings/logo", s.settingsHandler.SaveLogo)
	admin.Get("/settings/map", s.settingsHandler.GetMap)
	admin.Put("/settings/map", s.settingsHandler.SaveMap)
	admin.Get("/settings/map/locations", s.settingsHandler.ListMapLocations)
	admin.Post("/settings/map/locations", s.settingsHandler.CreateMapLocation)
	admin.Put("/settings/map/locations/:id", s.settingsHandler.UpdateMapLocation)
	admin.Delete("/settings/map/locations/:id", s.settingsHandler.DeleteMapLocation)
	admin.Get("/settings/featured", s.settingsHandler.GetFeatured)
	admin.Put("/settings/featured", s.settingsHandler.SaveFeatured)
	admin.Get("/settings/opportunity", s.settingsHandler.GetOpportunity)
	admin.Put("/settings/opportunity", s.settingsHandler.SaveOpportunity)

	// Tour types
	admin.Get("/tour-types", s.tourTypeHandler.List)
	admin.Post("/tour-types", s.tourTypeHandler.Create)
	admin.Get("/tour-types/:id", s.tourTypeHandler.Get)
	admin.Put("/tour-types/:id", s.tourTypeHandler.Update)
	admin.Delete("/tour-types/:id", s.tourTypeHandler.Delete)

	// Homepage content blocks
	admin.Get("/services", s.contentHandler.ListServices)
	admin.Post("/services", s.contentHandler.CreateService)
	admin.Put("/services/:id", s.contentHandler.UpdateService)
	admin.Delete("/services/:id", s.contentHandler.DeleteService)
	admin.Put("/services/:id/toggle", s.contentHandler.ToggleService)

	admin.Get("/partners", s.contentHandler.ListPartners)
	admin.Post("/partners", s.contentHandler.CreatePartner)
	admin.Put("/partners/:id", s.contentHandler.UpdatePartner)
	admin.Delete("/partners/:id", s.contentHandler.DeletePartner)
	admin.Put("/partners/:id/toggle", s.contentHandler.TogglePartner)

	admin.Get("/stats", s.contentHandler.ListStats)
	admin.Post("/stats", s.contentHandler.CreateStat)
	admin.Put("/stats/:id", s.contentHandler.UpdateStat)
	admin.Delete("/stats/:id", s.contentHandler.DeleteStat)
	admin.Put("/stats/:id/toggle", s.contentHandler.ToggleStat)

	// Destinations
	admin.Get("/destinations", s.destinationHandler.List)
	admin.Put("/destinations/region-image", s.destinationHandler.SetRegionImage)

	// Agencies and member profiles
	admin.Get("/agencies", s.agencyHandler.ListAgencies)
	admin.Post("/agencies", s.agencyHandler.CreateAgency)
	admin.Put("/agencies/:id", s.agencyHandler.UpdateAgency)
	admin.Delete("/agencies/:id", s.agencyHandler.DeleteAgency)

	admin.Get("/profiles", s.agencyHandler.ListProfiles)
	admin.Post("/profiles", s.agencyHandler.CreateProfile)
	admin.Delete("/profiles/:id", s.agencyHandler.DeleteProfile)

	// Uploads
	admin.Post("/uploads/:category", s.uploadHandler.Upload)
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
		if appErr, ok := err.(*errors.AppError); ok {
			return c.Status(appErr.StatusCode).JSON(fiber.Map{
				"error": appErr,
			})
		}

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
