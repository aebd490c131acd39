package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/tour-planning-service/internal/config"
	"github.com/tour-planning-service/internal/delivery/http/handler"
	"github.com/tour-planning-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server with all circuit planning routes.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	circuitHandler *handler.CircuitHandler
	stopHandler    *handler.StopHandler
	routeHandler   *handler.RouteHandler
	aiHandler      *handler.AiHandler
	sessionHandler *handler.SessionHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	circuitHandler *handler.CircuitHandler,
	stopHandler *handler.StopHandler,
	routeHandler *handler.RouteHandler,
	aiHandler *handler.AiHandler,
	sessionHandler *handler.SessionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tour Planning Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		circuitHandler: circuitHandler,
		stopHandler:    stopHandler,
		routeHandler:   routeHandler,
		aiHandler:      aiHandler,
		sessionHandler: sessionHandler,
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

	// Everything below acts on behalf of an authenticated guide.
	circuits := api.Group("/circuits", middleware.RequireUser())

	circuits.Get("/", s.circuitHandler.List)
	circuits.Post("/", s.circuitHandler.Create)
	circuits.Post("/ai/generate", s.aiHandler.Generate)
	circuits.Get("/:id", s.circuitHandler.Get)
	circuits.Patch("/:id", s.circuitHandler.Update)
	circuits.Delete("/:id", s.circuitHandler.Delete)
	circuits.Get("/:id/warnings", s.circuitHandler.Warnings)

	circuits.Post("/:id/stops", s.stopHandler.Add)
	circuits.Patch("/:id/stops/:stop_id", s.stopHandler.Update)
	circuits.Delete("/:id/stops/:stop_id", s.stopHandler.Delete)

	circuits.Put("/:id/routes", s.routeHandler.Upsert)

	circuits.Post("/:id/ai/reorder", s.aiHandler.Reorder)
	circuits.Post("/:id/ai/suggest-places", s.aiHandler.SuggestPlaces)

	circuits.Get("/:id/sessions", s.sessionHandler.List)
	circuits.Post("/:id/sessions", s.sessionHandler.Create)
	circuits.Patch("/:id/sessions/:session_id", s.sessionHandler.Update)
	circuits.Delete("/:id/sessions/:session_id", s.sessionHandler.Delete)
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
