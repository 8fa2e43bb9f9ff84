package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/creatorlens/creatorlens/internal/handler"
	"github.com/creatorlens/creatorlens/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Analyze *handler.AnalyzeHandler
	Search  *handler.SearchHandler
	Ideas   *handler.IdeasHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health and metrics (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	analyzeLimiter := middleware.NewAnalyzeRateLimiter()
	searchLimiter := middleware.NewSearchRateLimiter()
	ideasLimiter := middleware.NewIdeasRateLimiter()

	// API routes
	api := app.Group("/api")

	api.Post("/analyze-channel", h.Analyze.Channel, analyzeLimiter.Handler())
	api.Post("/analyze-video", h.Analyze.Video, analyzeLimiter.Handler())
	api.Post("/search-channels", h.Search.Channels, searchLimiter.Handler())
	api.Post("/generate-ideas", h.Ideas.Generate, ideasLimiter.Handler())
}
