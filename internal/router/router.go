package router

import (
	"quizcafe/internal/config"
	"quizcafe/internal/domain"
	"quizcafe/internal/handler"
	"quizcafe/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.opentelemetry.io/otel/trace"
)

const (
	corsMethods = "GET,PUT,POST,PATCH,DELETE,OPTIONS"
	corsHeaders = "Content-Type,Authorization"
)

// Deps are the collaborators shared by both services' apps.
type Deps struct {
	Server    config.ServerConfig
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	// Metrics is optional; nil disables /metrics.
	Metrics *middleware.Metrics
	// Tracer is optional; nil disables request spans.
	Tracer trace.Tracer
	Store  domain.Pinger
}

// newApp builds a fiber app with the common middleware chain and the
// /healthz and /metrics endpoints.
func newApp(deps Deps, messages middleware.ErrorMessages) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  deps.Server.ReadTimeout,
		WriteTimeout: deps.Server.WriteTimeout,
		IdleTimeout:  deps.Server.IdleTimeout,
		BodyLimit:    deps.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(messages),
	})

	app.Use(middleware.RequestLogger())
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(recover.New())

	origins := deps.CORS.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: corsMethods,
		AllowHeaders: corsHeaders,
	}))

	if deps.Tracer != nil {
		app.Use(middleware.Tracing(deps.Tracer))
	}
	if deps.RateLimit.Enabled {
		app.Use(middleware.RateLimit(deps.RateLimit.RequestsPerSecond, deps.RateLimit.Burst))
	}

	app.Get("/healthz", handler.Health(deps.Store))
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	return app
}
