// Package api builds the Fiber application with middleware, REST and GraphQL routes.
package api

import (
	"fmt"
	"time"

	gqlschema "github.com/fourmile/fourmile-backend/graphql"
	"github.com/fourmile/fourmile-backend/internal/config"
	"github.com/fourmile/fourmile-backend/internal/metrics"
	"github.com/fourmile/fourmile-backend/restapi"
	"github.com/fourmile/fourmile-backend/restapi/modules/github"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Service is what the REST handlers and the GraphQL resolvers need
type Service = github.RepositoryService

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes.
// prom may be nil when metrics are disabled.
func NewFiberApp(cfg *config.Config, svc Service, prom *metrics.PrometheusRecorder, log *zap.Logger) (*fiber.App, error) {
	schema, err := gqlschema.CreateSchema(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL schema: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "fourmile-backend API v1.0",
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, HEAD, OPTIONS",
	}))
	app.Use(logger.New())

	// Health check endpoint
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	if prom != nil {
		app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))
	}

	// Setup REST and GraphQL routes; registers the help fallback last
	restapi.SetupRoutes(app, svc, schema, log)

	return app, nil
}
