package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-directory/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	People    *handlers.PeopleHandler
	Beach     *handlers.BeachHandler
	Documents *handlers.DocumentsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/people", cfg.People.List)
	api.Post("/people", cfg.People.Create)
	api.Get("/people/:id", cfg.People.GetByID)
	api.Put("/people/:id", cfg.People.Update)
	api.Delete("/people/:id", cfg.People.Delete)

	api.Get("/beach", cfg.Beach.List)

	api.Get("/docs", cfg.Documents.List)
	api.Get("/docs/:filename", cfg.Documents.Get)
	api.Get("/docs/:filename/info", cfg.Documents.Info)
}
