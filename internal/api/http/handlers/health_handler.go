package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-directory/internal/persistence"
)

// HealthHandler responds to the banner and health endpoints.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres}
}

// Root GET / serves the service banner.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Staffing Directory API",
		"version": h.version,
		"status":  "running",
		"endpoints": fiber.Map{
			"people":    "/api/people",
			"beach":     "/api/beach",
			"documents": "/api/docs",
		},
	})
}

// Health GET /health reports process liveness.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": h.serviceName,
	})
}

// Ready GET /health/ready checks database connectivity before reporting ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.postgres.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "unavailable",
			"service": h.serviceName,
			"dependencies": fiber.Map{
				"postgres": err.Error(),
			},
		})
	}
	return c.JSON(fiber.Map{
		"status":  "ready",
		"service": h.serviceName,
		"dependencies": fiber.Map{
			"postgres": "ok",
		},
	})
}
