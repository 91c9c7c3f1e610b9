package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-directory/internal/api/dto"
	"github.com/spec-kit/staffing-directory/internal/service"
)

// BeachHandler serves the derived unstaffed-people view.
type BeachHandler struct {
	service *service.BeachService
}

// NewBeachHandler constructs handler.
func NewBeachHandler(beachService *service.BeachService) *BeachHandler {
	return &BeachHandler{service: beachService}
}

// List GET /api/beach.
func (h *BeachHandler) List(c *fiber.Ctx) error {
	people, err := h.service.ListOnBeach(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.BeachResponse{
		Success:       true,
		Message:       fmt.Sprintf("Retrieved %d people currently on the beach", len(people)),
		PeopleOnBeach: dto.FromPeople(people),
		TotalCount:    len(people),
		LastUpdated:   time.Now().UTC(),
	})
}
