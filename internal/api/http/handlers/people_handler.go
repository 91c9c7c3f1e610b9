package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-directory/internal/api/dto"
	"github.com/spec-kit/staffing-directory/internal/service"
	apperrors "github.com/spec-kit/staffing-directory/pkg/util"
)

// PeopleHandler manages person CRUD endpoints.
type PeopleHandler struct {
	service *service.PeopleService
}

// NewPeopleHandler constructs handler.
func NewPeopleHandler(peopleService *service.PeopleService) *PeopleHandler {
	return &PeopleHandler{service: peopleService}
}

// List GET /api/people.
func (h *PeopleHandler) List(c *fiber.Ctx) error {
	people, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.PeopleListResponse{
		Success:    true,
		Message:    fmt.Sprintf("Retrieved %d people successfully", len(people)),
		People:     dto.FromPeople(people),
		TotalCount: len(people),
	})
}

// Create POST /api/people.
func (h *PeopleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	person, err := h.service.Create(c.UserContext(), service.PersonCreateInput{
		Name:           req.Name,
		Role:           req.Role,
		Department:     req.Department,
		StaffingStatus: req.StaffingStatus,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.PersonResponse{
		Success: true,
		Message: "Person created successfully",
		Person:  dto.FromPerson(person),
	})
}

// GetByID GET /api/people/:id.
func (h *PeopleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parsePersonID(c)
	if err != nil {
		return err
	}
	person, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.PersonResponse{
		Success: true,
		Message: "Person retrieved successfully",
		Person:  dto.FromPerson(person),
	})
}

// Update PUT /api/people/:id.
func (h *PeopleHandler) Update(c *fiber.Ctx) error {
	id, err := parsePersonID(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	person, err := h.service.Update(c.UserContext(), id, service.PersonUpdateInput{
		Name:           req.Name,
		Role:           req.Role,
		Department:     req.Department,
		StaffingStatus: req.StaffingStatus,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.PersonResponse{
		Success: true,
		Message: "Person updated successfully",
		Person:  dto.FromPerson(person),
	})
}

// Delete DELETE /api/people/:id.
func (h *PeopleHandler) Delete(c *fiber.Ctx) error {
	id, err := parsePersonID(c)
	if err != nil {
		return err
	}
	person, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.PersonResponse{
		Success: true,
		Message: "Person deleted successfully",
		Person:  dto.FromPerson(person),
	})
}

func parsePersonID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid person id", nil)
	}
	return int64(id), nil
}
