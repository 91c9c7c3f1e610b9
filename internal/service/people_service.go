package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staffing-directory/internal/domain"
	"github.com/spec-kit/staffing-directory/internal/repository"
	apperrors "github.com/spec-kit/staffing-directory/pkg/util"
)

// PersonCreateInput describes person creation payload.
type PersonCreateInput struct {
	Name           string `validate:"required,max=100"`
	Role           string `validate:"required,max=100"`
	Department     string `validate:"required,max=100"`
	StaffingStatus string `validate:"required,oneof=staffed bench available"`
}

// PersonUpdateInput describes a partial update. Nil fields are left unchanged.
type PersonUpdateInput struct {
	Name           *string `validate:"omitnil,min=1,max=100"`
	Role           *string `validate:"omitnil,min=1,max=100"`
	Department     *string `validate:"omitnil,min=1,max=100"`
	StaffingStatus *string `validate:"omitnil,oneof=staffed bench available"`
}

// PeopleService coordinates person CRUD workflows.
type PeopleService struct {
	people   repository.PersonRepository
	validate *validator.Validate
}

// NewPeopleService constructs the service.
func NewPeopleService(personRepo repository.PersonRepository) *PeopleService {
	return &PeopleService{
		people:   personRepo,
		validate: validator.New(),
	}
}

// Create validates input and stores a new person.
func (s *PeopleService) Create(ctx context.Context, input PersonCreateInput) (*domain.Person, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.TrimSpace(input.Role)
	input.Department = strings.TrimSpace(input.Department)
	input.StaffingStatus = strings.TrimSpace(input.StaffingStatus)

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	person := &domain.Person{
		Name:           input.Name,
		Role:           input.Role,
		Department:     input.Department,
		StaffingStatus: domain.StaffingStatus(input.StaffingStatus),
	}
	if err := s.people.Create(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// GetByID fetches a single person.
func (s *PeopleService) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	person, err := s.people.GetByID(ctx, id)
	if err != nil {
		return nil, mapPersonError(err, id)
	}
	return person, nil
}

// List returns all people ordered by creation time, newest first.
func (s *PeopleService) List(ctx context.Context) ([]domain.Person, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, err
	}
	if people == nil {
		people = []domain.Person{}
	}
	return people, nil
}

// Update applies the provided fields and refreshes updated_at.
func (s *PeopleService) Update(ctx context.Context, id int64, input PersonUpdateInput) (*domain.Person, error) {
	trimPtr(input.Name)
	trimPtr(input.Role)
	trimPtr(input.Department)
	trimPtr(input.StaffingStatus)

	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	patch := domain.PersonPatch{
		Name:       input.Name,
		Role:       input.Role,
		Department: input.Department,
	}
	if input.StaffingStatus != nil {
		status := domain.StaffingStatus(*input.StaffingStatus)
		patch.StaffingStatus = &status
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("no fields provided for update", nil)
	}

	person, err := s.people.Update(ctx, id, patch)
	if err != nil {
		return nil, mapPersonError(err, id)
	}
	return person, nil
}

// Delete removes a person and returns the pre-delete snapshot.
func (s *PeopleService) Delete(ctx context.Context, id int64) (*domain.Person, error) {
	person, err := s.people.Delete(ctx, id)
	if err != nil {
		return nil, mapPersonError(err, id)
	}
	return person, nil
}

func trimPtr(v *string) {
	if v != nil {
		*v = strings.TrimSpace(*v)
	}
}

func mapPersonError(err error, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("person", map[string]any{"id": id})
	}
	return err
}

func validationError(err error) error {
	details := map[string]any{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return apperrors.NewValidationError("invalid person payload", details)
}
