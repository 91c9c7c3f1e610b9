package service

import (
	"context"

	"github.com/spec-kit/staffing-directory/internal/domain"
	"github.com/spec-kit/staffing-directory/internal/repository"
)

// BeachService answers who is currently unstaffed.
type BeachService struct {
	people repository.PersonRepository
}

// NewBeachService constructs the service.
func NewBeachService(personRepo repository.PersonRepository) *BeachService {
	return &BeachService{people: personRepo}
}

// ListOnBeach returns everyone with status bench or available, newest first.
// Recomputed on every call; there is no caching layer.
func (s *BeachService) ListOnBeach(ctx context.Context) ([]domain.Person, error) {
	people, err := s.people.ListByStatuses(ctx, domain.BeachStatuses)
	if err != nil {
		return nil, err
	}
	if people == nil {
		people = []domain.Person{}
	}
	return people, nil
}
