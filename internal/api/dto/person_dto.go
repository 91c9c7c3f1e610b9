package dto

import (
	"time"

	"github.com/spec-kit/staffing-directory/internal/domain"
)

// CreatePersonRequest payload.
type CreatePersonRequest struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Department     string `json:"department"`
	StaffingStatus string `json:"staffing_status"`
}

// UpdatePersonRequest payload. Absent fields are left unchanged.
type UpdatePersonRequest struct {
	Name           *string `json:"name"`
	Role           *string `json:"role"`
	Department     *string `json:"department"`
	StaffingStatus *string `json:"staffing_status"`
}

// Person response shape.
type Person struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Department     string    `json:"department"`
	StaffingStatus string    `json:"staffing_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PersonResponse wraps a single person in the standard envelope.
type PersonResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Person  *Person `json:"person"`
}

// PeopleListResponse wraps a people listing in the standard envelope.
type PeopleListResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	People     []Person `json:"people"`
	TotalCount int      `json:"total_count"`
}

// BeachResponse wraps the beach listing in the standard envelope.
type BeachResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	PeopleOnBeach []Person  `json:"people_on_beach"`
	TotalCount    int       `json:"total_count"`
	LastUpdated   time.Time `json:"last_updated"`
}

// FromPerson converts the domain entity to its response shape.
func FromPerson(person *domain.Person) *Person {
	if person == nil {
		return nil
	}
	return &Person{
		ID:             person.ID,
		Name:           person.Name,
		Role:           person.Role,
		Department:     person.Department,
		StaffingStatus: string(person.StaffingStatus),
		CreatedAt:      person.CreatedAt,
		UpdatedAt:      person.UpdatedAt,
	}
}

// FromPeople converts a slice of domain entities.
func FromPeople(people []domain.Person) []Person {
	result := make([]Person, 0, len(people))
	for i := range people {
		result = append(result, *FromPerson(&people[i]))
	}
	return result
}
