package domain

import "time"

// StaffingStatus enumerates assignment states for a person.
type StaffingStatus string

const (
	StaffingStatusStaffed   StaffingStatus = "staffed"
	StaffingStatusBench     StaffingStatus = "bench"
	StaffingStatusAvailable StaffingStatus = "available"
)

// BeachStatuses are the statuses that place a person on the beach.
var BeachStatuses = []StaffingStatus{StaffingStatusBench, StaffingStatusAvailable}

// Valid reports whether the status is one of the enumerated values.
func (s StaffingStatus) Valid() bool {
	switch s {
	case StaffingStatusStaffed, StaffingStatusBench, StaffingStatusAvailable:
		return true
	}
	return false
}

// OnBeach reports whether the status counts as unstaffed.
func (s StaffingStatus) OnBeach() bool {
	return s == StaffingStatusBench || s == StaffingStatusAvailable
}

// Person models a staffed resource in the directory.
type Person struct {
	ID             int64
	Name           string
	Role           string
	Department     string
	StaffingStatus StaffingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PersonPatch carries a partial update. A nil field is left unchanged.
type PersonPatch struct {
	Name           *string
	Role           *string
	Department     *string
	StaffingStatus *StaffingStatus
}

// IsEmpty reports whether the patch carries no fields.
func (p PersonPatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && p.Department == nil && p.StaffingStatus == nil
}
