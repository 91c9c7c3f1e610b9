package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"name": "required"})
	mapped := ToDomainError(original)
	if mapped.Code != "VALIDATION_FAILED" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if mapped.Details["name"] != "required" {
		t.Fatalf("details lost: %+v", mapped.Details)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected NOT_FOUND for pgx.ErrNoRows, got %+v", mapped)
	}
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected INTERNAL_ERROR, got %+v", mapped)
	}
	if !errors.Is(mapped, mapped.Err) {
		t.Fatal("wrapped error not reachable via Unwrap")
	}
}

func TestToDomainErrorMapsFiberErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      *fiber.Error
		wantCode string
	}{
		{"not found", fiber.ErrNotFound, "NOT_FOUND"},
		{"bad request", fiber.ErrBadRequest, "VALIDATION_FAILED"},
		{"forbidden", fiber.ErrForbidden, "FORBIDDEN"},
		{"method not allowed", fiber.ErrMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"bad gateway", fiber.ErrBadGateway, "INTERNAL_ERROR"},
		{"teapot", fiber.NewError(http.StatusTeapot, "short and stout"), "REQUEST_FAILED"},
	}
	for _, tc := range cases {
		mapped := ToDomainError(tc.err)
		if mapped.Code != tc.wantCode {
			t.Errorf("%s: expected code %s, got %+v", tc.name, tc.wantCode, mapped)
		}
		if mapped.HTTPStatus != tc.err.Code {
			t.Errorf("%s: status changed from %d to %d", tc.name, tc.err.Code, mapped.HTTPStatus)
		}
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestNewForbidden(t *testing.T) {
	err := NewForbidden("file type not allowed")
	mapped := ToDomainError(err)
	if mapped.Code != "FORBIDDEN" || mapped.HTTPStatus != http.StatusForbidden {
		t.Fatalf("unexpected forbidden mapping: %+v", mapped)
	}
}
