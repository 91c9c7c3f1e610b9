package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/spec-kit/staffing-directory/internal/api/dto"
)

func TestDocsList(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/docs", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var envelope dto.DocumentListResponse
	decodeInto(t, resp, &envelope)
	if !envelope.Success {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if _, ok := envelope.Documents["employee-handbook.md"]; !ok {
		t.Fatalf("handbook missing from listing: %+v", envelope.Documents)
	}
	if envelope.BaseURL != "/api/docs/" {
		t.Fatalf("unexpected base url: %s", envelope.BaseURL)
	}
}

func TestDocGetSuccess(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/docs/employee-handbook.md", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Content-Disposition"); !strings.HasPrefix(got, "inline") {
		t.Fatalf("expected inline disposition, got %q", got)
	}
	if got := resp.Header.Get("Cache-Control"); !strings.Contains(got, "max-age=3600") {
		t.Fatalf("expected 1h cache, got %q", got)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "Employee Handbook") {
		t.Fatalf("unexpected body: %q", string(body))
	}
}

func TestDocGetTraversalRejected(t *testing.T) {
	app, _ := newTestApp(t)

	// a dot-dot sequence inside a single path segment reaches the handler
	resp := doJSON(t, app, http.MethodGet, "/api/docs/..secret.md", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var envelope map[string]any
	decodeInto(t, resp, &envelope)
	if envelope["success"] != false {
		t.Fatalf("expected success=false, got %+v", envelope)
	}
}

func TestDocGetMultiSegmentTraversalRejected(t *testing.T) {
	app, _ := newTestApp(t)

	// dot-segments spanning the route boundary are collapsed before routing,
	// so these never reach the documents handler; the raw path still has to
	// be rejected with a client error rather than an unhandled 500
	for _, path := range []string{
		"/api/docs/../../etc/passwd",
		"/api/docs/../people",
		"/api/docs/..%2f..%2fetc%2fpasswd",
	} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, resp.StatusCode)
			continue
		}
		var envelope map[string]any
		decodeInto(t, resp, &envelope)
		if envelope["success"] != false || envelope["code"] != "VALIDATION_FAILED" {
			t.Errorf("%s: unexpected envelope: %+v", path, envelope)
		}
	}
}

func TestDocGetDisallowedExtension(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/docs/tools.exe", nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestDocGetUnknown(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/docs/unknown.md", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDocInfo(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/docs/employee-handbook.md/info", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var envelope dto.DocumentInfoResponse
	decodeInto(t, resp, &envelope)
	if !envelope.Success || envelope.Filename != "employee-handbook.md" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if envelope.SizeBytes <= 0 {
		t.Fatalf("expected positive size, got %d", envelope.SizeBytes)
	}
	if envelope.DownloadURL != "/api/docs/employee-handbook.md" {
		t.Fatalf("unexpected download url: %s", envelope.DownloadURL)
	}
}

func TestDocInfoUnknown(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/docs/unknown.md/info", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
