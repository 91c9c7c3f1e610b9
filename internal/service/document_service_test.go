package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spec-kit/staffing-directory/internal/service"
)

func newPoliciesDir(t *testing.T, filenames ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range filenames {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# "+name+"\n\npolicy text\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestDocumentListOnlyExistingFiles(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md", "code-of-conduct.md")
	svc := service.NewDocumentService(dir)

	docs, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	// sorted by filename
	if docs[0].Filename != "code-of-conduct.md" || docs[1].Filename != "employee-handbook.md" {
		t.Fatalf("unexpected order: %+v", docs)
	}
	if docs[0].Description == "" {
		t.Fatal("description missing")
	}
}

func TestDocumentGetRejectsTraversal(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md")
	svc := service.NewDocumentService(dir)

	for _, filename := range []string{
		"../../etc/passwd",
		"..secret.md",
		"sub/dir.md",
		`windows\style.md`,
		"",
	} {
		_, err := svc.Get(filename)
		assertErrorCode(t, err, "VALIDATION_FAILED")
	}
}

func TestDocumentGetRejectsDisallowedExtension(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md")
	svc := service.NewDocumentService(dir)

	_, err := svc.Get("tools.exe")
	assertErrorCode(t, err, "FORBIDDEN")
}

func TestDocumentGetUnknownFilename(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md")
	svc := service.NewDocumentService(dir)

	_, err := svc.Get("unknown.md")
	assertErrorCode(t, err, "NOT_FOUND")
}

func TestDocumentGetMissingOnDisk(t *testing.T) {
	dir := newPoliciesDir(t) // catalog entry exists, file does not
	svc := service.NewDocumentService(dir)

	_, err := svc.Get("security-policy.md")
	assertErrorCode(t, err, "NOT_FOUND")
}

func TestDocumentGetSuccess(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md")
	svc := service.NewDocumentService(dir)

	doc, err := svc.Get("employee-handbook.md")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if doc.MediaType != "text/markdown" {
		t.Fatalf("unexpected media type: %s", doc.MediaType)
	}
	if doc.Path != filepath.Join(dir, "employee-handbook.md") {
		t.Fatalf("unexpected path: %s", doc.Path)
	}
}

func TestDocumentInfoFields(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md")
	svc := service.NewDocumentService(dir)

	info, err := svc.Info("employee-handbook.md")
	if err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if info.SizeBytes <= 0 {
		t.Fatalf("expected positive size, got %d", info.SizeBytes)
	}
	if info.Extension != ".md" {
		t.Fatalf("unexpected extension: %s", info.Extension)
	}
	if info.DownloadURL != "/api/docs/employee-handbook.md" {
		t.Fatalf("unexpected download url: %s", info.DownloadURL)
	}
	if info.ModifiedAt.IsZero() {
		t.Fatal("modified time missing")
	}
}

func TestDocumentInfoRejectsTraversal(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md")
	svc := service.NewDocumentService(dir)

	_, err := svc.Info("../handbook.md")
	assertErrorCode(t, err, "VALIDATION_FAILED")
}

func TestDocumentInfoUnknownFilename(t *testing.T) {
	dir := newPoliciesDir(t, "employee-handbook.md")
	svc := service.NewDocumentService(dir)

	_, err := svc.Info("unknown.md")
	assertErrorCode(t, err, "NOT_FOUND")
}
