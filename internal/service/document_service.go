package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spec-kit/staffing-directory/internal/domain"
	apperrors "github.com/spec-kit/staffing-directory/pkg/util"
)

// allowedExtensions restricts which file types may be served.
var allowedExtensions = map[string]struct{}{
	".md":   {},
	".txt":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// mediaTypes maps extensions to response content types.
var mediaTypes = map[string]string{
	".md":   "text/markdown",
	".txt":  "text/plain",
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// defaultCatalog lists the policy documents the service exposes.
var defaultCatalog = map[string]string{
	"employee-handbook.md": "Employee Handbook - Company policies and procedures",
	"code-of-conduct.md":   "Code of Conduct - Ethical standards and behavioral expectations",
	"security-policy.md":   "Security Policy - Information security guidelines and requirements",
}

// DocumentService serves policy documents from a restricted directory.
// The catalog is fixed at construction and never mutated afterwards.
type DocumentService struct {
	root    string
	catalog map[string]string
}

// NewDocumentService constructs the service over the given policies directory.
func NewDocumentService(policiesDir string) *DocumentService {
	catalog := make(map[string]string, len(defaultCatalog))
	for name, description := range defaultCatalog {
		catalog[name] = description
	}
	return &DocumentService{root: policiesDir, catalog: catalog}
}

// List returns catalog entries whose files actually exist on disk,
// sorted by filename.
func (s *DocumentService) List() ([]domain.Document, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("policies directory: %w", err))
	}

	docs := make([]domain.Document, 0, len(s.catalog))
	for filename, description := range s.catalog {
		info, err := os.Stat(filepath.Join(s.root, filename))
		if err != nil || info.IsDir() {
			continue
		}
		docs = append(docs, domain.Document{Filename: filename, Description: description})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Filename < docs[j].Filename })
	return docs, nil
}

// Get resolves a catalog document to a servable file.
func (s *DocumentService) Get(filename string) (*domain.DocumentContent, error) {
	if err := rejectTraversal(filename); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, apperrors.NewForbidden("file type not allowed")
	}

	if _, ok := s.catalog[filename]; !ok {
		return nil, apperrors.NewNotFound("document", map[string]any{"filename": filename})
	}

	path, err := s.resolveWithinRoot(filename)
	if err != nil {
		return nil, err
	}

	mediaType, ok := mediaTypes[ext]
	if !ok {
		mediaType = "application/octet-stream"
	}
	return &domain.DocumentContent{Filename: filename, Path: path, MediaType: mediaType}, nil
}

// Info returns metadata for a catalog document.
func (s *DocumentService) Info(filename string) (*domain.DocumentInfo, error) {
	if err := rejectTraversal(filename); err != nil {
		return nil, err
	}

	description, ok := s.catalog[filename]
	if !ok {
		return nil, apperrors.NewNotFound("document", map[string]any{"filename": filename})
	}

	path := filepath.Join(s.root, filename)
	stat, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewNotFound("document file", map[string]any{"filename": filename})
	}

	return &domain.DocumentInfo{
		Filename:    filename,
		Description: description,
		SizeBytes:   stat.Size(),
		ModifiedAt:  stat.ModTime(),
		Extension:   filepath.Ext(filename),
		DownloadURL: "/api/docs/" + filename,
	}, nil
}

// rejectTraversal refuses filenames that could escape the policies
// directory. Runs before any filesystem access.
func rejectTraversal(filename string) error {
	if filename == "" || strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) {
		return apperrors.NewValidationError("invalid filename: path traversal not allowed", nil)
	}
	return nil
}

// resolveWithinRoot verifies the file exists, is regular, and that its
// canonical path stays inside the policies directory.
func (s *DocumentService) resolveWithinRoot(filename string) (string, error) {
	path := filepath.Join(s.root, filename)

	stat, err := os.Stat(path)
	if err != nil {
		return "", apperrors.NewNotFound("document file", map[string]any{"filename": filename})
	}
	if !stat.Mode().IsRegular() {
		return "", apperrors.NewForbidden("not a valid file")
	}

	resolvedRoot, err := filepath.EvalSymlinks(s.root)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	rel, err := filepath.Rel(resolvedRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", apperrors.NewForbidden("access denied: file path outside allowed directory")
	}

	return path, nil
}
