package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staffing-directory/internal/api/dto"
	"github.com/spec-kit/staffing-directory/internal/service"
)

// DocumentsHandler serves policy documents.
type DocumentsHandler struct {
	service *service.DocumentService
}

// NewDocumentsHandler constructs handler.
func NewDocumentsHandler(documentService *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{service: documentService}
}

// List GET /api/docs.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	docs, err := h.service.List()
	if err != nil {
		return err
	}
	documents := make(map[string]string, len(docs))
	for _, doc := range docs {
		documents[doc.Filename] = doc.Description
	}
	return c.JSON(dto.DocumentListResponse{
		Success:   true,
		Message:   fmt.Sprintf("Found %d available policy documents", len(documents)),
		Documents: documents,
		BaseURL:   "/api/docs/",
	})
}

// Get GET /api/docs/:filename.
func (h *DocumentsHandler) Get(c *fiber.Ctx) error {
	doc, err := h.service.Get(c.Params("filename"))
	if err != nil {
		return err
	}

	if err := c.SendFile(doc.Path); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, doc.MediaType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", doc.Filename))
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return nil
}

// Info GET /api/docs/:filename/info.
func (h *DocumentsHandler) Info(c *fiber.Ctx) error {
	info, err := h.service.Info(c.Params("filename"))
	if err != nil {
		return err
	}
	return c.JSON(dto.DocumentInfoResponse{
		Success:     true,
		Filename:    info.Filename,
		Description: info.Description,
		SizeBytes:   info.SizeBytes,
		ModifiedAt:  info.ModifiedAt,
		Extension:   info.Extension,
		DownloadURL: info.DownloadURL,
	})
}
