package dto

import "time"

// DocumentListResponse lists catalog documents present on disk.
type DocumentListResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Documents map[string]string `json:"documents"`
	BaseURL   string            `json:"base_url"`
}

// DocumentInfoResponse carries metadata for one document.
type DocumentInfoResponse struct {
	Success     bool      `json:"success"`
	Filename    string    `json:"filename"`
	Description string    `json:"description"`
	SizeBytes   int64     `json:"size_bytes"`
	ModifiedAt  time.Time `json:"modified_at"`
	Extension   string    `json:"extension"`
	DownloadURL string    `json:"download_url"`
}
