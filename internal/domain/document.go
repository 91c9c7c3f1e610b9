package domain

import "time"

// Document pairs an allow-listed policy filename with its description.
type Document struct {
	Filename    string
	Description string
}

// DocumentContent locates a policy file ready to be served.
type DocumentContent struct {
	Filename  string
	Path      string
	MediaType string
}

// DocumentInfo carries metadata about a policy file on disk.
type DocumentInfo struct {
	Filename    string
	Description string
	SizeBytes   int64
	ModifiedAt  time.Time
	Extension   string
	DownloadURL string
}
