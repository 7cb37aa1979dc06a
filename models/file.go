package models

import "io"

// UploadFile is one multipart file handed to the file storage backend.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoredFile is the outcome of storing one file.
type StoredFile struct {
	FileID string `json:"file_id"`
	Link   string `json:"link"`
}

// UploadResult is the per-file entry of an upload response.
// Either Link or Error is set.
type UploadResult struct {
	Filename string `json:"filename"`
	FileID   string `json:"file_id,omitempty"`
	Link     string `json:"link,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UploadResponse is returned by POST /upload/.
type UploadResponse struct {
	Message string         `json:"message"`
	Results []UploadResult `json:"results"`
}
