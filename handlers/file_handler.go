// handlers/file_handler.go
package handlers

import (
	"context"
	"mime/multipart"
	"os"
)

// StoredAttachment is what a store hands back for persisting on the record.
// Link fields are empty for the local-disk store.
type StoredAttachment struct {
	Filename     string `json:"filename"`
	Link         string `json:"link,omitempty"`
	DownloadLink string `json:"link_download,omitempty"`
}

// AttachmentStore persists one uploaded confirmation file and returns the
// reference to keep on the enquiry row.
type AttachmentStore interface {
	Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*StoredAttachment, error)
}

// NewAttachmentStore picks the store for this deployment. Google Cloud sets
// GOOGLE_APPLICATION_CREDENTIALS or K_SERVICE (Cloud Run); local development
// writes to ./uploads.
func NewAttachmentStore() AttachmentStore {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != ""

	if useGCS {
		return &GCSStore{Bucket: os.Getenv("GCS_BUCKET")}
	}
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = uploadDir
	}
	return &LocalStore{Dir: dir}
}
