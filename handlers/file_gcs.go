// handlers/file_gcs.go
package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"p9e.in/salescrm/models"
)

// GCSStore uploads confirmation files to a Google Cloud Storage bucket,
// makes the object public-read, and derives a preview URL plus a forced
// download URL. No MIME filtering happens here.
type GCSStore struct {
	Bucket string
}

func (s *GCSStore) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*StoredAttachment, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, &models.UploadError{Store: "gcs", Name: header.Filename, Err: err}
	}
	defer client.Close()

	objectName := fmt.Sprintf("confirmations/%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	obj := client.Bucket(s.Bucket).Object(objectName)

	wr := obj.NewWriter(ctx)
	wr.ContentType = header.Header.Get("Content-Type")
	if _, err := io.Copy(wr, file); err != nil {
		wr.Close()
		return nil, &models.UploadError{Store: "gcs", Name: header.Filename, Err: err}
	}
	if err := wr.Close(); err != nil {
		return nil, &models.UploadError{Store: "gcs", Name: header.Filename, Err: err}
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, &models.UploadError{Store: "gcs", Name: header.Filename, Err: err}
	}

	link := fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.Bucket, objectName)
	download := link + "?response-content-disposition=" +
		url.QueryEscape(fmt.Sprintf("attachment; filename=%q", filepath.Base(header.Filename)))

	return &StoredAttachment{
		Filename:     filepath.Base(header.Filename),
		Link:         link,
		DownloadLink: download,
	}, nil
}
