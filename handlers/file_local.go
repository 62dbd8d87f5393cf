// handlers/file_local.go
package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"p9e.in/salescrm/models"
)

const (
	uploadDir = "./uploads" // Local directory for file storage
	pdfMime   = "application/pdf"
)

// LocalStore writes confirmation PDFs to a local directory. Only PDFs are
// accepted, and the check runs before anything touches the database.
type LocalStore struct {
	Dir string
}

func (s *LocalStore) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*StoredAttachment, error) {
	if header.Header.Get("Content-Type") != pdfMime {
		return nil, &models.ValidationError{Msg: "only PDF files are allowed"}
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, &models.UploadError{Store: "local", Name: header.Filename, Err: err}
	}

	// Millisecond-epoch prefix keeps concurrent uploads of the same name apart.
	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))

	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return nil, &models.UploadError{Store: "local", Name: header.Filename, Err: err}
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, &models.UploadError{Store: "local", Name: header.Filename, Err: err}
	}

	return &StoredAttachment{Filename: filename}, nil
}
