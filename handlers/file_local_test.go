package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"p9e.in/salescrm/models"
)

// multipartUpload builds a request carrying one file part with the given
// declared content type and returns the parsed file plus header.
func multipartUpload(t *testing.T, field, filename, contentType, content string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/save-entry", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(maxUploadBytes))

	file, header, err := req.FormFile(field)
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestLocalStoreRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	store := &LocalStore{Dir: dir}

	file, header := multipartUpload(t, "confirmation_pdf", "notes.txt", "text/plain", "hello")
	att, err := store.Save(context.Background(), file, header)

	assert.Nil(t, att)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	// rejection happens before anything is written
	entries, rerr := os.ReadDir(dir)
	require.NoError(t, rerr)
	assert.Empty(t, entries)
}

func TestLocalStoreSavesPDF(t *testing.T) {
	dir := t.TempDir()
	store := &LocalStore{Dir: dir}

	file, header := multipartUpload(t, "confirmation_pdf", "order confirmation.pdf", "application/pdf", "%PDF-1.4 fake")
	att, err := store.Save(context.Background(), file, header)
	require.NoError(t, err)
	require.NotNil(t, att)

	assert.True(t, strings.HasSuffix(att.Filename, "-order confirmation.pdf"),
		"stored name %q should keep the original name after the epoch prefix", att.Filename)
	assert.Empty(t, att.Link)
	assert.Empty(t, att.DownloadLink)

	saved, err := os.ReadFile(filepath.Join(dir, att.Filename))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(saved))
}

func TestLocalStoreNamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	store := &LocalStore{Dir: dir}

	file1, header1 := multipartUpload(t, "confirmation_pdf", "a.pdf", "application/pdf", "one")
	att1, err := store.Save(context.Background(), file1, header1)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	file2, header2 := multipartUpload(t, "confirmation_pdf", "a.pdf", "application/pdf", "two")
	att2, err := store.Save(context.Background(), file2, header2)
	require.NoError(t, err)

	assert.NotEqual(t, att1.Filename, att2.Filename)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
