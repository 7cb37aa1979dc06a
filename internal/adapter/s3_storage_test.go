package adapter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestS3Storage(t *testing.T, handler http.HandlerFunc) (*S3Storage, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s, err := NewS3Storage(context.Background(), config.S3{
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		Bucket:    "resumes",
		AccessKey: "minio",
		SecretKey: "minio123",
		LinkTTL:   time.Hour,
	}, logger.Nop())
	require.NoError(t, err)

	return s, srv.URL
}

func TestStorageKey(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

	key := storageKey("../../etc/cv.pdf", now)

	assert.True(t, strings.HasPrefix(key, "resumes/2026/03/07/"))
	assert.True(t, strings.HasSuffix(key, "/cv.pdf"))
	assert.NotContains(t, key, "..")
}

func TestS3Storage_Upload(t *testing.T) {
	var gotBody []byte
	var gotPath string
	s, baseURL := newTestS3Storage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	})

	content := []byte("resume content")
	stored, err := s.Upload(context.Background(), models.UploadFile{
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Body:        bytes.NewReader(content),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPath, "/resumes/resumes/"))
	assert.Contains(t, string(gotBody), "resume content")
	assert.True(t, strings.HasSuffix(stored.FileID, "/cv.pdf"))
	assert.True(t, strings.HasPrefix(stored.Link, baseURL+"/resumes/"))
	assert.Contains(t, stored.Link, "X-Amz-Expires=3600")
}

func TestS3Storage_DeleteNotFound(t *testing.T) {
	s, _ := newTestS3Storage(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNotFound)
	})

	assert.ErrorIs(t, s.Delete(context.Background(), "resumes/missing.pdf"), ErrFileNotFound)
}

func TestS3Storage_Delete(t *testing.T) {
	var methods []string
	s, _ := newTestS3Storage(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, s.Delete(context.Background(), "resumes/cv.pdf"))
	assert.Equal(t, []string{http.MethodHead, http.MethodDelete}, methods)
}
