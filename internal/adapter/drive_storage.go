package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveStorage keeps resumes in a Google Drive folder.
type DriveStorage struct {
	service  *drive.Service
	folderID string
	logger   *logger.Logger
}

// NewDriveStorage builds a Drive client authenticated through credentials.
// The token source is bound to ctx, so ctx must outlive the storage.
func NewDriveStorage(ctx context.Context, cfg config.Drive, credentials *OAuthCredentialProvider, log *logger.Logger) (*DriveStorage, error) {
	service, err := drive.NewService(ctx, option.WithTokenSource(credentials.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	return newDriveStorage(service, cfg.FolderID, log), nil
}

func newDriveStorage(service *drive.Service, folderID string, log *logger.Logger) *DriveStorage {
	return &DriveStorage{service: service, folderID: folderID, logger: log}
}

// Upload implements [FileStorage]. The returned link is the file's webViewLink.
func (s *DriveStorage) Upload(ctx context.Context, file models.UploadFile) (models.StoredFile, error) {
	meta := &drive.File{Name: path.Base(file.Filename)}
	if s.folderID != "" {
		meta.Parents = []string{s.folderID}
	}

	var media []googleapi.MediaOption
	if file.ContentType != "" {
		media = append(media, googleapi.ContentType(file.ContentType))
	}

	created, err := s.service.Files.Create(meta).
		Media(file.Body, media...).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*DriveStorage.Upload").Str("filename", file.Filename).Msg("drive upload failed")
		return models.StoredFile{}, fmt.Errorf("drive upload %q: %w", file.Filename, err)
	}

	return models.StoredFile{FileID: created.Id, Link: created.WebViewLink}, nil
}

// Delete implements [FileStorage].
func (s *DriveStorage) Delete(ctx context.Context, fileID string) error {
	err := s.service.Files.Delete(fileID).Context(ctx).Do()
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return ErrFileNotFound
	}

	return fmt.Errorf("drive delete %q: %w", fileID, err)
}
