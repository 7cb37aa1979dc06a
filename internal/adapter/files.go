package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
)

// NewFileStorage builds the backend selected by cfg.Files.Backend. With no
// backend configured every call fails with [ErrFileStorageDisabled].
func NewFileStorage(ctx context.Context, cfg config.Adapter, log *logger.Logger) (FileStorage, error) {
	switch cfg.Files.Backend {
	case config.FilesBackendDrive:
		log.Info().Str("backend", cfg.Files.Backend).Msg("using google drive file storage")
		storage, err := NewDriveStorage(ctx, cfg.Drive, NewDriveCredentialProvider(cfg.Drive), log)
		if err != nil {
			return nil, err
		}
		return storage, nil
	case config.FilesBackendS3:
		log.Info().Str("backend", cfg.Files.Backend).Msg("using s3 file storage")
		storage, err := NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			return nil, err
		}
		return storage, nil
	case config.FilesBackendNone:
		log.Info().Msg("file storage disabled")
		return disabledStorage{}, nil
	default:
		return nil, fmt.Errorf("unknown file storage backend %q", cfg.Files.Backend)
	}
}

type disabledStorage struct{}

func (disabledStorage) Upload(context.Context, models.UploadFile) (models.StoredFile, error) {
	return models.StoredFile{}, ErrFileStorageDisabled
}

func (disabledStorage) Delete(context.Context, string) error {
	return ErrFileStorageDisabled
}
