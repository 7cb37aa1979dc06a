package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/resume-shortlister/internal/adapter"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
)

type fileService struct {
	storage adapter.FileStorage
	logger  *logger.Logger
}

func NewFileService(storage adapter.FileStorage, logger *logger.Logger) FileService {
	return &fileService{storage: storage, logger: logger}
}

func (s *fileService) Upload(ctx context.Context, files []models.UploadFile) ([]models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if len(files) == 0 {
		return nil, ErrNoFilesProvided
	}

	results := make([]models.UploadResult, 0, len(files))
	failed := 0
	for _, file := range files {
		stored, err := s.storage.Upload(ctx, file)
		if err != nil {
			log.Err(err).Str("filename", file.Filename).Msg("file upload failed")
			failed++
			results = append(results, models.UploadResult{Filename: file.Filename, Error: "upload failed"})
			continue
		}
		results = append(results, models.UploadResult{Filename: file.Filename, FileID: stored.FileID, Link: stored.Link})
	}

	if failed == len(files) {
		return results, errors.New("all files failed to upload")
	}

	return results, nil
}

func (s *fileService) Delete(ctx context.Context, fileID string) error {
	if err := s.storage.Delete(ctx, fileID); err != nil {
		if errors.Is(err, adapter.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return fmt.Errorf("delete file: %w", err)
	}

	logger.FromContext(ctx).Info().Str("file_id", fileID).Msg("file deleted")
	return nil
}
