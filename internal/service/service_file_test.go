package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/resume-shortlister/internal/adapter"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/mock"
	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func uploadFile(name string) models.UploadFile {
	return models.UploadFile{Filename: name, ContentType: "application/pdf", Body: strings.NewReader("pdf")}
}

func TestFileUpload_ReportsEachFile(t *testing.T) {
	storage := mock.NewMockFileStorage(gomock.NewController(t))
	svc := NewFileService(storage, logger.Nop())

	storage.EXPECT().Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.UploadFile) (models.StoredFile, error) {
			if f.Filename == "bad.pdf" {
				return models.StoredFile{}, errors.New("quota exceeded for user@corp")
			}
			return models.StoredFile{FileID: "id-" + f.Filename, Link: "https://files/" + f.Filename}, nil
		}).Times(2)

	results, err := svc.Upload(context.Background(), []models.UploadFile{uploadFile("cv.pdf"), uploadFile("bad.pdf")})

	require.NoError(t, err)
	assert.Equal(t, []models.UploadResult{
		{Filename: "cv.pdf", FileID: "id-cv.pdf", Link: "https://files/cv.pdf"},
		{Filename: "bad.pdf", Error: "upload failed"},
	}, results)
}

func TestFileUpload_AllFailed(t *testing.T) {
	storage := mock.NewMockFileStorage(gomock.NewController(t))
	svc := NewFileService(storage, logger.Nop())

	storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.StoredFile{}, adapter.ErrFileStorageDisabled)

	results, err := svc.Upload(context.Background(), []models.UploadFile{uploadFile("cv.pdf")})

	require.Error(t, err)
	assert.Len(t, results, 1)
}

func TestFileUpload_NoFiles(t *testing.T) {
	svc := NewFileService(mock.NewMockFileStorage(gomock.NewController(t)), logger.Nop())

	_, err := svc.Upload(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoFilesProvided)
}

func TestFileDelete(t *testing.T) {
	storage := mock.NewMockFileStorage(gomock.NewController(t))
	svc := NewFileService(storage, logger.Nop())

	storage.EXPECT().Delete(gomock.Any(), "f-1").Return(nil)
	storage.EXPECT().Delete(gomock.Any(), "f-2").Return(adapter.ErrFileNotFound)
	storage.EXPECT().Delete(gomock.Any(), "f-3").Return(adapter.ErrRemoteUnavailable)

	require.NoError(t, svc.Delete(context.Background(), "f-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "f-2"), ErrFileNotFound)

	err := svc.Delete(context.Background(), "f-3")
	assert.ErrorIs(t, err, adapter.ErrRemoteUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}
