package http

import (
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/service"
)

// defaultMaxUploadSize bounds a multipart upload when none is configured.
const defaultMaxUploadSize int64 = 32 << 20

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	maxUploadSize  int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	maxUploadSize := cfg.Adapter.Files.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}
