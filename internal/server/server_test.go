package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/handler"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/mock"
	"github.com/MKhiriev/resume-shortlister/internal/service"
	"github.com/MKhiriev/resume-shortlister/internal/workers"
)

func testConfig() config.StructuredConfig {
	var cfg config.StructuredConfig
	cfg.Server.HTTPAddress = "127.0.0.1:0"
	return cfg
}

func testHandlers(t *testing.T, cfg config.StructuredConfig) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(nil, nil, testConfig(), logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPEndpoint)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	cfg := testConfig()

	srv, err := NewServer(testHandlers(t, cfg), nil, cfg, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestShutdown_DrainsWorkers(t *testing.T) {
	cfg := testConfig()
	cfg.Workers.ShutdownTimeout = time.Second

	worker := mock.NewMockWorker(gomock.NewController(t))
	worker.EXPECT().Shutdown(gomock.Any()).Return(nil)

	srv, err := NewServer(testHandlers(t, cfg), workers.NewWorkers(worker), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestShutdown_ReportsWorkerError(t *testing.T) {
	cfg := testConfig()
	stuck := errors.New("notifications still running")

	worker := mock.NewMockWorker(gomock.NewController(t))
	worker.EXPECT().Shutdown(gomock.Any()).Return(stuck)

	srv, err := NewServer(testHandlers(t, cfg), workers.NewWorkers(worker), cfg, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, srv.Shutdown(context.Background()), stuck)
}
