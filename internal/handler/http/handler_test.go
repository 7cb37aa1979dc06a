package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/mock"
	"github.com/MKhiriev/resume-shortlister/internal/service"
	"github.com/MKhiriev/resume-shortlister/models"
)

const (
	testToken  = "good-token"
	testUserID = "0190b5a4-0000-7000-8000-000000000001"
	testJDID   = "0190b5a4-7c1e-7c2d-8a41-3f5e2b9d1c70"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	identity *mock.MockIdentityService
	tokens   *mock.MockTokenAuthority
	jds      *mock.MockJobDescriptionService
	scores   *mock.MockScoreService
	files    *mock.MockFileService
	info     *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := testServices{
		identity: mock.NewMockIdentityService(ctrl),
		tokens:   mock.NewMockTokenAuthority(ctrl),
		jds:      mock.NewMockJobDescriptionService(ctrl),
		scores:   mock.NewMockScoreService(ctrl),
		files:    mock.NewMockFileService(ctrl),
		info:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		IdentityService:       ts.identity,
		TokenAuthority:        ts.tokens,
		JobDescriptionService: ts.jds,
		ScoreService:          ts.scores,
		FileService:           ts.files,
		AppInfoService:        ts.info,
	}

	return NewHandler(services, config.StructuredConfig{}, logger.Nop()), ts
}

// authorize makes testToken valid for testUserID.
func (ts testServices) authorize() {
	ts.tokens.EXPECT().Validate(gomock.Any(), testToken).Return(testUserID, nil).AnyTimes()
}

func serve(h *Handler, method, path string, body io.Reader, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer() http.Header {
	return http.Header{"Authorization": []string{"Bearer " + testToken}}
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_DefaultUploadSize(t *testing.T) {
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.Equal(t, defaultMaxUploadSize, h.maxUploadSize)
}

func TestNewHandler_ConfiguredLimits(t *testing.T) {
	var cfg config.StructuredConfig
	cfg.Adapter.Files.MaxUploadSize = 1024
	cfg.Server.RequestTimeout = 5 * time.Second

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, int64(1024), h.maxUploadSize)
	assert.Equal(t, cfg.Server.RequestTimeout, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: service.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "wrong credentials", err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{name: "wrong otp", err: service.ErrWrongOTP, want: http.StatusBadRequest},
		{name: "duplicate user", err: service.ErrUserAlreadyExists, want: http.StatusBadRequest},
		{name: "password in use", err: service.ErrPasswordInUse, want: http.StatusBadRequest},
		{name: "jd not found", err: service.ErrJDNotFound, want: http.StatusNotFound},
		{name: "invalid jd id", err: service.ErrInvalidJDID, want: http.StatusBadRequest},
		{name: "wrapped not found", err: fmt.Errorf("op: %w", service.ErrUserNotFound), want: http.StatusNotFound},
		{name: "unknown", err: errors.New("db is down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError_ClientErrorCarriesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrPasswordInUse)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password already in use. Please choose a different one.", detailOf(t, rec))
}

func TestWriteServiceError_InternalErrorIsNotSurfaced(t *testing.T) {
	rec := httptest.NewRecorder()

	writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), detailOf(t, rec))
}
