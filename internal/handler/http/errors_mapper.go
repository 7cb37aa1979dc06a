package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/service"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrInvalidOTP:         http.StatusBadRequest,
	service.ErrConflict:           http.StatusBadRequest,
	service.ErrNotFound:           http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Client errors
// carry the service message; server errors only carry the status text and
// are logged with the request's trace id.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, detailFromError(err, status), status)
}

func detailFromError(err error, status int) string {
	var svcErr *service.Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return http.StatusText(status)
}
