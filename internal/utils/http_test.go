package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "message",
			data:     models.MessageResponse{Message: "JD submitted"},
			status:   http.StatusOK,
			wantBody: `{"message":"JD submitted"}`,
		},
		{
			name:     "jd created",
			data:     models.JobDescriptionResponse{Message: "ok", JDID: "jd-1"},
			status:   http.StatusCreated,
			wantBody: `{"message":"ok","jd_id":"jd-1"}`,
		},
		{
			name:     "empty history",
			data:     models.HistoryResponse{History: []models.JobDescription{}},
			status:   http.StatusOK,
			wantBody: `{"history":[]}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_Unmarshalable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]any{"score": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "Not authenticated", http.StatusUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, w.Body.String())
}
