// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScoringGateway(t *testing.T, url string, timeout time.Duration) ScoringGateway {
	t.Helper()
	g, err := NewHTTPScoringGateway(config.Scorer{URL: url, Timeout: timeout}, logger.Nop())
	require.NoError(t, err)
	return g
}

func TestNotify_Success(t *testing.T) {
	var got map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhook", r.URL.Path)
		assert.Equal(t, "Bearer caller-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	g := newTestScoringGateway(t, srv.URL+"/webhook", time.Second)
	req := models.ScoringRequest{
		JDID:           "jd-1",
		JobTitle:       "Backend",
		JobDescription: "Go",
		Skills:         models.SkillWeights{"go": 5},
	}

	require.NoError(t, g.Notify(context.Background(), req, "caller-token"))
	assert.Equal(t, "jd-1", got["jd_id"])
	assert.Equal(t, []any{}, got["resume_drive_links"])
	assert.Equal(t, map[string]any{"go": float64(5)}, got["skills"])
}

func TestNotify_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("scorer down"))
	}))
	defer srv.Close()

	g := newTestScoringGateway(t, srv.URL, time.Second)
	err := g.Notify(context.Background(), models.ScoringRequest{JDID: "jd-1"}, "t")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	assert.Contains(t, err.Error(), "scorer down")
}

func TestNotify_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	g := newTestScoringGateway(t, srv.URL, 50*time.Millisecond)

	start := time.Now()
	err := g.Notify(context.Background(), models.ScoringRequest{JDID: "jd-1"}, "t")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewHTTPScoringGateway_EmptyURL(t *testing.T) {
	_, err := NewHTTPScoringGateway(config.Scorer{URL: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrScorerNotConfigured)
}
