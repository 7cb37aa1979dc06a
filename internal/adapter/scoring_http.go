package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/models"
)

type httpScoringGateway struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPScoringGateway constructs a resty-backed [ScoringGateway] posting to
// cfg.URL. Every notification is bounded by cfg.Timeout.
func NewHTTPScoringGateway(cfg config.Scorer, logger *logger.Logger) (ScoringGateway, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, ErrScorerNotConfigured
	}

	return &httpScoringGateway{
		client: utils.NewHTTPClient(cfg.Timeout),
		url:    url,
		logger: logger,
	}, nil
}

// Notify implements [ScoringGateway].
func (g *httpScoringGateway) Notify(ctx context.Context, req models.ScoringRequest, token string) error {
	if req.ResumeDriveLinks == nil {
		req.ResumeDriveLinks = []string{}
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(req).
		Post(g.url)
	if err != nil {
		return fmt.Errorf("scorer request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("scorer response: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("jd_id", req.JDID).
		Int("status", resp.StatusCode()).
		Msg("scorer notified")

	return nil
}
