package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().SetBody(payload).Post("https://scorer.example.com/webhook")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client whose requests are bounded by timeout.
// A zero timeout leaves requests unbounded. Retries are disabled.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}
