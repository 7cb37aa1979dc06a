package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of a failed answer ends up in the error text.
const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	if body == "" {
		body = http.StatusText(code)
	}

	var kind error
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		kind = ErrRemoteUnauthorized
	case code == http.StatusNotFound:
		kind = ErrRemoteNotFound
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		kind = ErrRemoteRejected
	case code >= http.StatusInternalServerError:
		kind = ErrRemoteUnavailable
	default:
		kind = ErrUnexpectedStatus
	}

	return fmt.Errorf("%w: http %d: %s", kind, code, body)
}
