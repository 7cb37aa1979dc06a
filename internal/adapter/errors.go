package adapter

import "errors"

// Remote call failures, classified by the answer's status code.
var (
	ErrRemoteRejected     = errors.New("request rejected by remote")
	ErrRemoteUnauthorized = errors.New("remote refused credentials")
	ErrRemoteNotFound     = errors.New("remote endpoint not found")
	ErrRemoteUnavailable  = errors.New("remote unavailable")
	ErrUnexpectedStatus   = errors.New("unexpected status")
)

var (
	// ErrScorerNotConfigured is returned when no scorer URL is set.
	ErrScorerNotConfigured = errors.New("scorer url is not configured")

	// ErrMailerNotConfigured is returned when the SMTP relay is not set.
	ErrMailerNotConfigured = errors.New("smtp is not configured")

	// ErrFileStorageDisabled is returned by the storage used when no
	// backend is configured.
	ErrFileStorageDisabled = errors.New("file storage is disabled")

	// ErrFileNotFound is returned when deleting an unknown file.
	ErrFileNotFound = errors.New("file not found")

	// ErrNoRefreshToken is returned when the credential provider has no
	// refresh token to exchange.
	ErrNoRefreshToken = errors.New("no refresh token configured")
)
