// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the shortlister backend.
//
// [ScoringGateway] notifies the external AI scorer about new or changed job
// descriptions over HTTP. [Mailer] delivers signup one-time passwords over
// SMTP. [FileStorage] keeps uploaded resumes in Google Drive or an S3
// compatible bucket, and [CredentialProvider] supplies the OAuth access token
// the Drive backend authenticates with.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/resume-shortlister/models"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ScoringGateway delivers scoring requests to the external scorer.
type ScoringGateway interface {
	// Notify posts req to the scorer, authenticated with the caller's bearer
	// token. A non-2xx answer is reported as an error. Notify never retries.
	Notify(ctx context.Context, req models.ScoringRequest, token string) error
}

// Mailer sends signup verification codes.
type Mailer interface {
	// SendOTP delivers otp to the address to.
	SendOTP(ctx context.Context, to, otp string) error
}

// FileStorage stores uploaded resumes and returns shareable links.
type FileStorage interface {
	// Upload stores file and returns its opaque id and a link to it.
	Upload(ctx context.Context, file models.UploadFile) (models.StoredFile, error)

	// Delete removes the file with the given id. A missing file is reported
	// as [ErrFileNotFound].
	Delete(ctx context.Context, fileID string) error
}

// CredentialProvider hands out OAuth access tokens for third-party APIs.
// Implementations cache the token and refresh it when it expires.
type CredentialProvider interface {
	// Token returns a valid access token, refreshing it if needed.
	Token(ctx context.Context) (*oauth2.Token, error)

	// Refresh forces a new access token. Concurrent calls share one refresh.
	Refresh(ctx context.Context) (*oauth2.Token, error)
}
