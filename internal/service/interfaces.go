package service

import (
	"context"

	"github.com/MKhiriev/resume-shortlister/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityService runs the OTP-gated signup, login and profile lookup.
type IdentityService interface {
	// SignupInit validates the signup, emails an OTP and stages the signup
	// until it is verified. A repeated call for the same email replaces the
	// staged signup.
	SignupInit(ctx context.Context, req models.SignupInitRequest) error

	// SignupVerify creates the user staged for req.Email when req.OTP matches.
	SignupVerify(ctx context.Context, req models.SignupVerifyRequest) error

	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	CurrentUser(ctx context.Context, userID string) (models.Profile, error)
}

// TokenAuthority issues and validates bearer session tokens.
type TokenAuthority interface {
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Validate returns the user id carried by tokenString. Every failure is
	// reported as [ErrInvalidToken].
	Validate(ctx context.Context, tokenString string) (string, error)
}

// JobDescriptionService manages the JDs of the calling user. token is the
// caller's bearer token, forwarded to the scorer.
type JobDescriptionService interface {
	Submit(ctx context.Context, userID, token string, in models.JobDescriptionInput) (models.JobDescription, error)
	Update(ctx context.Context, userID, token, jdID string, in models.JobDescriptionInput) error
	Delete(ctx context.Context, userID, jdID string) error
	History(ctx context.Context, userID string) ([]models.JobDescription, error)
}

// ScoreService ingests and reports AI candidate scores.
type ScoreService interface {
	// StoreBulk stores all results or none and returns how many were stored.
	StoreBulk(ctx context.Context, userID string, in []models.AIResultInput) (int, error)
	Results(ctx context.Context, userID, jdID string) ([]models.AIResult, error)
	Count(ctx context.Context, userID, jdID string) (int64, error)
}

// FileService stores resume files.
type FileService interface {
	// Upload stores every file independently and reports a result per file.
	// It fails only when no file was given or every file failed.
	Upload(ctx context.Context, files []models.UploadFile) ([]models.UploadResult, error)
	Delete(ctx context.Context, fileID string) error
}

// AppInfoService reports build and liveness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Status(ctx context.Context) models.MessageResponse
}
