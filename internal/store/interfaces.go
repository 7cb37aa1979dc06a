package store

import (
	"context"
	"time"

	"github.com/MKhiriev/resume-shortlister/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ListPasswordHashes returns the hashes of the limit most recent users.
	ListPasswordHashes(ctx context.Context, limit int) ([]string, error)
}

// PendingSignupStorage stages signups awaiting OTP verification, one per email.
type PendingSignupStorage interface {
	// Save overwrites any pending signup for the same email. A zero ttl
	// keeps the record until it is deleted.
	Save(ctx context.Context, signup models.PendingSignup, ttl time.Duration) error
	Get(ctx context.Context, email string) (models.PendingSignup, error)
	Delete(ctx context.Context, email string) error
}

// JobDescriptionRepository is the ownership-scoped JD store. Every method
// that takes a userID only touches rows owned by that user.
type JobDescriptionRepository interface {
	Create(ctx context.Context, jd models.JobDescription) (models.JobDescription, error)
	Update(ctx context.Context, jd models.JobDescription) error
	Delete(ctx context.Context, jdID, userID string) error
	ListByOwner(ctx context.Context, userID string) ([]models.JobDescription, error)
	// CountOwned returns how many of jdIDs exist and belong to userID.
	CountOwned(ctx context.Context, userID string, jdIDs []string) (int, error)
}

// AIResultRepository stores candidate scores.
type AIResultRepository interface {
	// SaveBatch inserts all results in one statement.
	SaveBatch(ctx context.Context, results []models.AIResult) error
	DeleteByJD(ctx context.Context, jdID string) (int64, error)
	ListByJD(ctx context.Context, jdID, userID string) ([]models.AIResult, error)
	CountByJD(ctx context.Context, jdID, userID string) (int64, error)
}
