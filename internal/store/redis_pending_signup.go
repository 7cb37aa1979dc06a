package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/redis/go-redis/v9"
)

const pendingSignupKeyPrefix = "signup:pending:"

// pendingSignupStorage keeps staged signups in Redis as JSON, keyed by email.
type pendingSignupStorage struct {
	rdb    redis.Cmdable
	logger *logger.Logger
}

func NewPendingSignupStorage(rdb redis.Cmdable, logger *logger.Logger) PendingSignupStorage {
	logger.Debug().Msg("creating pending signup storage")
	return &pendingSignupStorage{
		rdb:    rdb,
		logger: logger,
	}
}

func pendingSignupKey(email string) string {
	return pendingSignupKeyPrefix + email
}

func (s *pendingSignupStorage) Save(ctx context.Context, signup models.PendingSignup, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(signup)
	if err != nil {
		return fmt.Errorf("marshal pending signup: %w", err)
	}

	if err = s.rdb.Set(ctx, pendingSignupKey(signup.Email), payload, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*pendingSignupStorage.Save").Msg("error staging signup")
		return fmt.Errorf("%w: %w", ErrRedis, err)
	}

	return nil
}

func (s *pendingSignupStorage) Get(ctx context.Context, email string) (models.PendingSignup, error) {
	log := logger.FromContext(ctx)

	payload, err := s.rdb.Get(ctx, pendingSignupKey(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PendingSignup{}, ErrPendingSignupNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*pendingSignupStorage.Get").Msg("error loading pending signup")
		return models.PendingSignup{}, fmt.Errorf("%w: %w", ErrRedis, err)
	}

	var signup models.PendingSignup
	if err = json.Unmarshal(payload, &signup); err != nil {
		return models.PendingSignup{}, fmt.Errorf("unmarshal pending signup: %w", err)
	}

	return signup, nil
}

func (s *pendingSignupStorage) Delete(ctx context.Context, email string) error {
	if err := s.rdb.Del(ctx, pendingSignupKey(email)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pendingSignupStorage.Delete").Msg("error deleting pending signup")
		return fmt.Errorf("%w: %w", ErrRedis, err)
	}
	return nil
}
