package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every repository used by the service layer.
type Storages struct {
	UserRepository           UserRepository
	PendingSignupStorage     PendingSignupStorage
	JobDescriptionRepository JobDescriptionRepository
	AIResultRepository       AIResultRepository

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL and Redis, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	rdb, err := NewConnectRedis(ctx, cfg.Redis, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		PendingSignupStorage:     NewPendingSignupStorage(rdb, log),
		JobDescriptionRepository: NewJobDescriptionRepository(db, log),
		AIResultRepository:       NewAIResultRepository(db, log),
		db:                       db,
		redis:                    rdb,
	}, nil
}

// Close releases both connections.
func (s *Storages) Close() error {
	var dbErr, redisErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.redis != nil {
		redisErr = s.redis.Close()
	}
	if dbErr != nil {
		return dbErr
	}
	return redisErr
}
