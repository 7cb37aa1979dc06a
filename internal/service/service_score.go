package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/store"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/internal/validators"
	"github.com/MKhiriev/resume-shortlister/models"
)

type scoreService struct {
	jdRepository     store.JobDescriptionRepository
	resultRepository store.AIResultRepository
	validator        validators.Validator
	ids              *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewScoreService(
	jds store.JobDescriptionRepository,
	results store.AIResultRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ScoreService {
	return &scoreService{
		jdRepository:     jds,
		resultRepository: results,
		validator:        validator,
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

// maxResultsPerBatch bounds one /ai/store request.
const maxResultsPerBatch = 10000

// StoreBulk validates every entry, requires each referenced JD to belong to
// userID and stores the batch atomically.
func (s *scoreService) StoreBulk(ctx context.Context, userID string, in []models.AIResultInput) (int, error) {
	if len(in) == 0 {
		return 0, ErrNoResultsProvided
	}

	if len(in) > maxResultsPerBatch {
		return 0, ErrTooManyResults
	}

	jdIDs := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, entry := range in {
		if err := s.validator.Validate(ctx, entry); err != nil {
			return 0, invalid(err)
		}
		if _, ok := seen[entry.JDID]; !ok {
			seen[entry.JDID] = struct{}{}
			jdIDs = append(jdIDs, entry.JDID)
		}
	}

	owned, err := s.jdRepository.CountOwned(ctx, userID, jdIDs)
	if err != nil {
		return 0, fmt.Errorf("check job description ownership: %w", err)
	}
	if owned != len(jdIDs) {
		return 0, ErrJDNotFound
	}

	now := s.now().UTC()
	results := make([]models.AIResult, 0, len(in))
	for _, entry := range in {
		result := models.NewAIResult(entry, userID)
		result.ID = s.ids.Generate()
		result.CreatedAt = now
		results = append(results, result)
	}

	if err = s.resultRepository.SaveBatch(ctx, results); err != nil {
		if errors.Is(err, store.ErrJobDescriptionNotOwned) {
			return 0, ErrJDNotFound
		}
		return 0, fmt.Errorf("store ai results: %w", err)
	}

	logger.FromContext(ctx).Info().Int("count", len(results)).Msg("ai results stored")
	return len(results), nil
}

func (s *scoreService) Results(ctx context.Context, userID, jdID string) ([]models.AIResult, error) {
	if !utils.IsValidID(jdID) {
		return nil, ErrInvalidJDID
	}

	results, err := s.resultRepository.ListByJD(ctx, jdID, userID)
	if err != nil {
		return nil, fmt.Errorf("list ai results: %w", err)
	}
	return results, nil
}

// Count reports the number of results for the JD. A malformed jd_id is a
// validation error, never zero.
func (s *scoreService) Count(ctx context.Context, userID, jdID string) (int64, error) {
	if !utils.IsValidID(jdID) {
		return 0, ErrInvalidJDID
	}

	count, err := s.resultRepository.CountByJD(ctx, jdID, userID)
	if err != nil {
		return 0, fmt.Errorf("count ai results: %w", err)
	}
	return count, nil
}
