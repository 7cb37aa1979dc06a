package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/internal/store"
	"github.com/MKhiriev/resume-shortlister/internal/utils"
	"github.com/MKhiriev/resume-shortlister/internal/validators"
	"github.com/MKhiriev/resume-shortlister/internal/workers"
	"github.com/MKhiriev/resume-shortlister/models"
)

// jobDescriptionService implements [JobDescriptionService]. Every change to a
// JD is followed by a best-effort scoring notification; updates first drop
// the results scored against the previous version.
type jobDescriptionService struct {
	jdRepository     store.JobDescriptionRepository
	resultRepository store.AIResultRepository
	dispatcher       workers.ScoringDispatcher
	validator        validators.Validator
	ids              *utils.UUIDGenerator

	logger *logger.Logger
}

func NewJobDescriptionService(
	jds store.JobDescriptionRepository,
	results store.AIResultRepository,
	dispatcher workers.ScoringDispatcher,
	validator validators.Validator,
	logger *logger.Logger,
) JobDescriptionService {
	return &jobDescriptionService{
		jdRepository:     jds,
		resultRepository: results,
		dispatcher:       dispatcher,
		validator:        validator,
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

func (s *jobDescriptionService) Submit(ctx context.Context, userID, token string, in models.JobDescriptionInput) (models.JobDescription, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.JobDescription{}, invalid(err)
	}

	jd, err := s.jdRepository.Create(ctx, models.JobDescription{
		JDID:             s.ids.Generate(),
		UserID:           userID,
		JobTitle:         in.JobTitle,
		JobDescription:   in.JobDescription,
		Skills:           in.Skills,
		ResumeDriveLinks: withLinks(in.ResumeDriveLinks),
	})
	if err != nil {
		return models.JobDescription{}, fmt.Errorf("create job description: %w", err)
	}

	logger.FromContext(ctx).Info().Str("jd_id", jd.JDID).Msg("job description submitted")
	s.dispatcher.Dispatch(ctx, models.NewScoringRequest(jd), token)

	return jd, nil
}

// Update overwrites the JD, removes its stale results and notifies the
// scorer. The steps are not atomic: a failure after the JD is written leaves
// the old results in place and reports an internal error.
func (s *jobDescriptionService) Update(ctx context.Context, userID, token, jdID string, in models.JobDescriptionInput) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(jdID) {
		return ErrJDNotFound
	}
	if err := s.validator.Validate(ctx, in); err != nil {
		return invalid(err)
	}

	jd := models.JobDescription{
		JDID:             jdID,
		UserID:           userID,
		JobTitle:         in.JobTitle,
		JobDescription:   in.JobDescription,
		Skills:           in.Skills,
		ResumeDriveLinks: withLinks(in.ResumeDriveLinks),
	}

	if err := s.jdRepository.Update(ctx, jd); err != nil {
		if errors.Is(err, store.ErrJobDescriptionNotFound) {
			return ErrJDNotFound
		}
		return fmt.Errorf("update job description: %w", err)
	}

	removed, err := s.resultRepository.DeleteByJD(ctx, jdID)
	if err != nil {
		return fmt.Errorf("delete stale ai results: %w", err)
	}
	log.Info().Str("jd_id", jdID).Int64("removed_results", removed).Msg("job description updated")

	s.dispatcher.Dispatch(ctx, models.NewScoringRequest(jd), token)
	return nil
}

// Delete removes the JD; its results are removed with it.
func (s *jobDescriptionService) Delete(ctx context.Context, userID, jdID string) error {
	if !utils.IsValidID(jdID) {
		return ErrJDNotFound
	}

	if err := s.jdRepository.Delete(ctx, jdID, userID); err != nil {
		if errors.Is(err, store.ErrJobDescriptionNotFound) {
			return ErrJDNotFound
		}
		return fmt.Errorf("delete job description: %w", err)
	}

	logger.FromContext(ctx).Info().Str("jd_id", jdID).Msg("job description deleted")
	return nil
}

func (s *jobDescriptionService) History(ctx context.Context, userID string) ([]models.JobDescription, error) {
	history, err := s.jdRepository.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list job descriptions: %w", err)
	}
	return history, nil
}

func withLinks(links models.Links) models.Links {
	if links == nil {
		return models.Links{}
	}
	return links
}
