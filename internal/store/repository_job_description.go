package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
)

// jobDescriptionRepository is the PostgreSQL-backed [JobDescriptionRepository].
type jobDescriptionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewJobDescriptionRepository(db *DB, logger *logger.Logger) JobDescriptionRepository {
	logger.Debug().Msg("creating job description repository")
	return &jobDescriptionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts jd and returns it with the database-assigned CreatedAt.
func (r *jobDescriptionRepository) Create(ctx context.Context, jd models.JobDescription) (models.JobDescription, error) {
	log := logger.FromContext(ctx)

	if jd.ResumeDriveLinks == nil {
		jd.ResumeDriveLinks = models.Links{}
	}

	row := r.db.QueryRowContext(ctx, createJobDescription, jd.JDID, jd.UserID, jd.JobTitle, jd.JobDescription, jd.Skills, jd.ResumeDriveLinks)
	if err := row.Scan(&jd.CreatedAt); err != nil {
		log.Err(err).Str("func", "*jobDescriptionRepository.Create").Msg("error inserting job description")
		return models.JobDescription{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return jd, nil
}

// Update overwrites the mutable fields of the JD matching both jd.JDID and
// jd.UserID. No matching row yields [ErrJobDescriptionNotFound].
func (r *jobDescriptionRepository) Update(ctx context.Context, jd models.JobDescription) error {
	log := logger.FromContext(ctx)

	if jd.ResumeDriveLinks == nil {
		jd.ResumeDriveLinks = models.Links{}
	}

	result, err := r.db.ExecContext(ctx, updateJobDescription, jd.JobTitle, jd.JobDescription, jd.Skills, jd.ResumeDriveLinks, jd.JDID, jd.UserID)
	if err != nil {
		log.Err(err).Str("func", "*jobDescriptionRepository.Update").Msg("error updating job description")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

// Delete removes the JD owned by userID. Its AI results go with it through
// the foreign key cascade.
func (r *jobDescriptionRepository) Delete(ctx context.Context, jdID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteJobDescription, jdID, userID)
	if err != nil {
		log.Err(err).Str("func", "*jobDescriptionRepository.Delete").Msg("error deleting job description")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

func (r *jobDescriptionRepository) ListByOwner(ctx context.Context, userID string) ([]models.JobDescription, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listJobDescriptions, userID)
	if err != nil {
		log.Err(err).Str("func", "*jobDescriptionRepository.ListByOwner").Msg("error listing job descriptions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	history := make([]models.JobDescription, 0)
	for rows.Next() {
		var jd models.JobDescription
		if err = rows.Scan(&jd.JDID, &jd.UserID, &jd.JobTitle, &jd.JobDescription, &jd.Skills, &jd.ResumeDriveLinks, &jd.CreatedAt); err != nil {
			log.Err(err).Str("func", "*jobDescriptionRepository.ListByOwner").Msg("error scanning job description")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		history = append(history, jd)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return history, nil
}

func (r *jobDescriptionRepository) CountOwned(ctx context.Context, userID string, jdIDs []string) (int, error) {
	log := logger.FromContext(ctx)

	if len(jdIDs) == 0 {
		return 0, nil
	}

	query, args, err := buildCountOwnedQuery(userID, jdIDs)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*jobDescriptionRepository.CountOwned").Msg("error counting owned job descriptions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireAffected(result rowsAffecter) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrJobDescriptionNotFound
	}
	return nil
}
