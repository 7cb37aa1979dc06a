package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/resume-shortlister/internal/logger"
	"github.com/MKhiriev/resume-shortlister/models"
	"github.com/jackc/pgerrcode"
)

// aiResultRepository is the PostgreSQL-backed [AIResultRepository].
type aiResultRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAIResultRepository(db *DB, logger *logger.Logger) AIResultRepository {
	logger.Debug().Msg("creating ai result repository")
	return &aiResultRepository{
		db:     db,
		logger: logger,
	}
}

// aiResultInsertChunk keeps one INSERT below PostgreSQL's 65535 bind
// parameter limit (9 columns per row).
const aiResultInsertChunk = 1000

// SaveBatch inserts results in multi-row INSERTs of at most
// aiResultInsertChunk rows inside one transaction, so either all rows are
// stored or none are.
func (r *aiResultRepository) SaveBatch(ctx context.Context, results []models.AIResult) error {
	log := logger.FromContext(ctx)

	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*aiResultRepository.SaveBatch").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for chunk := range slices.Chunk(results, aiResultInsertChunk) {
		query, args, err := buildInsertAIResultsQuery(chunk)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*aiResultRepository.SaveBatch").Int("count", len(chunk)).Msg("error inserting ai results")
			if postgresError(err) == pgerrcode.ForeignKeyViolation {
				return ErrJobDescriptionNotOwned
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n != int64(len(chunk)) {
			return fmt.Errorf("%w: stored %d of %d", ErrResultsNotSaved, n, len(chunk))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*aiResultRepository.SaveBatch").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *aiResultRepository) DeleteByJD(ctx context.Context, jdID string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAIResultsByJD, jdID)
	if err != nil {
		log.Err(err).Str("func", "*aiResultRepository.DeleteByJD").Str("jd_id", jdID).Msg("error deleting ai results")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}

func (r *aiResultRepository) ListByJD(ctx context.Context, jdID, userID string) ([]models.AIResult, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAIResultsByJD, jdID, userID)
	if err != nil {
		log.Err(err).Str("func", "*aiResultRepository.ListByJD").Msg("error listing ai results")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.AIResult, 0)
	for rows.Next() {
		var res models.AIResult
		if err = rows.Scan(&res.ID, &res.JDID, &res.UserID, &res.Name, &res.SkillsScore, &res.JDScore, &res.OverallScore, &res.Description, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (r *aiResultRepository) CountByJD(ctx context.Context, jdID, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countAIResultsByJD, jdID, userID).Scan(&count); err != nil {
		log.Err(err).Str("func", "*aiResultRepository.CountByJD").Msg("error counting ai results")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
