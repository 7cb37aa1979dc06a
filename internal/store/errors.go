package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when inserting a user violates the
	// unique email index.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPendingSignupNotFound is returned when no signup is staged for an email.
	ErrPendingSignupNotFound = errors.New("pending signup was not found")

	// ErrJobDescriptionNotFound is returned when no JD matches both the id
	// and the owner.
	ErrJobDescriptionNotFound = errors.New("job description was not found")

	// ErrJobDescriptionNotOwned is returned when an insert references a JD
	// that does not exist.
	ErrJobDescriptionNotOwned = errors.New("job description does not exist")

	// ErrResultsNotSaved is returned when a batch insert affects fewer rows
	// than it carried.
	ErrResultsNotSaved = errors.New("ai results were not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when a transaction cannot be started.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when a transaction cannot be committed.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrRedis is returned when the pending-signup store cannot be reached.
	ErrRedis = errors.New("redis error")
)
