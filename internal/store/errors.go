package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemAlreadyExists is returned when an item with the same serial
	// number is already stored.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrItemNotFound is returned when no item matches the requested kind,
	// type identifier and serial number.
	ErrItemNotFound = errors.New("item was not found")

	// ErrContentNotFound is returned when an item has no content row.
	ErrContentNotFound = errors.New("item content was not found")

	// ErrRegistrationNotFound is returned when the device is not registered
	// for the item.
	ErrRegistrationNotFound = errors.New("registration was not found")

	// ErrAlreadyPersonalized is returned when personalization info is
	// stored twice for the same item.
	ErrAlreadyPersonalized = errors.New("item is already personalized")
)

// Connection errors.
var (
	// ErrEmptyDSN is returned when no data source name is configured.
	ErrEmptyDSN = errors.New("database dsn is empty")

	// ErrUnsupportedDSN is returned for a URL scheme no backend handles.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrConnectingDatabase is returned when the database cannot be opened
	// or does not answer the start-up ping.
	ErrConnectingDatabase = errors.New("error connecting database")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
