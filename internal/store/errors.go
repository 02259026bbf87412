package store

import "errors"

// Sentinel errors returned by [Medium] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Medium.Get when nothing is stored under
	// the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnknownDriver is returned by [NewMedium] for a driver name it does
	// not recognise.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite medium when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning values during multi-row
	// iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
