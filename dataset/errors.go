package dataset

import "errors"

// Errors returned by the dataset package.
var (
	// ErrColumnNotFound is returned when a column name is not part of the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrDuplicateColumn is returned when adding a column whose name is already taken.
	ErrDuplicateColumn = errors.New("column already exists")

	// ErrDuplicateTable is returned when adding a table whose name is already taken.
	ErrDuplicateTable = errors.New("table already exists")

	// ErrForeignRow is returned when a row created by one table is added to another.
	ErrForeignRow = errors.New("row belongs to a different table")

	// ErrRowAttached is returned when the same row is added twice.
	ErrRowAttached = errors.New("row already belongs to the table")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrNilTable is returned when a required table is nil.
	ErrNilTable = errors.New("table is nil")
)
