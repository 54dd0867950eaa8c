package cx

import "errors"

var (
	// ErrNullCursor is returned for queries on the zero Cursor.
	ErrNullCursor = errors.New("null cursor")

	// ErrUnitDisposed is returned for queries on a cursor whose translation
	// unit has been disposed.
	ErrUnitDisposed = errors.New("translation unit disposed")

	// ErrForeignCursor is returned when a cursor token does not match the
	// unit it points to.
	ErrForeignCursor = errors.New("cursor does not belong to the unit")

	// ErrInvalidCursor is returned for cursors pointing outside the unit arena.
	ErrInvalidCursor = errors.New("invalid cursor")
)
