package grid

import "errors"

var (
	// ErrDimension reports input whose side length is not the square of an
	// integer ≥ 2, or whose rows are ragged.
	ErrDimension = errors.New("grid dimension is not a square of an integer >= 2")

	// ErrValue reports a cell value outside 0..side.
	ErrValue = errors.New("cell value out of range")

	// ErrPosition reports a cell position out of bounds.
	ErrPosition = errors.New("position out of bounds")

	// ErrSeedConflict reports two given cells in the same group holding the
	// same value.
	ErrSeedConflict = errors.New("given values conflict")

	// ErrConflict reports an assignment that is impossible in the current
	// state: the value is not a candidate, or a peer is left without
	// candidates.
	ErrConflict = errors.New("assignment violates constraints")
)
