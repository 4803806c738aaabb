package game

import "errors"

// Validation errors are surfaced to callers as typed failures and never
// silently corrected: they indicate a caller bug, not a recoverable state.
var (
	// ErrInvalidCoordinate reports a coordinate outside the board layout.
	ErrInvalidCoordinate = errors.New("coordinate is not on the board")

	// ErrEmptyBag reports a draw from an exhausted tile bag.
	ErrEmptyBag = errors.New("tile bag is empty")

	// ErrInvalidIndex reports an out-of-range market index.
	ErrInvalidIndex = errors.New("market index out of range")

	// ErrIllegalAction reports a placement or selection that violates the
	// current legality of the state.
	ErrIllegalAction = errors.New("action is not legal in this state")
)
