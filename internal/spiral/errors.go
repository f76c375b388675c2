package spiral

import "errors"

// Domain errors for parameter validation.
var (
	// ErrInvalidParams indicates an animation parameter outside its valid range.
	ErrInvalidParams = errors.New("spiral: invalid animation parameters")
)
