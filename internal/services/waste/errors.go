package waste

import "errors"

// Validation errors
var (
	// ErrInvalidCount indicates an observation count below 1
	ErrInvalidCount = errors.New("observation count must be at least 1")

	// ErrNoteTooLong indicates a free-text note over the length cap
	ErrNoteTooLong = errors.New("observation note is too long")
)
