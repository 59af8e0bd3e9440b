package kaizen

import "errors"

// Kaizen-related errors
var (
	// Validation errors
	ErrEmptyDescription   = errors.New("kaizen description cannot be empty")
	ErrDescriptionTooLong = errors.New("kaizen description is too long")
	ErrInvalidImpact      = errors.New("impact must be between 1 and 5")
	ErrInvalidEffort      = errors.New("effort must be between 1 and 5")
	ErrInvalidItemID      = errors.New("invalid kaizen item ID")

	// Business logic errors
	ErrItemNotFound = errors.New("kaizen item not found")
)
