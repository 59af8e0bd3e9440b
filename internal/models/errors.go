package models

import "errors"

// Domain errors shared across services
var (
	// ErrEmptyCategory indicates a waste observation without a category
	ErrEmptyCategory = errors.New("waste category is required")

	// ErrUnknownCategory indicates a category outside the fixed set of seven
	ErrUnknownCategory = errors.New("unknown waste category")

	// ErrInvalidStatus indicates a status outside open/in-progress/done
	ErrInvalidStatus = errors.New("invalid kaizen status")

	// ErrAlreadyDone indicates an attempt to advance a finished item
	ErrAlreadyDone = errors.New("kaizen item is already done")

	// ErrBackwardTransition indicates an attempt to move a kaizen item
	// backward in its lifecycle; progress is forward-only
	ErrBackwardTransition = errors.New("kaizen status cannot move backward")
)
