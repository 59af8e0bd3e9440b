package takt

import "errors"

// Validation errors
var (
	// ErrNonPositiveAvailable indicates available time of zero or less
	ErrNonPositiveAvailable = errors.New("available time must be positive")

	// ErrNonPositiveDemand indicates a demand of zero or less; demand is the
	// divisor, so this also guards the division
	ErrNonPositiveDemand = errors.New("demand must be a positive integer")

	// ErrNonPositiveCycle indicates a recorded cycle time of zero or less
	ErrNonPositiveCycle = errors.New("cycle time must be positive when given")
)
