package capacity

import "errors"

// Validation errors
var (
	ErrNonPositiveGoal        = errors.New("daily throughput goal must be positive")
	ErrNonPositiveHours       = errors.New("working hours must be positive")
	ErrNonPositiveInstallTime = errors.New("install minutes per unit must be positive")
	ErrNegativeHeadcount      = errors.New("headcounts cannot be negative")
)
