package export

import "errors"

// CSV parsing errors
var (
	// ErrEmptyFile indicates a CSV with no header row
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrBadHeader indicates a header that doesn't match the export format
	ErrBadHeader = errors.New("unexpected CSV header")
)
