package database

import (
	"database/sql"
	"time"
)

// nullFloat64ToPtr converts sql.NullFloat64 to *float64.
// Returns nil if the value is not valid.
func nullFloat64ToPtr(nv sql.NullFloat64) *float64 {
	if nv.Valid {
		val := nv.Float64
		return &val
	}
	return nil
}

// nullTimeToPtr converts sql.NullTime to *time.Time.
// Returns nil if the value is not valid.
func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}
