package models

import (
	"strings"
	"time"
)

// WasteCategory is one of the seven classic lean wastes.
// The set is fixed; user input is parsed against it rather than stored as
// free text so aggregation keys are always well-formed.
type WasteCategory string

const (
	WasteTransport      WasteCategory = "Transport"
	WasteInventory      WasteCategory = "Inventory"
	WasteMotion         WasteCategory = "Motion"
	WasteWaiting        WasteCategory = "Waiting"
	WasteOverproduction WasteCategory = "Overproduction"
	WasteOverprocessing WasteCategory = "Overprocessing"
	WasteDefects        WasteCategory = "Defects"
)

// AllWasteCategories returns the seven categories in display order
func AllWasteCategories() []WasteCategory {
	return []WasteCategory{
		WasteTransport,
		WasteInventory,
		WasteMotion,
		WasteWaiting,
		WasteOverproduction,
		WasteOverprocessing,
		WasteDefects,
	}
}

// IsValid reports whether the category is a member of the fixed set
func (c WasteCategory) IsValid() bool {
	switch c {
	case WasteTransport, WasteInventory, WasteMotion, WasteWaiting,
		WasteOverproduction, WasteOverprocessing, WasteDefects:
		return true
	}
	return false
}

// ParseWasteCategory resolves a user-supplied string to a category,
// case-insensitively. Returns ErrUnknownCategory for anything outside
// the fixed set and ErrEmptyCategory for the empty string.
func ParseWasteCategory(s string) (WasteCategory, error) {
	if s == "" {
		return "", ErrEmptyCategory
	}
	for _, c := range AllWasteCategories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// WasteObservation is a single gemba observation recorded on the floor.
// Observations are append-only and ordered by insertion.
type WasteObservation struct {
	ID        int
	Area      string
	Shift     string
	Category  WasteCategory
	Count     int
	Note      string
	CreatedAt time.Time
}

// CategorySummary is one row of the group-by-category aggregation used to
// drive the waste bar chart. Rows are ordered descending by count with ties
// broken by category name ascending.
type CategorySummary struct {
	Category WasteCategory
	Count    int
}
