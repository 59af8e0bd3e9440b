package models

// ============================================================================
// SCORE CONSTANTS
// ============================================================================

// Impact and effort scores for kaizen items are constrained to a 1-5 scale
const (
	MinScore = 1
	MaxScore = 5
)

// ============================================================================
// QUICK WIN CONSTANTS
// ============================================================================

// QuickWinThreshold is the leverage (impact/effort) at or above which an
// item is flagged as a quick win
const QuickWinThreshold = 2.0

// ============================================================================
// OBSERVATION CONSTANTS
// ============================================================================

// DefaultObservationCount is the count recorded when a waste observation
// is logged without one
const DefaultObservationCount = 1

// MaxNoteLength caps free-text notes on waste observations
const MaxNoteLength = 1000

// MaxDescriptionLength caps kaizen item descriptions
const MaxDescriptionLength = 500
