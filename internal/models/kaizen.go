package models

import "time"

// KaizenStatus is the lifecycle state of a backlog item
type KaizenStatus string

const (
	StatusOpen       KaizenStatus = "open"
	StatusInProgress KaizenStatus = "in-progress"
	StatusDone       KaizenStatus = "done"
)

// IsValid reports whether the status is a member of the fixed set
func (s KaizenStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Next returns the status that follows s in the forward-only lifecycle.
// Returns ErrAlreadyDone when the item is already done.
func (s KaizenStatus) Next() (KaizenStatus, error) {
	switch s {
	case StatusOpen:
		return StatusInProgress, nil
	case StatusInProgress:
		return StatusDone, nil
	case StatusDone:
		return "", ErrAlreadyDone
	}
	return "", ErrInvalidStatus
}

// rank orders statuses for the monotonic-progress check
func (s KaizenStatus) rank() int {
	switch s {
	case StatusOpen:
		return 0
	case StatusInProgress:
		return 1
	case StatusDone:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to target is a legal
// forward transition. Progress is monotonic: open → in-progress → done,
// skipping straight to done is allowed, moving backward is not.
func (s KaizenStatus) CanTransitionTo(target KaizenStatus) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	return target.rank() > s.rank()
}

// ParseKaizenStatus resolves a user-supplied string to a status
func ParseKaizenStatus(str string) (KaizenStatus, error) {
	s := KaizenStatus(str)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// KaizenItem is a continuous-improvement backlog entry. Unlike takt
// scenarios and waste observations, items are mutable and deletable.
type KaizenItem struct {
	ID          int
	Description string
	Impact      int // 1..5
	Effort      int // 1..5
	DueDate     *time.Time
	Status      KaizenStatus
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Leverage is the impact-to-effort ratio used to flag quick wins
func (k *KaizenItem) Leverage() float64 {
	if k.Effort == 0 {
		return 0
	}
	return float64(k.Impact) / float64(k.Effort)
}

// IsQuickWin reports whether the item clears the quick-win threshold
func (k *KaizenItem) IsQuickWin() bool {
	return k.Leverage() >= QuickWinThreshold
}
