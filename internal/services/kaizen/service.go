// Package kaizen implements the continuous-improvement backlog with
// leverage scoring and forward-only status transitions.
package kaizen

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aretedriver/gemba/internal/database"
	"github.com/aretedriver/gemba/internal/models"
)

// Service defines all kaizen backlog business operations
type Service interface {
	// Create validates and adds a backlog item with status open
	Create(ctx context.Context, req CreateRequest) (*models.KaizenItem, error)

	// Backlog returns all items in insertion order
	Backlog(ctx context.Context) ([]*models.KaizenItem, error)

	// QuickWins returns items whose leverage clears the quick-win threshold
	QuickWins(ctx context.Context) ([]*models.KaizenItem, error)

	// Get retrieves one item
	Get(ctx context.Context, id int) (*models.KaizenItem, error)

	// Update edits an item's fields in place. Nil pointer fields are left
	// untouched.
	Update(ctx context.Context, req UpdateRequest) error

	// Advance moves an item to the next lifecycle status
	Advance(ctx context.Context, id int) (*models.KaizenItem, error)

	// SetStatus moves an item to an explicit status. Backward transitions
	// are rejected: progress is monotonic.
	SetStatus(ctx context.Context, id int, status models.KaizenStatus) error

	// Delete removes an item from the backlog
	Delete(ctx context.Context, id int) error
}

// CreateRequest encapsulates all data needed to create a backlog item
type CreateRequest struct {
	Description string
	Impact      int // 1..5
	Effort      int // 1..5
	DueDate     *time.Time
	Owner       string
}

// UpdateRequest encapsulates an in-place edit.
// Fields with pointers are optional - nil means don't update.
type UpdateRequest struct {
	ID          int
	Description *string
	Impact      *int
	Effort      *int
	DueDate     *time.Time
	Owner       *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new kaizen service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.KaizenItem, error) {
	if req.Description == "" {
		return nil, ErrEmptyDescription
	}
	if len(req.Description) > models.MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if req.Impact < models.MinScore || req.Impact > models.MaxScore {
		return nil, ErrInvalidImpact
	}
	if req.Effort < models.MinScore || req.Effort > models.MaxScore {
		return nil, ErrInvalidEffort
	}

	item, err := s.repo.CreateKaizenItem(ctx, req.Description, req.Impact, req.Effort, req.DueDate, req.Owner)
	if err != nil {
		return nil, fmt.Errorf("failed to create kaizen item: %w", err)
	}

	return item, nil
}

func (s *service) Backlog(ctx context.Context) ([]*models.KaizenItem, error) {
	items, err := s.repo.GetKaizenItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load kaizen backlog: %w", err)
	}
	return items, nil
}

func (s *service) QuickWins(ctx context.Context) ([]*models.KaizenItem, error) {
	items, err := s.Backlog(ctx)
	if err != nil {
		return nil, err
	}

	var wins []*models.KaizenItem
	for _, item := range items {
		if item.IsQuickWin() {
			wins = append(wins, item)
		}
	}
	return wins, nil
}

func (s *service) Get(ctx context.Context, id int) (*models.KaizenItem, error) {
	if id <= 0 {
		return nil, ErrInvalidItemID
	}
	item, err := s.repo.GetKaizenItemByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kaizen item %d: %w", id, err)
	}
	return item, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) error {
	item, err := s.Get(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Description != nil {
		if *req.Description == "" {
			return ErrEmptyDescription
		}
		if len(*req.Description) > models.MaxDescriptionLength {
			return ErrDescriptionTooLong
		}
		item.Description = *req.Description
	}
	if req.Impact != nil {
		if *req.Impact < models.MinScore || *req.Impact > models.MaxScore {
			return ErrInvalidImpact
		}
		item.Impact = *req.Impact
	}
	if req.Effort != nil {
		if *req.Effort < models.MinScore || *req.Effort > models.MaxScore {
			return ErrInvalidEffort
		}
		item.Effort = *req.Effort
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.Owner != nil {
		item.Owner = *req.Owner
	}

	if err := s.repo.UpdateKaizenItem(ctx, item.ID, item.Description, item.Impact, item.Effort, item.DueDate, item.Owner); err != nil {
		return fmt.Errorf("failed to update kaizen item %d: %w", item.ID, err)
	}
	return nil
}

func (s *service) Advance(ctx context.Context, id int) (*models.KaizenItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := item.Status.Next()
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateKaizenStatus(ctx, id, next); err != nil {
		return nil, fmt.Errorf("failed to advance kaizen item %d: %w", id, err)
	}

	return s.Get(ctx, id)
}

func (s *service) SetStatus(ctx context.Context, id int, status models.KaizenStatus) error {
	if !status.IsValid() {
		return models.ErrInvalidStatus
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if item.Status == status {
		return nil
	}
	if !item.Status.CanTransitionTo(status) {
		return models.ErrBackwardTransition
	}

	if err := s.repo.UpdateKaizenStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to set status on kaizen item %d: %w", id, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	// Verify the item exists so callers get ErrItemNotFound instead of a
	// silent no-op delete
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteKaizenItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete kaizen item %d: %w", id, err)
	}
	return nil
}
