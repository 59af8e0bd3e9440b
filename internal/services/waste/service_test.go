package waste

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretedriver/gemba/internal/database"
	"github.com/aretedriver/gemba/internal/models"
)

// setupService creates a waste service over a fresh in-memory store
func setupService(t *testing.T) Service {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	return NewService(database.NewRepository(db))
}

func TestLogRequiresCategory(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, LogRequest{Area: "Dock 1"})
	if !errors.Is(err, models.ErrEmptyCategory) {
		t.Errorf("Log error = %v, want ErrEmptyCategory", err)
	}

	_, err = svc.Log(ctx, LogRequest{Category: "Procrastination"})
	if !errors.Is(err, models.ErrUnknownCategory) {
		t.Errorf("Log error = %v, want ErrUnknownCategory", err)
	}

	observations, err := svc.Observations(ctx)
	if err != nil {
		t.Fatalf("Observations failed: %v", err)
	}
	if len(observations) != 0 {
		t.Errorf("log length after rejections = %d, want 0", len(observations))
	}
}

func TestLogDefaultsCountToOne(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	obs, err := svc.Log(ctx, LogRequest{Category: "Waiting"})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if obs.Count != 1 {
		t.Errorf("Count = %d, want 1", obs.Count)
	}

	_, err = svc.Log(ctx, LogRequest{Category: "Waiting", Count: -2})
	if !errors.Is(err, ErrInvalidCount) {
		t.Errorf("Log error = %v, want ErrInvalidCount", err)
	}
}

func TestLogRejectsOversizedNote(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, LogRequest{
		Category: "Motion",
		Note:     strings.Repeat("x", models.MaxNoteLength+1),
	})
	if !errors.Is(err, ErrNoteTooLong) {
		t.Errorf("Log error = %v, want ErrNoteTooLong", err)
	}
}

func TestSummaryCountsEveryInsertion(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	// Two observations in the same area and category
	for i := 0; i < 2; i++ {
		if _, err := svc.Log(ctx, LogRequest{Category: "Waiting", Area: "Dock 1"}); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}
	if _, err := svc.Log(ctx, LogRequest{Category: "Defects", Area: "Dock 2", Count: 3}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	summary, err := svc.Summary(ctx, SummaryFilter{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	total := 0
	byCategory := map[models.WasteCategory]int{}
	for _, row := range summary {
		byCategory[row.Category] = row.Count
		total += row.Count
	}

	if byCategory[models.WasteWaiting] != 2 {
		t.Errorf("Waiting count = %d, want 2", byCategory[models.WasteWaiting])
	}
	if byCategory[models.WasteDefects] != 3 {
		t.Errorf("Defects count = %d, want 3", byCategory[models.WasteDefects])
	}
	if total != 5 {
		t.Errorf("total aggregated count = %d, want 5", total)
	}
}

func TestSummaryOrdering(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	// Inventory gets 3, Motion and Transport tie at 2
	seed := map[string]int{"Inventory": 3, "Transport": 2, "Motion": 2}
	for category, count := range seed {
		if _, err := svc.Log(ctx, LogRequest{Category: category, Count: count}); err != nil {
			t.Fatalf("Log(%s) failed: %v", category, err)
		}
	}

	summary, err := svc.Summary(ctx, SummaryFilter{})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	want := []models.WasteCategory{models.WasteInventory, models.WasteMotion, models.WasteTransport}
	if len(summary) != len(want) {
		t.Fatalf("summary length = %d, want %d", len(summary), len(want))
	}
	for i, category := range want {
		if summary[i].Category != category {
			t.Errorf("summary[%d].Category = %v, want %v", i, summary[i].Category, category)
		}
	}
}

func TestSummaryFilterByArea(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	if _, err := svc.Log(ctx, LogRequest{Category: "Waiting", Area: "Dock 1", Shift: "day"}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if _, err := svc.Log(ctx, LogRequest{Category: "Waiting", Area: "Dock 2", Shift: "day"}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	summary, err := svc.Summary(ctx, SummaryFilter{Area: "Dock 1"})
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if len(summary) != 1 || summary[0].Count != 1 {
		t.Errorf("filtered summary = %+v, want one Waiting row with count 1", summary)
	}
}

func TestImportValidatesRecords(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	n, err := svc.Import(ctx, []*models.WasteObservation{
		{Category: models.WasteWaiting, Count: 1},
		{Category: "Bogus", Count: 1},
	})
	if !errors.Is(err, models.ErrUnknownCategory) {
		t.Errorf("Import error = %v, want ErrUnknownCategory", err)
	}
	if n != 1 {
		t.Errorf("imported = %d, want 1 before failure", n)
	}
}
