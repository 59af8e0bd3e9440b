package database

import (
	"context"
	"testing"
	"time"

	"github.com/aretedriver/gemba/internal/models"
)

// ============================================================================
// TAKT HISTORY
// ============================================================================

func TestCreateTaktScenario(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	s, err := repo.CreateTaktScenario(ctx, "Morning run", 480, 120, 4.0, nil)
	if err != nil {
		t.Fatalf("CreateTaktScenario failed: %v", err)
	}

	if s.ID == 0 {
		t.Error("expected scenario to get an ID")
	}
	if s.TaktMinutes != 4.0 {
		t.Errorf("TaktMinutes = %v, want 4.0", s.TaktMinutes)
	}
	if s.CycleMinutes != nil {
		t.Errorf("CycleMinutes = %v, want nil", *s.CycleMinutes)
	}
	if s.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestTaktHistoryOrderedByInsertion(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if _, err := repo.CreateTaktScenario(ctx, name, 480, 120, 4.0, nil); err != nil {
			t.Fatalf("CreateTaktScenario(%q) failed: %v", name, err)
		}
	}

	history, err := repo.GetTaktHistory(ctx)
	if err != nil {
		t.Fatalf("GetTaktHistory failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	for i, name := range names {
		if history[i].Name != name {
			t.Errorf("history[%d].Name = %q, want %q", i, history[i].Name, name)
		}
	}

	count, err := repo.CountTaktScenarios(ctx)
	if err != nil {
		t.Fatalf("CountTaktScenarios failed: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestTaktScenarioCycleTimeRoundTrip(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	cycle := 4.5
	s, err := repo.CreateTaktScenario(ctx, "", 480, 120, 4.0, &cycle)
	if err != nil {
		t.Fatalf("CreateTaktScenario failed: %v", err)
	}
	if s.CycleMinutes == nil || *s.CycleMinutes != 4.5 {
		t.Errorf("CycleMinutes = %v, want 4.5", s.CycleMinutes)
	}
}

// ============================================================================
// WASTE LOG
// ============================================================================

func TestWasteSummaryGroupsAndOrders(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	inserts := []struct {
		category models.WasteCategory
		count    int
	}{
		{models.WasteWaiting, 1},
		{models.WasteWaiting, 1},
		{models.WasteDefects, 2},
		{models.WasteMotion, 2},
		{models.WasteTransport, 5},
	}
	for _, in := range inserts {
		if _, err := repo.CreateWasteObservation(ctx, "Dock 1", "day", in.category, in.count, ""); err != nil {
			t.Fatalf("CreateWasteObservation failed: %v", err)
		}
	}

	summary, err := repo.GetWasteSummary(ctx, "", "")
	if err != nil {
		t.Fatalf("GetWasteSummary failed: %v", err)
	}

	// Descending by count; Defects/Motion tie at 2 broken alphabetically
	want := []models.CategorySummary{
		{Category: models.WasteTransport, Count: 5},
		{Category: models.WasteDefects, Count: 2},
		{Category: models.WasteMotion, Count: 2},
		{Category: models.WasteWaiting, Count: 2},
	}
	if len(summary) != len(want) {
		t.Fatalf("summary length = %d, want %d", len(summary), len(want))
	}
	for i, w := range want {
		if summary[i].Category != w.Category || summary[i].Count != w.Count {
			t.Errorf("summary[%d] = %v/%d, want %v/%d", i, summary[i].Category, summary[i].Count, w.Category, w.Count)
		}
	}
}

func TestWasteSummaryFilters(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	seed := []struct {
		area, shift string
		category    models.WasteCategory
	}{
		{"Dock 1", "day", models.WasteWaiting},
		{"Dock 1", "night", models.WasteWaiting},
		{"Dock 2", "day", models.WasteWaiting},
	}
	for _, s := range seed {
		if _, err := repo.CreateWasteObservation(ctx, s.area, s.shift, s.category, 1, ""); err != nil {
			t.Fatalf("CreateWasteObservation failed: %v", err)
		}
	}

	byArea, err := repo.GetWasteSummary(ctx, "Dock 1", "")
	if err != nil {
		t.Fatalf("GetWasteSummary by area failed: %v", err)
	}
	if len(byArea) != 1 || byArea[0].Count != 2 {
		t.Errorf("Dock 1 summary = %+v, want Waiting count 2", byArea)
	}

	byBoth, err := repo.GetWasteSummary(ctx, "Dock 1", "night")
	if err != nil {
		t.Fatalf("GetWasteSummary by area+shift failed: %v", err)
	}
	if len(byBoth) != 1 || byBoth[0].Count != 1 {
		t.Errorf("Dock 1/night summary = %+v, want Waiting count 1", byBoth)
	}
}

func TestImportWasteObservationKeepsTimestamp(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	original := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	imported, err := repo.ImportWasteObservation(ctx, &models.WasteObservation{
		Area:      "Line 3",
		Shift:     "day",
		Category:  models.WasteInventory,
		Count:     2,
		Note:      "pallet staging overflow",
		CreatedAt: original,
	})
	if err != nil {
		t.Fatalf("ImportWasteObservation failed: %v", err)
	}
	if !imported.CreatedAt.Equal(original) {
		t.Errorf("CreatedAt = %v, want %v", imported.CreatedAt, original)
	}
}

// ============================================================================
// KAIZEN BACKLOG
// ============================================================================

func TestKaizenItemLifecycle(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	due := time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second)
	item, err := repo.CreateKaizenItem(ctx, "Move tool crib closer to line", 4, 1, &due, "rios")
	if err != nil {
		t.Fatalf("CreateKaizenItem failed: %v", err)
	}
	if item.Status != models.StatusOpen {
		t.Errorf("Status = %v, want open", item.Status)
	}
	if item.DueDate == nil || !item.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", item.DueDate, due)
	}

	// Edit in place
	if err := repo.UpdateKaizenItem(ctx, item.ID, "Move tool crib", 5, 2, &due, "rios"); err != nil {
		t.Fatalf("UpdateKaizenItem failed: %v", err)
	}
	updated, err := repo.GetKaizenItemByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetKaizenItemByID failed: %v", err)
	}
	if updated.Description != "Move tool crib" || updated.Impact != 5 || updated.Effort != 2 {
		t.Errorf("updated item = %+v", updated)
	}

	// Status change
	if err := repo.UpdateKaizenStatus(ctx, item.ID, models.StatusInProgress); err != nil {
		t.Fatalf("UpdateKaizenStatus failed: %v", err)
	}
	updated, _ = repo.GetKaizenItemByID(ctx, item.ID)
	if updated.Status != models.StatusInProgress {
		t.Errorf("Status = %v, want in-progress", updated.Status)
	}

	// Delete
	if err := repo.DeleteKaizenItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteKaizenItem failed: %v", err)
	}
	items, err := repo.GetKaizenItems(ctx)
	if err != nil {
		t.Fatalf("GetKaizenItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("backlog length after delete = %d, want 0", len(items))
	}
}
