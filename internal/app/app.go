package app

import (
	"github.com/aretedriver/gemba/internal/database"
	capacityservice "github.com/aretedriver/gemba/internal/services/capacity"
	kaizenservice "github.com/aretedriver/gemba/internal/services/kaizen"
	taktservice "github.com/aretedriver/gemba/internal/services/takt"
	wasteservice "github.com/aretedriver/gemba/internal/services/waste"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaktService     taktservice.Service
	WasteService    wasteservice.Service
	KaizenService   kaizenservice.Service
	CapacityService capacityservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore) *App {
	return &App{
		repo:            repo,
		TaktService:     taktservice.NewService(repo),
		WasteService:    wasteservice.NewService(repo),
		KaizenService:   kaizenservice.NewService(repo),
		CapacityService: capacityservice.NewService(),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	return nil
}
