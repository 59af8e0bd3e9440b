package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	capacityservice "github.com/aretedriver/gemba/internal/services/capacity"
	kaizenservice "github.com/aretedriver/gemba/internal/services/kaizen"
	taktservice "github.com/aretedriver/gemba/internal/services/takt"
	wasteservice "github.com/aretedriver/gemba/internal/services/waste"
	"github.com/aretedriver/gemba/internal/tui/state"
)

// formConfig holds configuration for generic form handling
type formConfig struct {
	form       *huh.Form
	setForm    func(*huh.Form)
	clearForm  func()
	onComplete func() // Called when form completes successfully
	confirmPtr *bool  // Pointer to confirmation field for quick save
}

// activeFormConfig returns the form wiring for the active tab
func (m Model) activeFormConfig() formConfig {
	switch m.UiState.ActiveTab() {
	case state.TabTakt:
		return formConfig{
			form:       m.FormState.TaktForm,
			setForm:    func(f *huh.Form) { m.FormState.TaktForm = f },
			clearForm:  m.FormState.ClearTaktForm,
			onComplete: m.submitTaktForm,
			confirmPtr: &m.FormState.FormTaktConfirm,
		}
	case state.TabWaste:
		return formConfig{
			form:       m.FormState.WasteForm,
			setForm:    func(f *huh.Form) { m.FormState.WasteForm = f },
			clearForm:  m.FormState.ClearWasteForm,
			onComplete: m.submitWasteForm,
			confirmPtr: &m.FormState.FormWasteConfirm,
		}
	case state.TabKaizen:
		return formConfig{
			form:       m.FormState.KaizenForm,
			setForm:    func(f *huh.Form) { m.FormState.KaizenForm = f },
			clearForm:  m.FormState.ClearKaizenForm,
			onComplete: m.submitKaizenForm,
			confirmPtr: &m.FormState.FormKaizenConfirm,
		}
	default:
		return formConfig{
			form:       m.FormState.CapacityForm,
			setForm:    func(f *huh.Form) { m.FormState.CapacityForm = f },
			clearForm:  m.FormState.ClearCapacityForm,
			onComplete: m.submitCapacityForm,
			confirmPtr: &m.FormState.FormCapacityConfirm,
		}
	}
}

// updateForm handles all messages while a form is open
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cfg := m.activeFormConfig()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.UiState.SetMode(state.NormalMode)
			cfg.setForm(nil)
			cfg.clearForm()
			return m, tea.ClearScreen

		case m.Config.KeyMappings.SaveForm:
			return m.handleFormSave(cfg)
		}
	}

	return m.handleFormUpdate(msg, cfg)
}

// handleFormUpdate processes form messages generically
func (m Model) handleFormUpdate(msg tea.Msg, cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// Forward to form
	model, cmd := cfg.form.Update(msg)
	cfg.setForm(model.(*huh.Form))

	// Check completion
	if cfg.form.State == huh.StateCompleted {
		cfg.onComplete()
		m.UiState.SetMode(state.NormalMode)
		cfg.setForm(nil)
		cfg.clearForm()
		return m, tea.ClearScreen
	}

	return m, cmd
}

// handleFormSave handles the C-s save shortcut for forms.
// Sets confirmation to true and completes the form, triggering the save flow.
func (m Model) handleFormSave(cfg formConfig) (tea.Model, tea.Cmd) {
	if cfg.form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// Set confirmation to true (user wants to save)
	if cfg.confirmPtr != nil {
		*cfg.confirmPtr = true
	}

	// Mark form as completed to trigger onComplete callback
	cfg.form.State = huh.StateCompleted

	cfg.onComplete()

	// Clean up and return to normal mode
	m.UiState.SetMode(state.NormalMode)
	cfg.setForm(nil)
	cfg.clearForm()

	return m, tea.ClearScreen
}

// submitTaktForm parses the form fields and records the scenario
func (m Model) submitTaktForm() {
	if !m.FormState.FormTaktConfirm {
		return
	}

	available, err := strconv.ParseFloat(strings.TrimSpace(m.FormState.FormAvailable), 64)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Available minutes must be a number")
		return
	}

	demand, err := strconv.Atoi(strings.TrimSpace(m.FormState.FormDemand))
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Demand must be a whole number")
		return
	}

	var cycle *float64
	if raw := strings.TrimSpace(m.FormState.FormCycle); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.NotificationState.Add(state.LevelError, "Cycle minutes must be a number")
			return
		}
		cycle = &v
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	scenario, err := m.App.TaktService.Calculate(ctx, taktservice.CalculateRequest{
		Name:             strings.TrimSpace(m.FormState.FormTaktName),
		AvailableMinutes: available,
		Demand:           demand,
		CycleMinutes:     cycle,
	})
	if err != nil {
		slog.Error("Error recording takt scenario", "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	m.reloadTakt()
	m.UiState.SetSelectedRow(len(m.AppState.Scenarios())-1, len(m.AppState.Scenarios())-1)
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Takt time %.2f min/unit", scenario.TaktMinutes))
}

// submitWasteForm parses the form fields and logs the observation
func (m Model) submitWasteForm() {
	if !m.FormState.FormWasteConfirm {
		return
	}

	count := 0
	if raw := strings.TrimSpace(m.FormState.FormCount); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			m.NotificationState.Add(state.LevelError, "Count must be a whole number")
			return
		}
		count = v
	}

	ctx, cancel := m.dbContext()
	defer cancel()

	obs, err := m.App.WasteService.Log(ctx, wasteservice.LogRequest{
		Area:     strings.TrimSpace(m.FormState.FormArea),
		Shift:    strings.TrimSpace(m.FormState.FormShift),
		Category: m.FormState.FormCategory,
		Count:    count,
		Note:     strings.TrimSpace(m.FormState.FormNote),
	})
	if err != nil {
		slog.Error("Error logging waste observation", "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	m.reloadWaste()
	m.UiState.SetSelectedRow(len(m.AppState.Observations())-1, len(m.AppState.Observations())-1)
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Logged %s x%d", obs.Category, obs.Count))
}

// submitKaizenForm parses the form fields and creates or updates the item
func (m Model) submitKaizenForm() {
	if !m.FormState.FormKaizenConfirm {
		return
	}

	description := strings.TrimSpace(m.FormState.FormDescription)
	if description == "" {
		m.NotificationState.Add(state.LevelError, "Description is required")
		return
	}

	impact, err := strconv.Atoi(m.FormState.FormImpact)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Impact must be scored 1 to 5")
		return
	}
	effort, err := strconv.Atoi(m.FormState.FormEffort)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Effort must be scored 1 to 5")
		return
	}

	var due *time.Time
	if raw := strings.TrimSpace(m.FormState.FormDue); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			m.NotificationState.Add(state.LevelError, "Due date must be YYYY-MM-DD")
			return
		}
		due = &parsed
	}

	owner := strings.TrimSpace(m.FormState.FormOwner)

	ctx, cancel := m.dbContext()
	defer cancel()

	if m.FormState.EditingItemID == 0 {
		item, err := m.App.KaizenService.Create(ctx, kaizenservice.CreateRequest{
			Description: description,
			Impact:      impact,
			Effort:      effort,
			DueDate:     due,
			Owner:       owner,
		})
		if err != nil {
			slog.Error("Error creating kaizen item", "error", err)
			m.NotificationState.Add(state.LevelError, err.Error())
			return
		}
		m.reloadKaizen()
		m.UiState.SetSelectedRow(len(m.AppState.Backlog())-1, len(m.AppState.Backlog())-1)
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Added item %d (leverage %.2f)", item.ID, item.Leverage()))
		return
	}

	err = m.App.KaizenService.Update(ctx, kaizenservice.UpdateRequest{
		ID:          m.FormState.EditingItemID,
		Description: &description,
		Impact:      &impact,
		Effort:      &effort,
		DueDate:     due,
		Owner:       &owner,
	})
	if err != nil {
		slog.Error("Error updating kaizen item", "error", err)
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	m.reloadKaizen()
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Updated item %d", m.FormState.EditingItemID))
}

// submitCapacityForm parses the form fields and computes the plan
func (m Model) submitCapacityForm() {
	if !m.FormState.FormCapacityConfirm {
		return
	}

	goal, err := strconv.Atoi(strings.TrimSpace(m.FormState.FormGoal))
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Daily goal must be a whole number")
		return
	}

	hours := 0.0
	if raw := strings.TrimSpace(m.FormState.FormHours); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.NotificationState.Add(state.LevelError, "Working hours must be a number")
			return
		}
		hours = v
	}

	installMinutes, err := strconv.ParseFloat(strings.TrimSpace(m.FormState.FormInstallMinutes), 64)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Install minutes must be a number")
		return
	}

	installers, err := parseHeadcount(m.FormState.FormInstallers)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Installers must be a whole number")
		return
	}
	qaStaff, err := parseHeadcount(m.FormState.FormQAStaff)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "QA staff must be a whole number")
		return
	}
	drivers, err := parseHeadcount(m.FormState.FormShuttleDrivers)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Shuttle drivers must be a whole number")
		return
	}

	plan, err := m.App.CapacityService.Plan(capacityservice.PlanRequest{
		DailyGoal:      goal,
		WorkingHours:   hours,
		Installers:     installers,
		InstallMinutes: installMinutes,
		QAStaff:        qaStaff,
		ShuttleDrivers: drivers,
	})
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	m.AppState.SetPlan(plan)
	if plan.MeetsGoal() {
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Goal met: %s caps the day at %d units", plan.Bottleneck, plan.BottleneckUnits))
	} else {
		m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("Goal at risk: %s caps the day at %d units", plan.Bottleneck, plan.BottleneckUnits))
	}
}

// parseHeadcount reads a non-negative integer, treating empty as zero
func parseHeadcount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
