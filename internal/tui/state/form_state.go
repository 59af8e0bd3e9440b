package state

import (
	"charm.land/huh/v2"
)

// FormState manages all form-related state for the dashboard. Forms update
// the string fields in place through pointers; the submit handlers parse
// them when the form completes.
type FormState struct {
	// Takt calculator form
	TaktForm        *huh.Form
	FormTaktName    string
	FormAvailable   string
	FormDemand      string
	FormCycle       string
	FormTaktConfirm bool

	// Waste observation form
	WasteForm        *huh.Form
	FormArea         string
	FormShift        string
	FormCategory     string
	FormCount        string
	FormNote         string
	FormWasteConfirm bool

	// Kaizen item form (create and edit share it)
	KaizenForm        *huh.Form
	EditingItemID     int // 0 for a new item
	FormDescription   string
	FormImpact        string
	FormEffort        string
	FormOwner         string
	FormDue           string
	FormKaizenConfirm bool

	// Capacity planner form
	CapacityForm        *huh.Form
	FormGoal            string
	FormHours           string
	FormInstallers      string
	FormInstallMinutes  string
	FormQAStaff         string
	FormShuttleDrivers  string
	FormCapacityConfirm bool
}

// NewFormState creates a FormState with no active forms
func NewFormState() *FormState {
	return &FormState{}
}

// ClearTaktForm resets the takt form fields
func (s *FormState) ClearTaktForm() {
	s.TaktForm = nil
	s.FormTaktName = ""
	s.FormAvailable = ""
	s.FormDemand = ""
	s.FormCycle = ""
	s.FormTaktConfirm = true
}

// ClearWasteForm resets the waste form fields
func (s *FormState) ClearWasteForm() {
	s.WasteForm = nil
	s.FormArea = ""
	s.FormShift = ""
	s.FormCategory = ""
	s.FormCount = ""
	s.FormNote = ""
	s.FormWasteConfirm = true
}

// ClearKaizenForm resets the kaizen form fields
func (s *FormState) ClearKaizenForm() {
	s.KaizenForm = nil
	s.EditingItemID = 0
	s.FormDescription = ""
	s.FormImpact = ""
	s.FormEffort = ""
	s.FormOwner = ""
	s.FormDue = ""
	s.FormKaizenConfirm = true
}

// ClearCapacityForm resets the capacity form fields
func (s *FormState) ClearCapacityForm() {
	s.CapacityForm = nil
	s.FormGoal = ""
	s.FormHours = ""
	s.FormInstallers = ""
	s.FormInstallMinutes = ""
	s.FormQAStaff = ""
	s.FormShuttleDrivers = ""
	s.FormCapacityConfirm = true
}
