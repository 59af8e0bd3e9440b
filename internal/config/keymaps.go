package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Entries
	NewEntry      string `yaml:"new_entry"`
	EditEntry     string `yaml:"edit_entry"`
	DeleteEntry   string `yaml:"delete_entry"`
	AdvanceStatus string `yaml:"advance_status"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`
	NextRow string `yaml:"next_row"`
	PrevRow string `yaml:"prev_row"`

	// Waste log
	ExportLog string `yaml:"export_log"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NewEntry:      "a",
		EditEntry:     "e",
		DeleteEntry:   "d",
		AdvanceStatus: "s",
		SaveForm:      "ctrl+s",
		NextTab:       "tab",
		PrevTab:       "shift+tab",
		NextRow:       "j",
		PrevRow:       "k",
		ExportLog:     "x",
		Refresh:       "r",
		ShowHelp:      "?",
		Quit:          "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NewEntry == "" {
		k.NewEntry = defaults.NewEntry
	}
	if k.EditEntry == "" {
		k.EditEntry = defaults.EditEntry
	}
	if k.DeleteEntry == "" {
		k.DeleteEntry = defaults.DeleteEntry
	}
	if k.AdvanceStatus == "" {
		k.AdvanceStatus = defaults.AdvanceStatus
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.NextTab == "" {
		k.NextTab = defaults.NextTab
	}
	if k.PrevTab == "" {
		k.PrevTab = defaults.PrevTab
	}
	if k.NextRow == "" {
		k.NextRow = defaults.NextRow
	}
	if k.PrevRow == "" {
		k.PrevRow = defaults.PrevRow
	}
	if k.ExportLog == "" {
		k.ExportLog = defaults.ExportLog
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
