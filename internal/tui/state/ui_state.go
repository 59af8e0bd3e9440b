package state

// Tab identifies one of the dashboard pages
type Tab int

const (
	TabTakt Tab = iota
	TabWaste
	TabKaizen
	TabCapacity
	TabGuide

	tabCount
)

// Name returns the label shown in the tab bar
func (t Tab) Name() string {
	switch t {
	case TabTakt:
		return "Takt"
	case TabWaste:
		return "Waste"
	case TabKaizen:
		return "Kaizen"
	case TabCapacity:
		return "Capacity"
	case TabGuide:
		return "Guide"
	default:
		return "?"
	}
}

// TabNames returns all tab labels in display order
func TabNames() []string {
	names := make([]string, int(tabCount))
	for i := range names {
		names[i] = Tab(i).Name()
	}
	return names
}

// Mode represents what the UI is currently doing
type Mode int

const (
	// NormalMode is plain navigation
	NormalMode Mode = iota
	// FormMode shows a huh form for the active tab
	FormMode
	// ConfirmDeleteMode asks before removing a kaizen item
	ConfirmDeleteMode
	// HelpMode shows the key binding overlay
	HelpMode
)

// UIState manages transient interface state: window size, active tab,
// mode, and row selection.
type UIState struct {
	width  int
	height int

	mode      Mode
	activeTab Tab

	// selectedRow is per-tab so switching tabs doesn't lose your place
	selectedRow map[Tab]int
}

// NewUIState creates a UIState in normal mode on the first tab
func NewUIState() *UIState {
	return &UIState{
		mode:        NormalMode,
		activeTab:   TabTakt,
		selectedRow: make(map[Tab]int),
	}
}

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) ActiveTab() Tab { return s.activeTab }

func (s *UIState) SetActiveTab(tab Tab) {
	if tab >= 0 && tab < tabCount {
		s.activeTab = tab
	}
}

// NextTab cycles forward through the tabs, wrapping at the end
func (s *UIState) NextTab() {
	s.activeTab = (s.activeTab + 1) % tabCount
}

// PrevTab cycles backward through the tabs, wrapping at the start
func (s *UIState) PrevTab() {
	s.activeTab = (s.activeTab - 1 + tabCount) % tabCount
}

// SelectedRow returns the cursor position on the active tab
func (s *UIState) SelectedRow() int {
	return s.selectedRow[s.activeTab]
}

// SetSelectedRow moves the cursor on the active tab, clamped to [0, max]
func (s *UIState) SetSelectedRow(row, max int) {
	if max < 0 {
		max = 0
	}
	if row < 0 {
		row = 0
	}
	if row > max {
		row = max
	}
	s.selectedRow[s.activeTab] = row
}

// MoveSelection shifts the cursor by delta, clamped to the row count
func (s *UIState) MoveSelection(delta, rowCount int) {
	s.SetSelectedRow(s.SelectedRow()+delta, rowCount-1)
}
