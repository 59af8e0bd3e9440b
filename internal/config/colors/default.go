package colors

// Default returns the default color scheme (teal theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#00AFAF",

		// Background
		Background: "#1C1C1C",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// UI elements
		PanelBorder: "#5F87D7",
		SelectedBg:  "#3A3A3A",

		// Text
		Title:  "#5FD7D7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Charts
		BarFill:  "#00AFAF",
		QuickWin: "#FFD700",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		// Status bar
		StatusBarBg:   "#00AFAF", // Matches accent
		StatusBarText: "#1C1C1C",
	}
}
