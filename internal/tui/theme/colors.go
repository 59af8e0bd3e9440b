package theme

import "github.com/aretedriver/gemba/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Background    string
	Highlight     string
	Subtle        string
	Normal        string
	Title         string
	Create        string
	Edit          string
	Delete        string
	PanelBorder   string
	SelectedBg    string
	BarFill       string
	QuickWin      string
	InfoFg        string
	InfoBg        string
	WarningFg     string
	WarningBg     string
	ErrorFg       string
	ErrorBg       string
	StatusBarBg   string
	StatusBarText string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Background = colors.Background
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	PanelBorder = colors.PanelBorder
	SelectedBg = colors.SelectedBg
	BarFill = colors.BarFill
	QuickWin = colors.QuickWin
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
