package config

import "github.com/aretedriver/gemba/internal/config/colors"

// ColorScheme aliases the colors package type so config files stay flat
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (teal theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}
