package theme

import "github.com/charmbracelet/lipgloss"

// Built-in theme names.
const (
	Light = "light"
	Dark  = "dark"
)

func defaultColors(kind Kind) map[ColorKey]lipgloss.Color {
	if kind == KindDark {
		return map[ColorKey]lipgloss.Color{
			BackgroundPrimary:   "#2b2b2b",
			BackgroundSecondary: "#3c3c3c",
			BackgroundTertiary:  "#4d4d4d",
			ForegroundPrimary:   "#ffffff",
			ForegroundSecondary: "#cccccc",
			Accent:              "#007acc",
			AccentHover:         "#1a8cdd",
			Success:             "#28a745",
			Warning:             "#ffc107",
			Error:               "#dc3545",
			Border:              "#555555",
			Hover:               "#404040",
		}
	}
	return map[ColorKey]lipgloss.Color{
		BackgroundPrimary:   "#ffffff",
		BackgroundSecondary: "#f8f9fa",
		BackgroundTertiary:  "#e9ecef",
		ForegroundPrimary:   "#212529",
		ForegroundSecondary: "#6c757d",
		Accent:              "#007bff",
		AccentHover:         "#0056b3",
		Success:             "#28a745",
		Warning:             "#ffc107",
		Error:               "#dc3545",
		Border:              "#dee2e6",
		Hover:               "#f5f5f5",
	}
}

func defaultFonts() map[FontKey]Font {
	return map[FontKey]Font{
		FontDefault:    {Family: "Segoe UI", Size: 9},
		FontHeading:    {Family: "Segoe UI", Size: 12, Weight: WeightBold},
		FontSubheading: {Family: "Segoe UI", Size: 10, Weight: WeightBold},
		FontSmall:      {Family: "Segoe UI", Size: 8},
		FontCode:       {Family: "Consolas", Size: 9},
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return New("Light", KindLight, nil, nil)
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return New("Dark", KindDark, nil, nil)
}
