package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind classifies a theme.
type Kind int

const (
	KindLight Kind = iota
	KindDark
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindLight:
		return "light"
	case KindDark:
		return "dark"
	default:
		return "custom"
	}
}

// ColorKey names a semantic color slot.
type ColorKey string

const (
	BackgroundPrimary   ColorKey = "background-primary"
	BackgroundSecondary ColorKey = "background-secondary"
	BackgroundTertiary  ColorKey = "background-tertiary"
	ForegroundPrimary   ColorKey = "foreground-primary"
	ForegroundSecondary ColorKey = "foreground-secondary"
	Accent              ColorKey = "accent"
	AccentHover         ColorKey = "accent-hover"
	Success             ColorKey = "success"
	Warning             ColorKey = "warning"
	Error               ColorKey = "error"
	Border              ColorKey = "border"
	Hover               ColorKey = "hover"
)

// ColorKeys lists the slots every theme is expected to define.
var ColorKeys = []ColorKey{
	BackgroundPrimary, BackgroundSecondary, BackgroundTertiary,
	ForegroundPrimary, ForegroundSecondary,
	Accent, AccentHover,
	Success, Warning, Error,
	Border, Hover,
}

// FontKey names a semantic font slot.
type FontKey string

const (
	FontDefault    FontKey = "default"
	FontHeading    FontKey = "heading"
	FontSubheading FontKey = "subheading"
	FontSmall      FontKey = "small"
	FontCode       FontKey = "code"
)

// FontKeys lists the font slots every theme is expected to define.
var FontKeys = []FontKey{FontDefault, FontHeading, FontSubheading, FontSmall, FontCode}

// Weight is a font weight.
type Weight int

const (
	WeightNormal Weight = iota
	WeightBold
)

// Font describes a typeface. Terminals cannot change family or size, so
// rendering only honours what a cell can show: bold weight, and faint text
// for sizes below the default.
type Font struct {
	Family string
	Size   int
	Weight Weight
}

const defaultFontSize = 9

// Apply layers the font onto base.
func (f Font) Apply(base lipgloss.Style) lipgloss.Style {
	style := base.Bold(f.Weight == WeightBold)
	if f.Size > 0 && f.Size < defaultFontSize {
		style = style.Faint(true)
	}
	return style
}

var (
	// FallbackColor is returned for color keys a theme does not define.
	FallbackColor = lipgloss.Color("#000000")
	// FallbackFont is returned for font keys a theme does not define.
	FallbackFont = Font{Family: "Arial", Size: defaultFontSize, Weight: WeightNormal}
)

// Theme is an immutable bundle of semantic colors and fonts. The maps are
// copied on construction and never handed out.
type Theme struct {
	name   string
	kind   Kind
	colors map[ColorKey]lipgloss.Color
	fonts  map[FontKey]Font
}

// New builds a theme. Nil or empty maps are replaced by the defaults for
// kind, custom themes defaulting to the light palette.
func New(name string, kind Kind, colors map[ColorKey]lipgloss.Color, fonts map[FontKey]Font) Theme {
	if len(colors) == 0 {
		colors = defaultColors(kind)
	}
	if len(fonts) == 0 {
		fonts = defaultFonts()
	}

	t := Theme{
		name:   name,
		kind:   kind,
		colors: make(map[ColorKey]lipgloss.Color, len(colors)),
		fonts:  make(map[FontKey]Font, len(fonts)),
	}
	for k, v := range colors {
		t.colors[k] = v
	}
	for k, v := range fonts {
		t.fonts[k] = v
	}
	return t
}

// Name returns the display name.
func (t Theme) Name() string { return t.name }

// Kind returns the theme kind.
func (t Theme) Kind() Kind { return t.kind }

// Lookup returns the color for key and whether the theme defines it.
func (t Theme) Lookup(key ColorKey) (lipgloss.Color, bool) {
	c, ok := t.colors[key]
	return c, ok
}

// LookupFont returns the font for key and whether the theme defines it.
func (t Theme) LookupFont(key FontKey) (Font, bool) {
	f, ok := t.fonts[key]
	return f, ok
}

// Color returns the color for key, or FallbackColor.
func (t Theme) Color(key ColorKey) lipgloss.Color {
	if c, ok := t.colors[key]; ok {
		return c
	}
	return FallbackColor
}

// Font returns the font for key, or FallbackFont.
func (t Theme) Font(key FontKey) Font {
	if f, ok := t.fonts[key]; ok {
		return f
	}
	return FallbackFont
}

// Colors returns a copy of the color map.
func (t Theme) Colors() map[ColorKey]lipgloss.Color {
	out := make(map[ColorKey]lipgloss.Color, len(t.colors))
	for k, v := range t.colors {
		out[k] = v
	}
	return out
}

// Fonts returns a copy of the font map.
func (t Theme) Fonts() map[FontKey]Font {
	out := make(map[FontKey]Font, len(t.fonts))
	for k, v := range t.fonts {
		out[k] = v
	}
	return out
}

// Text returns a style for font key in the primary foreground color.
func (t Theme) Text(key FontKey) lipgloss.Style {
	return t.Font(key).Apply(lipgloss.NewStyle().Foreground(t.Color(ForegroundPrimary)))
}
