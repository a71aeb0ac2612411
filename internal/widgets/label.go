package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Label is themed static text.
type Label struct {
	themed
	text  string
	font  theme.FontKey
	color theme.ColorKey
	style lipgloss.Style
}

// NewLabel creates a label drawn with font in color.
func NewLabel(themes *theme.Manager, text string, font theme.FontKey, color theme.ColorKey) *Label {
	l := &Label{text: text, font: font, color: color}
	l.bind(themes, l.restyle)
	return l
}

// Heading creates a page title label.
func Heading(themes *theme.Manager, text string) *Label {
	return NewLabel(themes, text, theme.FontHeading, theme.ForegroundPrimary)
}

// Muted creates secondary text.
func Muted(themes *theme.Manager, text string) *Label {
	return NewLabel(themes, text, theme.FontSmall, theme.ForegroundSecondary)
}

func (l *Label) restyle(t theme.Theme) {
	l.style = t.Font(l.font).Apply(lipgloss.NewStyle()).Foreground(t.Color(l.color))
}

// WithColor changes the color key.
func (l *Label) WithColor(color theme.ColorKey) *Label {
	l.color = color
	l.restyle(l.themes.Active())
	return l
}

func (l *Label) Text() string          { return l.text }
func (l *Label) SetText(text string)   { l.text = text }
func (l *Label) Style() lipgloss.Style { return l.style }
func (l *Label) View() string          { return l.style.Render(l.text) }
