package widgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// TextField is a single-line input with placeholder text. While unfocused
// and empty it shows the placeholder in the secondary foreground; focusing
// clears it and switches to the primary foreground.
type TextField struct {
	themed
	input       textinput.Model
	label       string
	placeholder string
	width       int
	onChange    func(string)

	labelStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	blurredStyle lipgloss.Style
	placeholderC lipgloss.Color
	textC        lipgloss.Color
}

// NewTextField creates an empty field.
func NewTextField(themes *theme.Manager, label, placeholder string) *TextField {
	input := textinput.New()
	input.Prompt = ""
	f := &TextField{input: input, label: label, placeholder: placeholder, width: 40}
	f.input.Width = f.width
	f.bind(themes, f.restyle)
	f.syncPlaceholder()
	return f
}

func (f *TextField) restyle(t theme.Theme) {
	f.placeholderC = t.Color(theme.ForegroundSecondary)
	f.textC = t.Color(theme.ForegroundPrimary)
	f.labelStyle = t.Font(theme.FontSubheading).Apply(lipgloss.NewStyle()).Foreground(t.Color(theme.ForegroundPrimary))
	box := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).Padding(0, 1)
	f.focusedStyle = box.BorderForeground(t.Color(theme.Accent))
	f.blurredStyle = box.BorderForeground(t.Color(theme.Border))

	f.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(f.placeholderC)
	f.input.TextStyle = lipgloss.NewStyle().Foreground(f.textC)
	f.input.Cursor.Style = lipgloss.NewStyle().Foreground(t.Color(theme.Accent))
}

func (f *TextField) syncPlaceholder() {
	if f.input.Focused() {
		f.input.Placeholder = ""
		return
	}
	f.input.Placeholder = f.placeholder
}

// WithWidth sets the visible input width.
func (f *TextField) WithWidth(width int) *TextField {
	f.width = width
	f.input.Width = width
	return f
}

// WithValue sets the initial text without firing OnChange.
func (f *TextField) WithValue(v string) *TextField {
	f.input.SetValue(v)
	return f
}

// OnChange registers fn to run with the new text after each edit.
func (f *TextField) OnChange(fn func(string)) *TextField {
	f.onChange = fn
	return f
}

// Focus starts accepting input.
func (f *TextField) Focus() tea.Cmd {
	cmd := f.input.Focus()
	f.syncPlaceholder()
	return cmd
}

// Blur stops accepting input and restores the placeholder if empty.
func (f *TextField) Blur() {
	f.input.Blur()
	f.syncPlaceholder()
}

func (f *TextField) Focused() bool { return f.input.Focused() }

// ShowingPlaceholder reports whether the placeholder is what View shows.
func (f *TextField) ShowingPlaceholder() bool {
	return !f.input.Focused() && f.input.Value() == "" && f.placeholder != ""
}

// TextColor returns the color the field's text is currently drawn in.
func (f *TextField) TextColor() lipgloss.Color {
	if f.ShowingPlaceholder() {
		return f.placeholderC
	}
	return f.textC
}

func (f *TextField) Value() string { return f.input.Value() }

// SetValue replaces the text and fires OnChange.
func (f *TextField) SetValue(v string) {
	f.input.SetValue(v)
	if f.onChange != nil {
		f.onChange(v)
	}
}

// Update forwards key input while focused.
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	if !f.input.Focused() {
		return nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if after := f.input.Value(); after != before && f.onChange != nil {
		f.onChange(after)
	}
	return cmd
}

// View renders the label above the input.
func (f *TextField) View() string {
	box := f.blurredStyle
	if f.input.Focused() {
		box = f.focusedStyle
	}
	field := box.Render(f.input.View())
	if f.label == "" {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, f.labelStyle.Render(f.label), field)
}
