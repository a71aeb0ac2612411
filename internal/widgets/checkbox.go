package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Checkbox is a labelled boolean toggled with space or enter.
type Checkbox struct {
	themed
	label    string
	hint     string
	checked  bool
	focused  bool
	onChange func(bool)

	boxOn    lipgloss.Style
	boxOff   lipgloss.Style
	text     lipgloss.Style
	focus    lipgloss.Style
	hintText lipgloss.Style
}

// NewCheckbox creates a checkbox.
func NewCheckbox(themes *theme.Manager, label string, checked bool) *Checkbox {
	c := &Checkbox{label: label, checked: checked}
	c.bind(themes, c.restyle)
	return c
}

func (c *Checkbox) restyle(t theme.Theme) {
	c.boxOn = lipgloss.NewStyle().Foreground(t.Color(theme.Accent)).Bold(true)
	c.boxOff = lipgloss.NewStyle().Foreground(t.Color(theme.Border))
	c.text = t.Font(theme.FontDefault).Apply(lipgloss.NewStyle()).Foreground(t.Color(theme.ForegroundPrimary))
	c.focus = c.text.Foreground(t.Color(theme.Accent)).Underline(true)
	c.hintText = t.Font(theme.FontSmall).Apply(lipgloss.NewStyle()).Foreground(t.Color(theme.ForegroundSecondary))
}

// WithHint adds a description shown after the label.
func (c *Checkbox) WithHint(hint string) *Checkbox {
	c.hint = hint
	return c
}

// OnChange registers fn to run after each toggle.
func (c *Checkbox) OnChange(fn func(bool)) *Checkbox {
	c.onChange = fn
	return c
}

// Toggle flips the value.
func (c *Checkbox) Toggle() {
	c.SetChecked(!c.checked)
}

// SetChecked sets the value and fires OnChange when it differs.
func (c *Checkbox) SetChecked(v bool) {
	if c.checked == v {
		return
	}
	c.checked = v
	if c.onChange != nil {
		c.onChange(v)
	}
}

func (c *Checkbox) Checked() bool { return c.checked }
func (c *Checkbox) Label() string { return c.label }

func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *Checkbox) Blur()         { c.focused = false }
func (c *Checkbox) Focused() bool { return c.focused }

// Update toggles on space or enter while focused.
func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case " ", "enter":
			c.Toggle()
		}
	}
	return nil
}

func (c *Checkbox) View() string {
	box := c.boxOff.Render("[ ]")
	if c.checked {
		box = c.boxOn.Render("[x]")
	}
	label := c.text.Render(c.label)
	if c.focused {
		label = c.focus.Render(c.label)
	}
	out := box + " " + label
	if c.hint != "" {
		out += "  " + c.hintText.Render(c.hint)
	}
	return out
}
