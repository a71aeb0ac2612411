package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Option is one entry of a Choice.
type Option struct {
	Value string
	Label string
}

// Choice is a radio group moved with left and right.
type Choice struct {
	themed
	label    string
	options  []Option
	selected int
	focused  bool
	onChange func(string)

	labelStyle lipgloss.Style
	on         lipgloss.Style
	off        lipgloss.Style
	focusOn    lipgloss.Style
}

// NewChoice creates a group with value selected, or the first option when
// value is not among options.
func NewChoice(themes *theme.Manager, label string, options []Option, value string) *Choice {
	c := &Choice{label: label, options: options}
	for i, o := range options {
		if o.Value == value {
			c.selected = i
		}
	}
	c.bind(themes, c.restyle)
	return c
}

func (c *Choice) restyle(t theme.Theme) {
	c.labelStyle = t.Font(theme.FontSubheading).Apply(lipgloss.NewStyle()).Foreground(t.Color(theme.ForegroundPrimary))
	c.on = lipgloss.NewStyle().Foreground(t.Color(theme.Accent)).Bold(true)
	c.off = lipgloss.NewStyle().Foreground(t.Color(theme.ForegroundSecondary))
	c.focusOn = c.on.Underline(true)
}

// OnChange registers fn to run with the newly selected value.
func (c *Choice) OnChange(fn func(string)) *Choice {
	c.onChange = fn
	return c
}

// Value returns the selected option's value.
func (c *Choice) Value() string {
	if len(c.options) == 0 {
		return ""
	}
	return c.options[c.selected].Value
}

// Select chooses value; unknown values are ignored.
func (c *Choice) Select(value string) {
	for i, o := range c.options {
		if o.Value == value {
			c.set(i)
			return
		}
	}
}

func (c *Choice) set(i int) {
	if i == c.selected {
		return
	}
	c.selected = i
	if c.onChange != nil {
		c.onChange(c.options[i].Value)
	}
}

// Next selects the following option, wrapping.
func (c *Choice) Next() {
	if len(c.options) > 0 {
		c.set((c.selected + 1) % len(c.options))
	}
}

// Prev selects the preceding option, wrapping.
func (c *Choice) Prev() {
	if len(c.options) > 0 {
		c.set((c.selected - 1 + len(c.options)) % len(c.options))
	}
}

func (c *Choice) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *Choice) Blur()         { c.focused = false }
func (c *Choice) Focused() bool { return c.focused }

func (c *Choice) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "right", "l", " ":
			c.Next()
		case "left", "h":
			c.Prev()
		}
	}
	return nil
}

func (c *Choice) View() string {
	items := make([]string, 0, len(c.options))
	for i, o := range c.options {
		switch {
		case i == c.selected && c.focused:
			items = append(items, c.focusOn.Render("(•) "+o.Label))
		case i == c.selected:
			items = append(items, c.on.Render("(•) "+o.Label))
		default:
			items = append(items, c.off.Render("( ) "+o.Label))
		}
	}
	row := strings.Join(items, "   ")
	if c.label == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.labelStyle.Render(c.label), row)
}
