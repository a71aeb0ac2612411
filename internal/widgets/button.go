package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// ButtonVariant selects how a button is filled.
type ButtonVariant int

const (
	// ButtonDefault is a neutral fill.
	ButtonDefault ButtonVariant = iota
	// ButtonPrimary is filled with the accent color.
	ButtonPrimary
	// ButtonOutline has accent text and no fill.
	ButtonOutline
)

const onAccent = lipgloss.Color("#ffffff")

// Button is a themed, clickable label.
type Button struct {
	themed
	label    string
	icon     string
	variant  ButtonVariant
	width    int
	align    lipgloss.Position
	hovered  bool
	active   bool
	focused  bool
	disabled bool

	onActivate func() tea.Cmd

	zones  *zone.Manager
	zoneID string

	rest      lipgloss.Style
	hover     lipgloss.Style
	selected  lipgloss.Style
	focusMark lipgloss.Style
}

// NewButton creates a default-variant button.
func NewButton(themes *theme.Manager, label string) *Button {
	b := &Button{label: label, align: lipgloss.Center}
	b.bind(themes, b.restyle)
	return b
}

func (b *Button) restyle(t theme.Theme) {
	base := t.Font(theme.FontDefault).Apply(lipgloss.NewStyle()).Padding(0, 2).Align(b.align)
	if b.width > 0 {
		base = base.Width(b.width)
	}

	switch b.variant {
	case ButtonPrimary:
		b.rest = base.Background(t.Color(theme.Accent)).Foreground(onAccent)
		b.hover = base.Background(t.Color(theme.AccentHover)).Foreground(onAccent)
	case ButtonOutline:
		b.rest = base.Foreground(t.Color(theme.Accent))
		b.hover = base.Foreground(t.Color(theme.Accent)).Background(t.Color(theme.Hover))
	default:
		b.rest = base.Background(t.Color(theme.BackgroundSecondary)).Foreground(t.Color(theme.ForegroundPrimary))
		b.hover = base.Background(t.Color(theme.Hover)).Foreground(t.Color(theme.ForegroundPrimary))
	}
	b.selected = base.Background(t.Color(theme.Accent)).Foreground(onAccent).Bold(true)
	b.focusMark = lipgloss.NewStyle().Foreground(t.Color(theme.Accent)).Bold(true)
}

// WithVariant sets the variant.
func (b *Button) WithVariant(v ButtonVariant) *Button {
	b.variant = v
	b.restyle(b.themes.Active())
	return b
}

// WithIcon prefixes the label with icon.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithWidth fixes the rendered width.
func (b *Button) WithWidth(width int) *Button {
	b.width = width
	b.restyle(b.themes.Active())
	return b
}

// WithAlign sets the label alignment inside a fixed width.
func (b *Button) WithAlign(pos lipgloss.Position) *Button {
	b.align = pos
	b.restyle(b.themes.Active())
	return b
}

// WithZone makes the button respond to the mouse within zones under id.
func (b *Button) WithZone(zones *zone.Manager, id string) *Button {
	b.zones = zones
	b.zoneID = id
	return b
}

// OnActivate sets the callback run by Activate.
func (b *Button) OnActivate(fn func() tea.Cmd) *Button {
	b.onActivate = fn
	return b
}

// Activate runs the callback unless the button is disabled.
func (b *Button) Activate() tea.Cmd {
	if b.disabled || b.onActivate == nil {
		return nil
	}
	return b.onActivate()
}

// HandleMouse updates hover state from motion and activates on a left
// click inside the button's zone. It reports whether the event was inside.
func (b *Button) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	z := zoneInfo(b.zones, b.zoneID)
	if z == nil {
		return nil, false
	}
	inside := z.InBounds(msg)
	switch msg.Action {
	case tea.MouseActionMotion:
		b.SetHovered(inside)
	case tea.MouseActionRelease:
		if inside && msg.Button == tea.MouseButtonLeft {
			return b.Activate(), true
		}
	}
	return nil, inside
}

// View renders the button in its current state.
func (b *Button) View() string {
	text := b.label
	if b.icon != "" {
		text = b.icon + " " + b.label
	}
	rendered := b.Style().Render(text)
	if b.focused {
		rendered = b.focusMark.Render("›") + rendered
	}
	return mark(b.zones, b.zoneID, rendered)
}

// Style returns the style View uses right now.
func (b *Button) Style() lipgloss.Style {
	style := b.rest
	switch {
	case b.active:
		style = b.selected
	case b.hovered && !b.disabled:
		style = b.hover
	}
	if b.disabled {
		style = style.Faint(true)
	}
	return style
}

// IconView renders only the icon, for collapsed menus.
func (b *Button) IconView() string {
	icon := b.icon
	if icon == "" && b.label != "" {
		icon = string([]rune(b.label)[0])
	}
	return mark(b.zones, b.zoneID, b.Style().Padding(0, 1).Width(0).Render(icon))
}

func (b *Button) SetHovered(h bool)  { b.hovered = h }
func (b *Button) Hovered() bool      { return b.hovered }
func (b *Button) SetActive(a bool)   { b.active = a }
func (b *Button) Active() bool       { return b.active }
func (b *Button) SetFocused(f bool)  { b.focused = f }
func (b *Button) Focused() bool      { return b.focused }
func (b *Button) SetDisabled(d bool) { b.disabled = d }
func (b *Button) Disabled() bool     { return b.disabled }
func (b *Button) Label() string      { return b.label }
func (b *Button) SetLabel(l string)  { b.label = l }
func (b *Button) Icon() string       { return b.icon }

// Focus lets a form route keys to the button.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *Button) Blur() { b.focused = false }

// Update activates the button on enter or space while focused.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if !b.focused {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", " ":
			return b.Activate()
		}
	}
	return nil
}
