package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/packdeck/internal/state"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

const collapsedWidth = 6

type menuEntry struct {
	name   string
	button *Button
}

// SideMenu is a collapsible vertical menu. The entry whose name equals the
// current_page state value is highlighted.
type SideMenu struct {
	themed
	title     string
	width     int
	collapsed bool
	focused   bool
	cursor    int
	active    string

	items  []*menuEntry
	footer []*menuEntry

	store *state.Store
	sub   state.Subscription
	zones *zone.Manager

	box     lipgloss.Style
	header  lipgloss.Style
	divider lipgloss.Style
}

// NewSideMenu creates an empty menu that follows current_page in store.
func NewSideMenu(themes *theme.Manager, store *state.Store, title string, width int) *SideMenu {
	m := &SideMenu{title: title, width: width, store: store}
	m.bind(themes, m.restyle)
	if store != nil {
		m.active = store.String(state.KeyCurrentPage, "")
		m.sub = store.Subscribe(state.KeyCurrentPage, func(newValue, _ any) {
			name, _ := newValue.(string)
			m.SetActive(name)
		})
	}
	return m
}

func (m *SideMenu) restyle(t theme.Theme) {
	m.box = lipgloss.NewStyle().
		Background(t.Color(theme.BackgroundSecondary)).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(t.Color(theme.Border))
	m.header = t.Font(theme.FontSubheading).Apply(lipgloss.NewStyle()).
		Foreground(t.Color(theme.ForegroundSecondary)).
		Padding(1, 2)
	m.divider = lipgloss.NewStyle().Foreground(t.Color(theme.Border))
}

// WithZones enables mouse hover and clicks on the entries.
func (m *SideMenu) WithZones(zones *zone.Manager) *SideMenu {
	m.zones = zones
	for _, e := range m.entries() {
		e.button.WithZone(zones, menuZoneID(e.name))
	}
	return m
}

func menuZoneID(name string) string { return "menu:" + name }

// AddMenuItem appends an entry and returns its button.
func (m *SideMenu) AddMenuItem(name, label, icon string, fn func() tea.Cmd) *Button {
	e := m.newEntry(name, label, icon, fn)
	m.items = append(m.items, e)
	return e.button
}

// AddFooterItem appends an entry pinned to the bottom of the menu.
func (m *SideMenu) AddFooterItem(name, label, icon string, fn func() tea.Cmd) *Button {
	e := m.newEntry(name, label, icon, fn)
	m.footer = append(m.footer, e)
	return e.button
}

func (m *SideMenu) newEntry(name, label, icon string, fn func() tea.Cmd) *menuEntry {
	b := NewButton(m.themes, label).
		WithIcon(icon).
		WithVariant(ButtonOutline).
		WithWidth(m.width - 1).
		WithAlign(lipgloss.Left).
		OnActivate(fn)
	if m.zones != nil {
		b.WithZone(m.zones, menuZoneID(name))
	}
	b.SetActive(name == m.active)
	e := &menuEntry{name: name, button: b}
	if m.focused && len(m.entries()) == m.cursor {
		b.SetFocused(true)
	}
	return e
}

func (m *SideMenu) entries() []*menuEntry {
	all := make([]*menuEntry, 0, len(m.items)+len(m.footer))
	all = append(all, m.items...)
	return append(all, m.footer...)
}

// Names returns entry names, main entries first.
func (m *SideMenu) Names() []string {
	var names []string
	for _, e := range m.entries() {
		names = append(names, e.name)
	}
	return names
}

// SetActive highlights the entry called name and moves the cursor to it.
func (m *SideMenu) SetActive(name string) {
	m.active = name
	for i, e := range m.entries() {
		e.button.SetActive(e.name == name)
		if e.name == name {
			m.setCursor(i)
		}
	}
}

func (m *SideMenu) Active() string { return m.active }

// Toggle collapses or expands the menu.
func (m *SideMenu) Toggle() {
	m.collapsed = !m.collapsed
}

func (m *SideMenu) Collapsed() bool { return m.collapsed }

// Width is the rendered width including the border.
func (m *SideMenu) Width() int {
	if m.collapsed {
		return collapsedWidth
	}
	return m.width
}

func (m *SideMenu) Focus() {
	m.focused = true
	m.setCursor(m.cursor)
}

func (m *SideMenu) Blur() {
	m.focused = false
	for _, e := range m.entries() {
		e.button.SetFocused(false)
	}
}

func (m *SideMenu) Focused() bool { return m.focused }

// Cursor returns the name under the keyboard cursor.
func (m *SideMenu) Cursor() string {
	all := m.entries()
	if len(all) == 0 {
		return ""
	}
	return all[m.cursor].name
}

func (m *SideMenu) setCursor(i int) {
	all := m.entries()
	if len(all) == 0 {
		return
	}
	m.cursor = (i + len(all)) % len(all)
	for j, e := range all {
		e.button.SetFocused(m.focused && j == m.cursor)
	}
}

func (m *SideMenu) MoveUp()   { m.setCursor(m.cursor - 1) }
func (m *SideMenu) MoveDown() { m.setCursor(m.cursor + 1) }

// Activate runs the callback of the entry under the cursor.
func (m *SideMenu) Activate() tea.Cmd {
	all := m.entries()
	if len(all) == 0 {
		return nil
	}
	return all[m.cursor].button.Activate()
}

// Button returns the button of the entry called name.
func (m *SideMenu) Button(name string) *Button {
	for _, e := range m.entries() {
		if e.name == name {
			return e.button
		}
	}
	return nil
}

// Update handles cursor keys while focused and mouse events always.
func (m *SideMenu) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		for _, e := range m.entries() {
			if cmd, inside := e.button.HandleMouse(msg); inside && cmd != nil {
				return cmd
			}
		}
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch msg.String() {
		case "up", "k":
			m.MoveUp()
		case "down", "j":
			m.MoveDown()
		case "enter", " ":
			return m.Activate()
		}
	}
	return nil
}

// View renders the menu at height rows.
func (m *SideMenu) View(height int) string {
	render := func(e *menuEntry) string {
		if m.collapsed {
			return e.button.IconView()
		}
		return e.button.View()
	}

	var top []string
	if m.collapsed {
		top = append(top, m.header.Render("≡"))
	} else {
		top = append(top, m.header.Render(m.title))
	}
	for _, e := range m.items {
		top = append(top, render(e))
	}

	var bottom []string
	if len(m.footer) > 0 {
		bottom = append(bottom, m.divider.Render(strings.Repeat("─", m.Width()-1)))
		for _, e := range m.footer {
			bottom = append(bottom, render(e))
		}
	}

	upper := lipgloss.JoinVertical(lipgloss.Left, top...)
	lower := lipgloss.JoinVertical(lipgloss.Left, bottom...)
	gap := height - lipgloss.Height(upper) - lipgloss.Height(lower)
	if len(bottom) == 0 {
		gap = height - lipgloss.Height(upper)
	}
	if gap < 0 {
		gap = 0
	}
	parts := []string{upper}
	if gap > 0 {
		parts = append(parts, strings.Repeat("\n", gap-1))
	}
	if len(bottom) > 0 {
		parts = append(parts, lower)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.box.Width(m.Width() - 1).Height(height).Render(body)
}

// Close releases the menu, its entries and its state subscription.
func (m *SideMenu) Close() {
	m.themed.Close()
	if m.store != nil {
		m.store.Unsubscribe(m.sub)
		m.sub = nil
	}
	for _, e := range m.entries() {
		e.button.Close()
	}
}
