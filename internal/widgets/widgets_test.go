package widgets

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/packdeck/internal/state"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestButtonVariantsFollowTheme(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	primary := NewButton(themes, "Go").WithVariant(ButtonPrimary)
	outline := NewButton(themes, "Go").WithVariant(ButtonOutline)
	plain := NewButton(themes, "Go")

	assert.Equal(t, lipgloss.Color("#007bff"), primary.Style().GetBackground())
	assert.Equal(t, onAccent, primary.Style().GetForeground())
	assert.Equal(t, lipgloss.Color("#007bff"), outline.Style().GetForeground())
	assert.Equal(t, lipgloss.Color("#f8f9fa"), plain.Style().GetBackground())

	require.NoError(t, themes.SetTheme(theme.Dark))
	assert.Equal(t, lipgloss.Color("#007acc"), primary.Style().GetBackground())
	assert.Equal(t, lipgloss.Color("#3c3c3c"), plain.Style().GetBackground())
}

func TestButtonHover(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	primary := NewButton(themes, "Go").WithVariant(ButtonPrimary)
	plain := NewButton(themes, "Go")

	primary.SetHovered(true)
	plain.SetHovered(true)
	assert.Equal(t, lipgloss.Color("#0056b3"), primary.Style().GetBackground())
	assert.Equal(t, lipgloss.Color("#f5f5f5"), plain.Style().GetBackground())

	primary.SetHovered(false)
	assert.Equal(t, lipgloss.Color("#007bff"), primary.Style().GetBackground())
}

func TestButtonActivate(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	clicks := 0
	b := NewButton(themes, "Go").OnActivate(func() tea.Cmd {
		clicks++
		return nil
	})

	b.Activate()
	assert.Equal(t, 1, clicks)

	b.Update(key("enter"))
	assert.Equal(t, 1, clicks, "unfocused buttons ignore keys")

	b.Focus()
	b.Update(key("enter"))
	assert.Equal(t, 2, clicks)

	b.SetDisabled(true)
	b.Activate()
	assert.Equal(t, 2, clicks)
}

func TestButtonWithoutZoneIgnoresMouse(t *testing.T) {
	t.Parallel()

	b := NewButton(theme.NewManager(), "Go")
	cmd, inside := b.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	assert.Nil(t, cmd)
	assert.False(t, inside)
	assert.Contains(t, b.View(), "Go")
}

func TestCloseStopsThemeUpdates(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	b := NewButton(themes, "Go").WithVariant(ButtonPrimary)
	require.True(t, b.Bound())

	b.Close()
	b.Close()
	require.False(t, b.Bound())

	require.NoError(t, themes.SetTheme(theme.Dark))
	assert.Equal(t, lipgloss.Color("#007bff"), b.Style().GetBackground())
}

func TestTextFieldPlaceholder(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	var changes []string
	f := NewTextField(themes, "Script", "path/to/main.py").OnChange(func(v string) {
		changes = append(changes, v)
	})

	assert.True(t, f.ShowingPlaceholder())
	assert.Equal(t, lipgloss.Color("#6c757d"), f.TextColor())
	assert.Contains(t, f.View(), "path/to/main.py")

	f.Focus()
	assert.False(t, f.ShowingPlaceholder())
	assert.Equal(t, lipgloss.Color("#212529"), f.TextColor())
	assert.NotContains(t, f.View(), "path/to/main.py")

	f.Update(key("a"))
	f.Update(key("b"))
	assert.Equal(t, "ab", f.Value())
	assert.Equal(t, []string{"a", "ab"}, changes)

	f.Blur()
	assert.False(t, f.ShowingPlaceholder(), "non-empty fields keep their text")

	f.SetValue("")
	assert.True(t, f.ShowingPlaceholder())

	require.NoError(t, themes.SetTheme(theme.Dark))
	assert.Equal(t, lipgloss.Color("#cccccc"), f.TextColor())
}

func TestTextFieldIgnoresKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	f := NewTextField(theme.NewManager(), "", "").WithValue("x")
	f.Update(key("y"))
	assert.Equal(t, "x", f.Value())
}

func TestPanelElevation(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	flat := NewPanel(themes)
	card := NewCard(themes, "Title", "Sub")

	assert.False(t, flat.Elevated())
	assert.Equal(t, lipgloss.Color("#ffffff"), flat.Style().GetBackground())
	assert.True(t, card.Elevated())
	assert.Equal(t, lipgloss.Color("#f8f9fa"), card.Style().GetBackground())

	out := card.Render("body")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Sub")
	assert.Contains(t, out, "body")

	require.NoError(t, themes.SetTheme(theme.Dark))
	assert.Equal(t, lipgloss.Color("#3c3c3c"), card.Style().GetBackground())
}

func TestCheckbox(t *testing.T) {
	t.Parallel()

	var got []bool
	c := NewCheckbox(theme.NewManager(), "Console", false).OnChange(func(v bool) { got = append(got, v) })

	c.Update(key(" "))
	assert.False(t, c.Checked())

	c.Focus()
	c.Update(key(" "))
	c.Update(key("enter"))
	c.SetChecked(false)
	assert.Equal(t, []bool{true, false}, got)
	assert.Contains(t, c.View(), "[ ]")

	c.Toggle()
	assert.Contains(t, c.View(), "[x]")
}

func TestChoice(t *testing.T) {
	t.Parallel()

	var got []string
	c := NewChoice(theme.NewManager(), "Level", []Option{
		{Value: "fast", Label: "Fast"},
		{Value: "balanced", Label: "Balanced"},
		{Value: "size", Label: "Size"},
	}, "balanced").OnChange(func(v string) { got = append(got, v) })

	assert.Equal(t, "balanced", c.Value())
	c.Focus()
	c.Update(key("right"))
	c.Update(key("right"))
	c.Update(key("left"))
	c.Select("unknown")
	c.Select("balanced")
	assert.Equal(t, []string{"size", "fast", "size", "balanced"}, got)
	assert.Contains(t, c.View(), "(•) Balanced")
}

func TestStepper(t *testing.T) {
	t.Parallel()

	s := NewStepper(theme.NewManager(), func(v float64) string { return "mem" }, 0.5, 8, 0.5, 2)
	assert.Equal(t, 2.0, s.Value())

	s.Focus()
	s.Update(key("right"))
	assert.Equal(t, 2.5, s.Value())

	s.SetValue(100)
	assert.Equal(t, 8.0, s.Value())
	assert.Equal(t, 1.0, s.Percent())

	s.SetValue(0.7)
	assert.Equal(t, 0.5, s.Value())
	s.Decrement()
	assert.Equal(t, 0.5, s.Value())
	assert.True(t, strings.HasPrefix(s.View(), "mem"))
}

func TestFormFocusRing(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	a := NewCheckbox(themes, "a", false)
	b := NewCheckbox(themes, "b", false)
	field := NewTextField(themes, "c", "")
	form := NewForm(a, b, field)

	form.Update(key(" "))
	assert.False(t, a.Checked(), "blurred form ignores keys")

	form.Focus()
	assert.True(t, a.Focused())
	form.Update(key(" "))
	assert.True(t, a.Checked())

	form.Update(key("down"))
	assert.False(t, a.Focused())
	assert.True(t, b.Focused())

	form.Update(key("up"))
	form.Update(key("up"))
	assert.True(t, field.Focused())
	assert.Equal(t, 2, form.Cursor())

	form.Blur()
	assert.False(t, field.Focused())

	form.Close()
	assert.False(t, a.Bound())
	assert.False(t, field.Bound())
}

func TestSideMenuFollowsCurrentPage(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	store := state.New()
	menu := NewSideMenu(themes, store, "Navigation", 24)

	var activated []string
	for _, name := range []string{"home", "stats"} {
		name := name
		menu.AddMenuItem(name, strings.ToUpper(name), "*", func() tea.Cmd {
			activated = append(activated, name)
			return nil
		})
	}
	menu.AddFooterItem("settings", "Settings", "⚙", func() tea.Cmd {
		activated = append(activated, "settings")
		return nil
	})
	assert.Equal(t, []string{"home", "stats", "settings"}, menu.Names())

	store.Set(state.KeyCurrentPage, "stats")
	assert.Equal(t, "stats", menu.Active())
	assert.True(t, menu.Button("stats").Active())
	assert.False(t, menu.Button("home").Active())
	assert.Equal(t, "stats", menu.Cursor())

	menu.Focus()
	menu.Update(key("down"))
	assert.Equal(t, "settings", menu.Cursor())
	menu.Update(key("down"))
	assert.Equal(t, "home", menu.Cursor())
	menu.Update(key("enter"))
	assert.Equal(t, []string{"home"}, activated)

	menu.Close()
	store.Set(state.KeyCurrentPage, "home")
	assert.Equal(t, "stats", menu.Active())
	assert.Zero(t, store.Subscribers(state.KeyCurrentPage))
}

func TestSideMenuCollapse(t *testing.T) {
	t.Parallel()

	menu := NewSideMenu(theme.NewManager(), state.New(), "Navigation", 24)
	menu.AddMenuItem("home", "Home", "H", nil)

	assert.Equal(t, 24, menu.Width())
	assert.Contains(t, menu.View(10), "Home")

	menu.Toggle()
	assert.True(t, menu.Collapsed())
	assert.Equal(t, collapsedWidth, menu.Width())
	assert.NotContains(t, menu.View(10), "Home")
	assert.Equal(t, 10, lipgloss.Height(menu.View(10)))
}

func TestLabelFollowsTheme(t *testing.T) {
	t.Parallel()

	themes := theme.NewManager()
	l := Heading(themes, "Welcome")
	assert.True(t, l.Style().GetBold())
	assert.Equal(t, lipgloss.Color("#212529"), l.Style().GetForeground())

	require.NoError(t, themes.SetTheme(theme.Dark))
	assert.Equal(t, lipgloss.Color("#ffffff"), l.Style().GetForeground())

	l.WithColor(theme.Success)
	assert.Equal(t, lipgloss.Color("#28a745"), l.Style().GetForeground())
	l.SetText("Done")
	assert.Equal(t, "Done", l.View())
}
