package pages

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

type focusable interface {
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	Close()
}

// screen is the content every page builds: a title block above a
// scrollable body, with input routed to one focus target.
type screen struct {
	title    *widgets.Label
	subtitle *widgets.Label
	target   focusable
	owned    []widgets.Closer
	body     func(width int) string
	view     viewport.Model
	queued   []tea.Cmd
}

func newScreen(env *Env, titleKey, subtitleKey string) *screen {
	s := &screen{
		title:    widgets.Heading(env.Themes, env.T(titleKey)),
		subtitle: widgets.Muted(env.Themes, env.T(subtitleKey)),
		view:     viewport.New(0, 0),
	}
	s.own(s.title, s.subtitle)
	return s
}

// own registers widgets released with the screen.
func (s *screen) own(ws ...widgets.Closer) {
	s.owned = append(s.owned, ws...)
}

// queue schedules cmd to be returned from the next Update.
func (s *screen) queue(cmd tea.Cmd) {
	s.queued = append(s.queued, cmd)
}

func (s *screen) View(width, height int) string {
	header := lipgloss.JoinVertical(lipgloss.Left, s.title.View(), s.subtitle.View(), "")
	bodyHeight := height - lipgloss.Height(header)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	s.view.Width = width
	s.view.Height = bodyHeight
	body := ""
	if s.body != nil {
		body = s.body(width)
	}
	s.view.SetContent(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, s.view.View())
}

func (s *screen) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			s.view, cmd = s.view.Update(msg)
			return cmd
		}
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			s.view, cmd = s.view.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	if s.target != nil {
		cmds = append(cmds, s.target.Update(msg))
	}
	cmds = append(cmds, s.queued...)
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *screen) Focus() tea.Cmd {
	if s.target != nil {
		return s.target.Focus()
	}
	return nil
}

func (s *screen) Blur() {
	if s.target != nil {
		s.target.Blur()
	}
}

// Release revokes every theme subscription the screen's widgets hold.
func (s *screen) Release() {
	if s.target != nil {
		s.target.Close()
	}
	widgets.CloseAll(s.owned...)
}

// column stacks rendered parts.
func column(parts ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// cardWidth leaves room for the card's border and padding.
func cardWidth(width int) int {
	if width < 24 {
		return 20
	}
	return width - 4
}
