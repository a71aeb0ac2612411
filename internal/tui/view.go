package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/tui/pages"
)

func (m App) View() string {
	themes := m.env.Themes

	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(themes.Color(theme.Accent))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(themes.Color(theme.ForegroundSecondary))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(themes.Color(theme.Border))
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
	m.help.Styles.FullSeparator = m.help.Styles.ShortSeparator
	helpView := m.help.View(m.keys)

	footer := []string{}
	if m.notice != nil {
		footer = append(footer, m.noticeView())
	}
	footer = append(footer, m.bottomView(), helpView)
	below := lipgloss.JoinVertical(lipgloss.Left, footer...)

	bodyHeight := m.height - lipgloss.Height(below)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var main string
	if m.dialog != nil {
		main = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.dialog.View())
	} else {
		sidebar := m.menu.View(bodyHeight)
		contentWidth := m.width - lipgloss.Width(sidebar) - 2
		if contentWidth < 10 {
			contentWidth = 10
		}
		page := lipgloss.NewStyle().
			Padding(0, 1).
			Height(bodyHeight).
			Render(m.content.View(contentWidth, bodyHeight))
		main = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, page)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, main, below)
	if m.env.Zones != nil {
		return m.env.Zones.Scan(view)
	}
	return view
}

func (m App) bottomView() string {
	themes := m.env.Themes
	bar := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(themes.Color(theme.Border))
	row := lipgloss.JoinHorizontal(lipgloss.Center, m.multi.View(), "   ", m.start.View())
	return bar.Render(row)
}

func (m App) noticeView() string {
	themes := m.env.Themes
	color := themes.Color(theme.Accent)
	switch m.notice.level {
	case pages.NoticeWarning:
		color = themes.Color(theme.Warning)
	case pages.NoticeError:
		color = themes.Color(theme.Error)
	}
	box := lipgloss.NewStyle().
		Width(m.width-1).
		Padding(0, 1).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color)
	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(m.notice.title)
	text := title
	if m.notice.body != "" {
		text = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ",
			lipgloss.NewStyle().Foreground(themes.Color(theme.ForegroundPrimary)).Render(m.notice.body))
	}
	return box.Render(text)
}
