package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

// AboutPage shows the version and project links.
type AboutPage struct {
	page.Base
	env *Env
}

func NewAbout(env *Env) *AboutPage {
	return &AboutPage{Base: page.NewBase(About), env: env}
}

var links = []struct {
	labelKey string
	bodyKey  string
}{
	{"link_website", "msg_website_body"},
	{"link_documentation", "msg_documentation_body"},
	{"link_report_issue", "msg_issues_body"},
	{"link_support", "msg_support_body"},
}

func (p *AboutPage) CreateContent(page.Surface) page.Content {
	env := p.env
	s := newScreen(env, "app_title", "nav_about")

	version := widgets.NewLabel(env.Themes, env.T("app_version", env.Version), theme.FontSubheading, theme.Accent)
	description := widgets.NewLabel(env.Themes, env.T("app_description"), theme.FontDefault, theme.ForegroundPrimary)
	copyright := widgets.Muted(env.Themes, env.T("copyright_info"))

	buttons := make([]*widgets.Button, 0, len(links))
	for _, l := range links {
		title, body := env.T(l.labelKey), env.T(l.bodyKey)
		b := widgets.NewButton(env.Themes, title).
			WithVariant(widgets.ButtonOutline).
			WithZone(env.Zones, "about:"+l.labelKey).
			OnActivate(func() tea.Cmd {
				return emit(NoticeMsg{Level: NoticeInfo, Title: title, Body: body})
			})
		buttons = append(buttons, b)
	}

	card := widgets.NewCard(env.Themes, "", "")
	fields := make([]widgets.Field, 0, len(buttons))
	for _, b := range buttons {
		fields = append(fields, b)
	}

	s.target = widgets.NewForm(fields...)
	s.own(version, description, copyright, card)
	s.body = func(width int) string {
		row := make([]string, 0, len(buttons)*2)
		for i, b := range buttons {
			if i > 0 {
				row = append(row, " ")
			}
			row = append(row, b.View())
		}
		return card.WithWidth(cardWidth(width)).Render(column(
			version.View(),
			"",
			description.View(),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, row...),
			"",
			copyright.View(),
		))
	}
	return s
}
