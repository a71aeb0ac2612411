package pages

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

// StatisticsPage shows build figures and a table of recent builds. The
// figures are fixed sample data.
type StatisticsPage struct {
	page.Base
	env   *Env
	table *widgets.Table
}

func NewStatistics(env *Env) *StatisticsPage {
	return &StatisticsPage{Base: page.NewBase(Statistics), env: env}
}

type stat struct {
	labelKey string
	value    string
	color    theme.ColorKey
}

var stats = []stat{
	{"stat_total_builds", "42", theme.Accent},
	{"stat_successful", "38", theme.Success},
	{"stat_failed", "4", theme.Error},
	{"stat_avg_time", "2m 34s", theme.AccentHover},
	{"stat_total_size", "1.2 GB", theme.Warning},
	{"stat_last_build", "2h ago", theme.ForegroundPrimary},
}

func recentBuilds(env *Env) []table.Row {
	ok, failed := env.T("status_success"), env.T("status_failed")
	return []table.Row{
		{"MyApp v1.0", ok, "45.2 MB", "2m 15s", "2024-01-15"},
		{"DataProcessor", ok, "32.1 MB", "1m 48s", "2024-01-14"},
		{"GameEngine", failed, "-", "3m 02s", "2024-01-14"},
		{"WebScraper", ok, "28.7 MB", "1m 32s", "2024-01-13"},
	}
}

func (p *StatisticsPage) CreateContent(page.Surface) page.Content {
	env := p.env
	s := newScreen(env, "page_statistics_title", "page_statistics_subtitle")

	cards := make([]*widgets.Panel, 0, len(stats))
	values := make([]*widgets.Label, 0, len(stats))
	labels := make([]*widgets.Label, 0, len(stats))
	for _, st := range stats {
		cards = append(cards, widgets.NewCard(env.Themes, "", ""))
		values = append(values, widgets.NewLabel(env.Themes, st.value, theme.FontHeading, st.color))
		labels = append(labels, widgets.Muted(env.Themes, env.T(st.labelKey)))
		s.own(cards[len(cards)-1], values[len(values)-1], labels[len(labels)-1])
	}

	columns := []table.Column{
		{Title: env.T("table_header_project"), Width: 16},
		{Title: env.T("table_header_status"), Width: 10},
		{Title: env.T("table_header_size"), Width: 10},
		{Title: env.T("table_header_time"), Width: 8},
		{Title: env.T("table_header_date"), Width: 12},
	}
	p.table = widgets.NewTable(env.Themes, columns, recentBuilds(env))
	recentCard := widgets.NewCard(env.Themes, env.T("card_recent_builds_title"), env.T("card_recent_builds_subtitle"))

	s.target = p.table
	s.own(recentCard)
	s.body = func(width int) string {
		w := cardWidth(width)
		perRow := 3
		cardW := w/perRow - 1
		if cardW < 16 {
			perRow, cardW = 1, w
		}
		var rows []string
		for i := 0; i < len(cards); i += perRow {
			var row []string
			for j := i; j < i+perRow && j < len(cards); j++ {
				row = append(row, cards[j].WithWidth(cardW).Render(column(values[j].View(), labels[j].View())))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		rows = append(rows, recentCard.WithWidth(w).Render(p.table.View()))
		return column(rows...)
	}
	return s
}

// Table is the recent builds table, or nil before the page is built.
func (p *StatisticsPage) Table() *widgets.Table { return p.table }

func (p *StatisticsPage) Destroy() {
	p.Base.Destroy()
	p.table = nil
}
