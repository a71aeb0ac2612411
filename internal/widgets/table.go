package widgets

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Table is a themed bubbles table.
type Table struct {
	themed
	model table.Model
}

// NewTable creates a table of rows under columns.
func NewTable(themes *theme.Manager, columns []table.Column, rows []table.Row) *Table {
	t := &Table{
		model: table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithHeight(len(rows)+1),
			table.WithFocused(false),
		),
	}
	t.bind(themes, t.restyle)
	return t
}

func (t *Table) restyle(th theme.Theme) {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Color(theme.Border)).
		BorderBottom(true).
		Foreground(th.Color(theme.ForegroundPrimary)).
		Background(th.Color(theme.BackgroundTertiary)).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(th.Color(theme.ForegroundSecondary))
	styles.Selected = styles.Selected.
		Foreground(onAccent).
		Background(th.Color(theme.Accent)).
		Bold(false)
	t.model.SetStyles(styles)
}

func (t *Table) Focus() tea.Cmd {
	t.model.Focus()
	return nil
}

func (t *Table) Blur()         { t.model.Blur() }
func (t *Table) Focused() bool { return t.model.Focused() }

// Cursor returns the selected row index.
func (t *Table) Cursor() int { return t.model.Cursor() }

// SelectedRow returns the row under the cursor.
func (t *Table) SelectedRow() table.Row { return t.model.SelectedRow() }

func (t *Table) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd
}

func (t *Table) View() string { return t.model.View() }
