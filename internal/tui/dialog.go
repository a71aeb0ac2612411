package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/packaging"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/tui/components"
	"github.com/alexisbeaulieu97/packdeck/internal/tui/pages"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

const dialogWidth = 52

// progressDialog is the modal shown while a packaging run is active.
type progressDialog struct {
	env        *pages.Env
	spinner    spinner.Model
	progress   components.Progress
	steps      components.StepList
	panel      *widgets.Panel
	cancel     *widgets.Button
	status     string
	percent    int
	cancelling bool
}

func newProgressDialog(env *pages.Env, onCancel func() tea.Cmd) *progressDialog {
	s := spinner.New()
	s.Spinner = spinner.Dot

	d := &progressDialog{
		env:      env,
		spinner:  s,
		progress: components.NewProgress(dialogWidth - 10),
		steps:    components.NewStepList(packaging.Steps),
		panel:    widgets.NewCard(env.Themes, env.T("packaging_progress_title"), env.T("packaging_title")),
		cancel: widgets.NewButton(env.Themes, env.T("btn_cancel")).
			WithVariant(widgets.ButtonOutline).
			WithZone(env.Zones, "dialog:cancel").
			OnActivate(onCancel),
		status: "packaging_initializing",
	}
	d.cancel.SetFocused(true)
	return d
}

// apply records a progress event.
func (d *progressDialog) apply(ev packaging.Event) {
	d.status = ev.StatusKey
	if !ev.Cancelled {
		d.percent = ev.Percent
	}
	d.steps.Apply(ev)
}

// summary describes the run so far for the closing notice.
func (d *progressDialog) summary(ev packaging.Event) components.Summary {
	return components.NewSummary(components.SummaryData{
		Total:     d.steps.Total(),
		Completed: d.steps.Completed(),
		Finished:  ev.Done,
		Cancelled: ev.Cancelled,
		Output:    d.env.Settings.ResolvedOutputDir(),
	})
}

func (d *progressDialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return cmd
	case tea.MouseMsg:
		cmd, _ := d.cancel.HandleMouse(msg)
		return cmd
	}
	return nil
}

func (d *progressDialog) View() string {
	themes := d.env.Themes
	active := themes.Active()
	d.spinner.Style = lipgloss.NewStyle().Foreground(themes.Color(theme.Accent))

	text := themes.Style(theme.FontDefault)
	muted := themes.Style(theme.FontSmall).Foreground(themes.Color(theme.ForegroundSecondary))

	status := d.env.T(d.status)
	if d.cancelling {
		status = d.env.T("msg_attempt_cancel")
	}
	file := d.env.T("packaging_file", filepath.Base(d.env.Settings.Script))
	line := lipgloss.JoinHorizontal(lipgloss.Top, d.spinner.View(), " ", text.Render(status))

	return d.panel.WithWidth(dialogWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		muted.Render(file),
		"",
		line,
		d.progress.View(active, d.percent),
		"",
		d.steps.View(active, d.env.T),
		"",
		d.cancel.View(),
	))
}

func (d *progressDialog) Close() {
	widgets.CloseAll(d.panel, d.cancel)
}
