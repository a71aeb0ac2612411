package pages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/project"
	"github.com/alexisbeaulieu97/packdeck/internal/state"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

// HomePage selects the script, output directory and icon.
type HomePage struct {
	page.Base
	env *Env

	script *widgets.TextField
	info   *widgets.Label
}

func NewHome(env *Env) *HomePage {
	return &HomePage{Base: page.NewBase(Home), env: env}
}

func (p *HomePage) CreateContent(page.Surface) page.Content {
	env := p.env
	s := newScreen(env, "page_home_title", "page_home_subtitle")

	p.script = widgets.NewTextField(env.Themes, env.T("card_select_file_title"), env.T("field_script_placeholder")).
		WithValue(env.Settings.Script).
		OnChange(func(v string) {
			env.Settings.Script = v
			env.Store.Set(state.KeyProjectScript, v)
		})
	p.info = widgets.Muted(env.Themes, "")
	inspect := widgets.NewButton(env.Themes, env.T("btn_inspect")).
		WithVariant(widgets.ButtonOutline).
		WithZone(env.Zones, "home:inspect").
		OnActivate(func() tea.Cmd {
			p.Inspect()
			return nil
		})

	output := widgets.NewTextField(env.Themes, env.T("card_output_dir_title"), env.T("field_output_placeholder")).
		WithValue(env.Settings.OutputDir).
		OnChange(func(v string) {
			env.Settings.OutputDir = v
			env.Store.Set(state.KeyProjectOutputDir, v)
		})
	outputHint := widgets.Muted(env.Themes, "")

	icon := widgets.NewTextField(env.Themes, env.T("card_app_icon_title"), env.T("field_icon_placeholder")).
		WithValue(env.Settings.Icon).
		OnChange(func(v string) {
			env.Settings.Icon = v
			env.Store.Set(state.KeyProjectIcon, v)
		})
	iconHint := widgets.Muted(env.Themes, "")

	fileCard := widgets.NewCard(env.Themes, env.T("card_select_file_title"), env.T("card_select_file_subtitle"))
	outputCard := widgets.NewCard(env.Themes, env.T("card_output_dir_title"), env.T("card_output_dir_subtitle"))
	iconCard := widgets.NewCard(env.Themes, env.T("card_app_icon_title"), env.T("card_app_icon_subtitle"))

	s.target = widgets.NewForm(p.script, inspect, output, icon)
	s.own(p.info, outputHint, iconHint, fileCard, outputCard, iconCard)
	s.body = func(width int) string {
		w := cardWidth(width)
		if dir := env.Settings.ResolvedOutputDir(); dir != "" {
			outputHint.SetText(env.T("output_auto_selected", dir))
		} else {
			outputHint.SetText("")
		}
		if env.Settings.Icon == "" {
			iconHint.SetText(env.T("icon_default_status"))
		} else {
			iconHint.SetText(env.T("file_info_selected", env.Settings.Icon))
		}
		return column(
			fileCard.WithWidth(w).Render(column(p.script.View(), inspect.View(), p.info.View())),
			outputCard.WithWidth(w).Render(column(output.View(), outputHint.View())),
			iconCard.WithWidth(w).Render(column(icon.View(), iconHint.View())),
		)
	}
	return s
}

// Inspect describes the selected script in the info line.
func (p *HomePage) Inspect() {
	if p.info == nil {
		return
	}
	env := p.env
	path := env.Settings.Script
	if path == "" {
		p.info.SetText("")
		return
	}

	fi, err := project.Inspect(path)
	if err != nil {
		env.Log.With("script", path).Error(err, "inspect failed")
		p.info.WithColor(theme.Error)
		p.info.SetText(env.T("file_info_missing", path))
		return
	}

	p.info.WithColor(theme.ForegroundSecondary)
	lines := env.T("file_info_selected", fi.Name) + "\n" +
		env.T("file_info_path", fi.Path) + "\n" +
		env.T("file_info_size", project.HumanSize(fi.Size)) + "\n" +
		env.T("file_info_modified", fi.ModTime.Format("2006-01-02 15:04"))
	if fi.InRepo {
		status := env.T("file_info_clean")
		if fi.Dirty {
			status = env.T("file_info_dirty")
		}
		lines += "\n" + env.T("file_info_repo", fi.Branch, fi.Commit) + " (" + status + ")"
	} else {
		lines += "\n" + env.T("file_info_not_repo")
	}
	p.info.SetText(lines)
}

// Info returns the inspection text currently shown.
func (p *HomePage) Info() string {
	if p.info == nil {
		return ""
	}
	return p.info.Text()
}

func (p *HomePage) Destroy() {
	p.Base.Destroy()
	p.script = nil
	p.info = nil
}
