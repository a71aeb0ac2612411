package pages

import (
	"strings"

	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/project"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

// PackagingSettingsPage controls how the executable is produced.
type PackagingSettingsPage struct {
	page.Base
	env *Env
}

func NewPackagingSettings(env *Env) *PackagingSettingsPage {
	return &PackagingSettingsPage{Base: page.NewBase(PackagingSettings), env: env}
}

var optimizationKeys = map[project.Optimization]string{
	project.OptimizeFast:     "opt_fast_build",
	project.OptimizeBalanced: "opt_balanced",
	project.OptimizeSize:     "opt_smaller_size",
}

func (p *PackagingSettingsPage) CreateContent(page.Surface) page.Content {
	env := p.env
	set := env.Settings
	s := newScreen(env, "page_packaging_settings_title", "page_packaging_settings_subtitle")

	single := widgets.NewCheckbox(env.Themes, env.T("single_executable_checkbox"), set.SingleFile).
		WithHint(env.T("single_executable_desc")).
		OnChange(func(v bool) { set.SingleFile = v })
	console := widgets.NewCheckbox(env.Themes, env.T("show_console_checkbox"), set.Console).
		WithHint(env.T("show_console_desc")).
		OnChange(func(v bool) { set.Console = v })

	options := make([]widgets.Option, 0, len(project.Optimizations))
	for _, o := range project.Optimizations {
		options = append(options, widgets.Option{Value: string(o), Label: env.T(optimizationKeys[o])})
	}
	optimization := widgets.NewChoice(env.Themes, env.T("optimization_level_label"), options, string(set.Optimization)).
		OnChange(func(v string) { set.Optimization = project.Optimization(v) })

	threading := widgets.NewCheckbox(env.Themes, env.T("enable_threading_checkbox"), set.Threading).
		OnChange(func(v bool) { set.Threading = v })

	form := widgets.NewForm(single, console, optimization, threading)
	plugins := make([]*widgets.Checkbox, 0, len(project.Plugins))
	for _, name := range project.Plugins {
		name := name
		box := widgets.NewCheckbox(env.Themes, name, set.HasPlugin(name)).
			OnChange(func(bool) { set.TogglePlugin(name) })
		plugins = append(plugins, box)
		form.Add(box)
	}

	outputName := widgets.NewTextField(env.Themes, env.T("output_name_label"), "MyApplication").
		WithValue(set.OutputName).
		OnChange(func(v string) { set.OutputName = strings.TrimSpace(v) })
	form.Add(outputName)

	basicCard := widgets.NewCard(env.Themes, env.T("card_basic_options_title"), env.T("card_basic_options_subtitle"))
	advancedCard := widgets.NewCard(env.Themes, env.T("card_advanced_options_title"), env.T("card_advanced_options_subtitle"))
	outputCard := widgets.NewCard(env.Themes, env.T("card_output_config_title"), env.T("card_output_config_subtitle"))
	pluginsLabel := widgets.NewLabel(env.Themes, env.T("plugins_label"), theme.FontSubheading, theme.ForegroundPrimary)

	s.target = form
	s.own(basicCard, advancedCard, outputCard, pluginsLabel)
	s.body = func(width int) string {
		w := cardWidth(width)
		pluginViews := make([]string, 0, len(plugins)+1)
		pluginViews = append(pluginViews, pluginsLabel.View())
		for _, b := range plugins {
			pluginViews = append(pluginViews, b.View())
		}
		return column(
			basicCard.WithWidth(w).Render(column(single.View(), console.View(), "", optimization.View())),
			advancedCard.WithWidth(w).Render(column(threading.View(), "", column(pluginViews...))),
			outputCard.WithWidth(w).Render(outputName.View()),
		)
	}
	return s
}
