package pages

import (
	"strconv"

	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

// AdvancedSettingsPage tunes build resources and diagnostics.
type AdvancedSettingsPage struct {
	page.Base
	env *Env
}

func NewAdvancedSettings(env *Env) *AdvancedSettingsPage {
	return &AdvancedSettingsPage{Base: page.NewBase(AdvancedSettings), env: env}
}

func (p *AdvancedSettingsPage) CreateContent(page.Surface) page.Content {
	env := p.env
	set := env.Settings
	s := newScreen(env, "page_advanced_settings_title", "page_advanced_settings_subtitle")

	threads := widgets.NewStepper(env.Themes, func(v float64) string {
		return env.T("build_threads_label", int(v))
	}, 1, 16, 1, float64(set.BuildThreads)).
		OnChange(func(v float64) { set.BuildThreads = int(v) })
	memory := widgets.NewStepper(env.Themes, func(v float64) string {
		return env.T("memory_limit_label", strconv.FormatFloat(v, 'f', 1, 64))
	}, 0.5, 8, 0.5, set.MemoryLimitGB).
		OnChange(func(v float64) { set.MemoryLimitGB = v })

	debug := widgets.NewCheckbox(env.Themes, env.T("debug_mode_checkbox"), set.DebugMode).
		OnChange(func(v bool) { set.DebugMode = v })
	verbose := widgets.NewCheckbox(env.Themes, env.T("verbose_output_checkbox"), set.Verbose).
		OnChange(func(v bool) { set.Verbose = v })
	report := widgets.NewCheckbox(env.Themes, env.T("generate_report_checkbox"), set.GenerateReport).
		OnChange(func(v bool) { set.GenerateReport = v })
	progress := widgets.NewCheckbox(env.Themes, env.T("show_progress_checkbox"), set.ShowProgress).
		OnChange(func(v bool) { set.ShowProgress = v })

	perfCard := widgets.NewCard(env.Themes, env.T("card_perf_tuning_title"), env.T("card_perf_tuning_subtitle"))
	debugCard := widgets.NewCard(env.Themes, env.T("card_debug_logging_title"), env.T("card_debug_logging_subtitle"))

	s.target = widgets.NewForm(threads, memory, debug, verbose, report, progress)
	s.own(perfCard, debugCard)
	s.body = func(width int) string {
		w := cardWidth(width)
		return column(
			perfCard.WithWidth(w).Render(column(threads.View(), "", memory.View())),
			debugCard.WithWidth(w).Render(column(debug.View(), verbose.View(), report.View(), progress.View())),
		)
	}
	return s
}
