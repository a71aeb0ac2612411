package pages

import (
	"strings"

	"github.com/alexisbeaulieu97/packdeck/internal/config"
	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

var languageNames = map[string]string{
	"en":    "English",
	"zh-TW": "繁體中文",
}

// GlobalSettingsPage edits preferences shared by every project. Theme and
// language changes are requested from the application rather than applied
// here.
type GlobalSettingsPage struct {
	page.Base
	env *Env
}

func NewGlobalSettings(env *Env) *GlobalSettingsPage {
	return &GlobalSettingsPage{Base: page.NewBase(GlobalSettings), env: env}
}

func (p *GlobalSettingsPage) themeOptions() []widgets.Option {
	env := p.env
	opts := []widgets.Option{
		{Value: theme.Light, Label: env.T("theme_light")},
		{Value: theme.Dark, Label: env.T("theme_dark")},
		{Value: config.ThemeAuto, Label: env.T("theme_auto")},
	}
	for _, name := range env.Themes.Names() {
		if name == theme.Light || name == theme.Dark {
			continue
		}
		label := name
		if t, ok := env.Themes.Get(name); ok {
			label = t.Name()
		}
		opts = append(opts, widgets.Option{Value: name, Label: label})
	}
	return opts
}

func (p *GlobalSettingsPage) languageOptions() []widgets.Option {
	langs := p.env.Catalog.Languages()
	opts := make([]widgets.Option, 0, len(langs))
	for _, lang := range langs {
		label, ok := languageNames[lang]
		if !ok {
			label = lang
		}
		opts = append(opts, widgets.Option{Value: lang, Label: label})
	}
	return opts
}

func (p *GlobalSettingsPage) CreateContent(page.Surface) page.Content {
	env := p.env
	prefs := env.Prefs
	s := newScreen(env, "page_global_settings_title", "page_global_settings_subtitle")

	themeChoice := widgets.NewChoice(env.Themes, env.T("theme_label"), p.themeOptions(), prefs.Theme).
		OnChange(func(v string) {
			prefs.Theme = v
			s.queue(emit(ThemeRequestMsg{Name: v}))
		})
	langChoice := widgets.NewChoice(env.Themes, env.T("language_label"), p.languageOptions(), env.Catalog.Language()).
		OnChange(func(v string) {
			prefs.Language = v
			s.queue(emit(LanguageRequestMsg{Language: v}))
		})

	autoSave := widgets.NewCheckbox(env.Themes, env.T("behavior_auto_save"), prefs.AutoSave).
		OnChange(func(v bool) { prefs.AutoSave = v })
	updates := widgets.NewCheckbox(env.Themes, env.T("behavior_check_updates"), prefs.CheckUpdates).
		OnChange(func(v bool) { prefs.CheckUpdates = v })
	notifications := widgets.NewCheckbox(env.Themes, env.T("behavior_notifications"), prefs.Notifications).
		OnChange(func(v bool) { prefs.Notifications = v })
	rememberSize := widgets.NewCheckbox(env.Themes, env.T("behavior_remember_size"), prefs.RememberSize).
		OnChange(func(v bool) { prefs.RememberSize = v })

	pathField := func(labelKey string, target *string) *widgets.TextField {
		return widgets.NewTextField(env.Themes, env.T(labelKey), "").
			WithValue(*target).
			OnChange(func(v string) { *target = strings.TrimSpace(v) })
	}
	outputDir := pathField("path_output_dir_label", &prefs.OutputDir)
	projectsDir := pathField("path_projects_dir_label", &prefs.ProjectsDir)
	tempDir := pathField("path_temp_dir_label", &prefs.TempDir)

	appearance := widgets.NewCard(env.Themes, env.T("card_appearance_title"), env.T("card_appearance_subtitle"))
	behavior := widgets.NewCard(env.Themes, env.T("card_behavior_title"), env.T("card_behavior_subtitle"))
	paths := widgets.NewCard(env.Themes, env.T("card_default_paths_title"), env.T("card_default_paths_subtitle"))

	s.target = widgets.NewForm(themeChoice, langChoice, autoSave, updates, notifications, rememberSize, outputDir, projectsDir, tempDir)
	s.own(appearance, behavior, paths)
	s.body = func(width int) string {
		w := cardWidth(width)
		return column(
			appearance.WithWidth(w).Render(column(themeChoice.View(), "", langChoice.View())),
			behavior.WithWidth(w).Render(column(autoSave.View(), updates.View(), notifications.View(), rememberSize.View())),
			paths.WithWidth(w).Render(column(outputDir.View(), projectsDir.View(), tempDir.View())),
		)
	}
	return s
}
