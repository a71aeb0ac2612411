package pages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/project"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

// FileSettingsPage edits the extra files bundled with the script and the
// patterns left out of it.
type FileSettingsPage struct {
	page.Base
	env *Env
}

func NewFileSettings(env *Env) *FileSettingsPage {
	return &FileSettingsPage{Base: page.NewBase(FileSettings), env: env}
}

var exclusionKeys = map[project.Exclusion]string{
	project.ExcludePycache:  "exclude_pycache",
	project.ExcludeTests:    "exclude_test_files",
	project.ExcludeDocs:     "exclude_documentation",
	project.ExcludeDevTools: "exclude_dev_tools",
}

func (p *FileSettingsPage) CreateContent(page.Surface) page.Content {
	env := p.env
	s := newScreen(env, "page_file_settings_title", "page_file_settings_subtitle")

	include, includeAdd, includeRemove := p.listEditor(
		"card_include_files_title", "field_include_placeholder", "files:include",
		&env.Settings.IncludeFiles)
	exclude, excludeAdd, excludeRemove := p.listEditor(
		"card_exclude_patterns_title", "field_include_placeholder", "files:exclude",
		&env.Settings.ExcludePatterns)

	form := widgets.NewForm(include, includeAdd, includeRemove, exclude, excludeAdd, excludeRemove)
	boxes := make([]*widgets.Checkbox, 0, len(project.Exclusions))
	for _, ex := range project.Exclusions {
		ex := ex
		box := widgets.NewCheckbox(env.Themes, env.T(exclusionKeys[ex]), env.Settings.Exclusions[ex]).
			OnChange(func(v bool) { env.Settings.Exclusions[ex] = v })
		boxes = append(boxes, box)
		form.Add(box)
	}

	includeCard := widgets.NewCard(env.Themes, env.T("card_include_files_title"), env.T("card_include_files_subtitle"))
	excludeCard := widgets.NewCard(env.Themes, env.T("card_exclude_patterns_title"), env.T("card_exclude_patterns_subtitle"))
	commonLabel := widgets.NewLabel(env.Themes, env.T("common_exclusions_label"), theme.FontSubheading, theme.ForegroundPrimary)
	includeList := widgets.Muted(env.Themes, "")
	excludeList := widgets.Muted(env.Themes, "")

	s.target = form
	s.own(includeCard, excludeCard, commonLabel, includeList, excludeList)
	s.body = func(width int) string {
		w := cardWidth(width)
		includeList.SetText(listing(env, env.Settings.IncludeFiles))
		excludeList.SetText(listing(env, env.Settings.ExcludePatterns))
		checks := make([]string, 0, len(boxes)+1)
		checks = append(checks, commonLabel.View())
		for _, b := range boxes {
			checks = append(checks, b.View())
		}
		return column(
			includeCard.WithWidth(w).Render(column(include.View(), buttonRow(includeAdd, includeRemove), includeList.View())),
			excludeCard.WithWidth(w).Render(column(exclude.View(), buttonRow(excludeAdd, excludeRemove), excludeList.View(), "", column(checks...))),
		)
	}
	return s
}

// listEditor builds a text field with add and remove buttons editing list.
// Add appends the field's value unless it is blank or present. Remove drops
// the entry equal to the field's value, or the last entry.
func (p *FileSettingsPage) listEditor(labelKey, placeholderKey, zoneID string, list *[]string) (*widgets.TextField, *widgets.Button, *widgets.Button) {
	env := p.env
	field := widgets.NewTextField(env.Themes, env.T(labelKey), env.T(placeholderKey))
	add := widgets.NewButton(env.Themes, env.T("btn_add_files")).
		WithVariant(widgets.ButtonPrimary).
		WithZone(env.Zones, zoneID+":add").
		OnActivate(func() tea.Cmd {
			v := strings.TrimSpace(field.Value())
			if v == "" || contains(*list, v) {
				return nil
			}
			*list = append(*list, v)
			field.SetValue("")
			return nil
		})
	remove := widgets.NewButton(env.Themes, env.T("btn_remove")).
		WithVariant(widgets.ButtonOutline).
		WithZone(env.Zones, zoneID+":remove").
		OnActivate(func() tea.Cmd {
			*list = removeEntry(*list, strings.TrimSpace(field.Value()))
			return nil
		})
	return field, add, remove
}

func buttonRow(bs ...*widgets.Button) string {
	parts := make([]string, 0, len(bs)*2)
	for i, b := range bs {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func listing(env *Env, items []string) string {
	if len(items) == 0 {
		return env.T("include_empty")
	}
	return "• " + strings.Join(items, "\n• ")
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func removeEntry(list []string, v string) []string {
	if len(list) == 0 {
		return list
	}
	for i, item := range list {
		if item == v {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list[:len(list)-1]
}
