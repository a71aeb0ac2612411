package pages

import (
	"github.com/alexisbeaulieu97/packdeck/internal/page"
)

// Page names.
const (
	Home              = "home"
	FileSettings      = "file_settings"
	PackagingSettings = "packaging_settings"
	AdvancedSettings  = "advanced_settings"
	Statistics        = "statistics"
	About             = "about"
	GlobalSettings    = "global_settings"
)

// Spec describes one page variant and its menu entry.
type Spec struct {
	Name     string
	LabelKey string
	Icon     string
	Footer   bool
	New      func(env *Env) page.Page
}

// Registry returns the page variants in menu order.
func Registry() []Spec {
	return []Spec{
		{Name: Home, LabelKey: "nav_home", Icon: "⌂", New: func(env *Env) page.Page { return NewHome(env) }},
		{Name: FileSettings, LabelKey: "nav_file_settings", Icon: "▤", New: func(env *Env) page.Page { return NewFileSettings(env) }},
		{Name: PackagingSettings, LabelKey: "nav_packaging", Icon: "▣", New: func(env *Env) page.Page { return NewPackagingSettings(env) }},
		{Name: AdvancedSettings, LabelKey: "nav_advanced", Icon: "⚒", New: func(env *Env) page.Page { return NewAdvancedSettings(env) }},
		{Name: Statistics, LabelKey: "nav_statistics", Icon: "▥", New: func(env *Env) page.Page { return NewStatistics(env) }},
		{Name: About, LabelKey: "nav_about", Icon: "ⓘ", New: func(env *Env) page.Page { return NewAbout(env) }},
		{Name: GlobalSettings, LabelKey: "nav_global_settings", Icon: "⚙", Footer: true, New: func(env *Env) page.Page { return NewGlobalSettings(env) }},
	}
}

// Lookup returns the registry entry called name.
func Lookup(name string) (Spec, bool) {
	for _, spec := range Registry() {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}
