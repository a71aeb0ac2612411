// Package pages holds the application's screens. Each is an independent
// page.Page built on page.Base and composed from themed widgets.
package pages

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/packdeck/internal/i18n"
	"github.com/alexisbeaulieu97/packdeck/internal/logger"
	"github.com/alexisbeaulieu97/packdeck/internal/project"
	"github.com/alexisbeaulieu97/packdeck/internal/state"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Env is what every page is built from.
type Env struct {
	Themes   *theme.Manager
	Store    *state.Store
	Catalog  *i18n.Catalog
	Settings *project.Settings
	Prefs    *Preferences
	Zones    *zone.Manager
	Log      *logger.Logger
	Version  string
}

// T looks key up in the catalog.
func (e *Env) T(key string, args ...any) string {
	return e.Catalog.Text(key, args...)
}

// Preferences are the global settings. Like project settings they live
// only for the session.
type Preferences struct {
	Theme         string
	Language      string
	AutoSave      bool
	CheckUpdates  bool
	Notifications bool
	RememberSize  bool
	OutputDir     string
	ProjectsDir   string
	TempDir       string
}

// DefaultPreferences roots the default paths under home.
func DefaultPreferences(home, tmp string) *Preferences {
	return &Preferences{
		Theme:         theme.Light,
		Language:      i18n.DefaultLanguage,
		AutoSave:      true,
		CheckUpdates:  true,
		Notifications: true,
		RememberSize:  true,
		OutputDir:     filepath.Join(home, "dist"),
		ProjectsDir:   filepath.Join(home, "projects"),
		TempDir:       tmp,
	}
}

// ThemeRequestMsg asks the application to switch theme. "auto" is resolved
// by the application.
type ThemeRequestMsg struct {
	Name string
}

// LanguageRequestMsg asks the application to switch language and rebuild
// every page.
type LanguageRequestMsg struct {
	Language string
}

// NoticeLevel grades a notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// NoticeMsg asks the application to show a banner.
type NoticeMsg struct {
	Level NoticeLevel
	Title string
	Body  string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
