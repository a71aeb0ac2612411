package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/logger"
	"github.com/alexisbeaulieu97/packdeck/internal/observer"
	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

// Observer is notified with the newly active theme.
type Observer func(Theme)

// Manager holds the theme registry and the active selection. It is owned by
// the UI goroutine and is not safe for concurrent use.
type Manager struct {
	themes     map[string]Theme
	activeName string
	observers  observer.List[Theme]
	log        *logger.Logger
}

// Option customises a Manager.
type Option func(*Manager)

// WithLogger attaches a logger for theme switches.
func WithLogger(log *logger.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithTheme registers an additional theme at construction time.
func WithTheme(name string, t Theme) Option {
	return func(m *Manager) {
		m.themes[name] = t
	}
}

// NewManager returns a manager holding the built-in light and dark themes
// with light active.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		themes: map[string]Theme{
			Light: LightTheme(),
			Dark:  DarkTheme(),
		},
		activeName: Light,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterTheme adds or replaces a theme. Replacing the active theme does
// not notify observers; the next lookup sees the new values.
func (m *Manager) RegisterTheme(name string, t Theme) {
	m.themes[name] = t
}

// SetTheme activates name and notifies observers in registration order. An
// unknown name leaves the manager untouched and returns a NotFoundError.
func (m *Manager) SetTheme(name string) error {
	t, ok := m.themes[name]
	if !ok {
		m.log.With("theme", name).Warn("unknown theme requested")
		return packdeckerrors.NewNotFoundError("theme", name)
	}
	m.activeName = name
	m.log.WithFields(map[string]any{"theme": name, "observers": m.observers.Len()}).Debug("theme activated")
	m.observers.Notify(t)
	return nil
}

// RegisterObserver appends fn to the observer list. Registering the same
// function twice notifies it twice.
func (m *Manager) RegisterObserver(fn Observer) observer.Handle {
	return m.observers.Add(fn)
}

// Active returns the active theme.
func (m *Manager) Active() Theme {
	return m.themes[m.activeName]
}

// ActiveName returns the registry key of the active theme.
func (m *Manager) ActiveName() string {
	return m.activeName
}

// Has reports whether name is registered.
func (m *Manager) Has(name string) bool {
	_, ok := m.themes[name]
	return ok
}

// Get returns the theme registered as name.
func (m *Manager) Get(name string) (Theme, bool) {
	t, ok := m.themes[name]
	return t, ok
}

// Names returns registered theme names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the name following the active one in Names order, wrapping.
func (m *Manager) Next() string {
	names := m.Names()
	for i, name := range names {
		if name == m.activeName {
			return names[(i+1)%len(names)]
		}
	}
	return m.activeName
}

// Color returns the active theme's color for key, or FallbackColor.
func (m *Manager) Color(key ColorKey) lipgloss.Color {
	return m.Active().Color(key)
}

// Font returns the active theme's font for key, or FallbackFont.
func (m *Manager) Font(key FontKey) Font {
	return m.Active().Font(key)
}

// Style returns a text style for font key in the active foreground color.
func (m *Manager) Style(key FontKey) lipgloss.Style {
	return m.Active().Text(key)
}
