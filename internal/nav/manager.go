// Package nav implements page registration, lazy construction, visibility
// transitions and the back-stack.
package nav

import (
	"github.com/alexisbeaulieu97/packdeck/internal/logger"
	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/state"
	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

const pageKind = "page"

// Manager owns the registered pages and the single visible one. Like the
// state store it belongs to the UI goroutine.
type Manager struct {
	surface page.Surface
	store   *state.Store
	log     *logger.Logger
	strict  bool

	pages   map[string]page.Page
	order   []string
	current page.Page
	history []string
}

// Option customises a Manager.
type Option func(*Manager)

// WithLogger attaches a logger for transitions.
func WithLogger(log *logger.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithStrictRegistration makes RegisterPage reject names already in use.
func WithStrictRegistration() Option {
	return func(m *Manager) {
		m.strict = true
	}
}

// New binds a manager to surface, publishing the current page to store.
func New(surface page.Surface, store *state.Store, opts ...Option) *Manager {
	m := &Manager{
		surface: surface,
		store:   store,
		pages:   make(map[string]page.Page),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterPage adds p under p.Name(). An existing page with the same name is
// replaced and, if loaded, destroyed; when it was visible the new instance is
// shown in its place.
func (m *Manager) RegisterPage(p page.Page) error {
	name := p.Name()
	old, exists := m.pages[name]
	if !exists {
		m.pages[name] = p
		m.order = append(m.order, name)
		m.log.With("page", name).Debug("page registered")
		return nil
	}
	if m.strict {
		return packdeckerrors.NewDuplicateRegistrationError(pageKind, name)
	}

	m.pages[name] = p
	m.log.With("page", name).Debug("page replaced")
	if old == p {
		return nil
	}

	if m.current == old {
		old.OnHide()
		m.current = nil
		old.Destroy()
		m.show(p)
		return nil
	}
	if old.Loaded() {
		old.Destroy()
	}
	return nil
}

// UnregisterPage removes and destroys the page called name, hiding it first
// if it is visible. History entries for the name are kept and fail on GoBack.
func (m *Manager) UnregisterPage(name string) error {
	p, ok := m.pages[name]
	if !ok {
		return packdeckerrors.NewNotFoundError(pageKind, name)
	}

	if m.current == p {
		p.OnHide()
		m.current = nil
	}
	p.Destroy()

	delete(m.pages, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i:i], m.order[i+1:]...)
			break
		}
	}
	m.log.With("page", name).Debug("page unregistered")
	return nil
}

// NavigateTo makes name the visible page. The previous page's OnHide runs
// before the target is built or shown. Unknown names return a NotFoundError
// and change nothing.
func (m *Manager) NavigateTo(name string) error {
	target, ok := m.pages[name]
	if !ok {
		m.log.With("page", name).Warn("navigation to unknown page")
		return packdeckerrors.NewNotFoundError(pageKind, name)
	}

	from := ""
	if m.current != nil {
		from = m.current.Name()
		m.current.OnHide()
		if c := m.current.Content(); c != nil {
			m.surface.Detach(c)
		}
		m.current = nil
	}

	m.show(target)
	m.log.WithFields(map[string]any{"page": name, "from": from, "depth": len(m.history)}).Info("navigated")
	return nil
}

func (m *Manager) show(target page.Page) {
	name := target.Name()
	if !target.Loaded() {
		content := target.CreateContent(m.surface)
		target.Store(m.surface, content)
		m.log.With("page", name).Debug("page content built")
	}

	if c := target.Content(); c != nil {
		m.surface.Attach(c)
	} else {
		m.log.With("page", name).Warn("page built no content")
	}
	m.current = target
	target.OnShow()

	if len(m.history) == 0 || m.history[len(m.history)-1] != name {
		m.history = append(m.history, name)
	}
	if m.store != nil {
		m.store.Set(state.KeyCurrentPage, name)
	}
}

// GoBack pops the current entry and navigates to the one below it. With one
// or no entries it does nothing. If the entry below names a page that has
// since been unregistered, the pop stands and a NotFoundError is returned.
func (m *Manager) GoBack() error {
	if len(m.history) <= 1 {
		return nil
	}
	m.history = m.history[:len(m.history)-1]
	return m.NavigateTo(m.history[len(m.history)-1])
}

// CanGoBack reports whether GoBack would navigate.
func (m *Manager) CanGoBack() bool {
	return len(m.history) > 1
}

// Current returns the visible page, or nil before the first navigation.
func (m *Manager) Current() page.Page {
	return m.current
}

// CurrentName returns the visible page's name, or "".
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// History returns a copy of the back-stack, oldest first.
func (m *Manager) History() []string {
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

// Page returns the page registered as name.
func (m *Manager) Page(name string) (page.Page, bool) {
	p, ok := m.pages[name]
	return p, ok
}

// Names returns page names in registration order.
func (m *Manager) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
