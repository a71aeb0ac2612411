// Package tui is the application shell: a side menu, a content area driven
// by the navigation manager, a bottom action bar, a notice banner and the
// packaging progress dialog.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/packdeck/internal/config"
	"github.com/alexisbeaulieu97/packdeck/internal/nav"
	"github.com/alexisbeaulieu97/packdeck/internal/packaging"
	"github.com/alexisbeaulieu97/packdeck/internal/state"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
	"github.com/alexisbeaulieu97/packdeck/internal/tui/pages"
	"github.com/alexisbeaulieu97/packdeck/internal/widgets"
)

// FocusArea names the region receiving keys.
type FocusArea int

const (
	FocusSidebar FocusArea = iota
	FocusContent
	FocusBottom
	focusAreas
)

// Options configures New.
type Options struct {
	Env          *pages.Env
	InitialPage  string
	SidebarWidth int
	Simulator    *packaging.Simulator
	// ResolveAuto maps the "auto" theme to light or dark.
	ResolveAuto func() string
}

type notice struct {
	level pages.NoticeLevel
	title string
	body  string
}

// run is an active packaging run.
type run struct {
	cancel context.CancelFunc
	events <-chan packaging.Event
}

// App is the root bubbletea model.
type App struct {
	env     *pages.Env
	nav     *nav.Manager
	content *ContentArea
	menu    *widgets.SideMenu
	bottom  *widgets.Form
	multi   *widgets.Checkbox
	start   *widgets.Button
	dialog  *progressDialog
	notice  *notice
	sim     *packaging.Simulator
	run     *run

	keys         KeyMap
	help         help.Model
	focus        FocusArea
	sidebarWidth int
	resolveAuto  func() string

	width  int
	height int
}

// New registers every page, builds the chrome and shows the initial page.
func New(opts Options) (App, error) {
	env := opts.Env
	m := App{
		env:          env,
		content:      NewContentArea(),
		sim:          opts.Simulator,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		sidebarWidth: opts.SidebarWidth,
		resolveAuto:  opts.ResolveAuto,
		width:        100,
		height:       30,
	}
	if m.sim == nil {
		m.sim = packaging.New(packaging.WithLogger(env.Log))
	}
	if m.sidebarWidth <= 0 {
		m.sidebarWidth = 24
	}
	if m.resolveAuto == nil {
		m.resolveAuto = func() string { return theme.Light }
	}

	m.nav = nav.New(m.content, env.Store, nav.WithLogger(env.Log))
	for _, spec := range pages.Registry() {
		if err := m.nav.RegisterPage(spec.New(env)); err != nil {
			return App{}, err
		}
	}
	m.buildChrome()

	initial := opts.InitialPage
	if initial == "" {
		initial = pages.Home
	}
	if err := m.nav.NavigateTo(initial); err != nil {
		m.Close()
		return App{}, err
	}
	return m, nil
}

// buildChrome (re)creates the menu and bottom bar from the catalog.
func (m *App) buildChrome() {
	if m.menu != nil {
		m.menu.Close()
	}
	if m.bottom != nil {
		m.bottom.Close()
	}
	env := m.env

	m.menu = widgets.NewSideMenu(env.Themes, env.Store, env.T("sidebar_navigation"), m.sidebarWidth).
		WithZones(env.Zones)
	for _, spec := range pages.Registry() {
		cmd := navigateCmd(spec.Name)
		activate := func() tea.Cmd { return cmd }
		if spec.Footer {
			m.menu.AddFooterItem(spec.Name, env.T(spec.LabelKey), spec.Icon, activate)
		} else {
			m.menu.AddMenuItem(spec.Name, env.T(spec.LabelKey), spec.Icon, activate)
		}
	}

	m.multi = widgets.NewCheckbox(env.Themes, env.T("bottom_multi_file_mode"), env.Settings.MultiFile).
		OnChange(func(v bool) {
			env.Settings.MultiFile = v
			env.Store.Set(state.KeyProjectMultiFile, v)
		})
	m.start = widgets.NewButton(env.Themes, env.T("btn_start_packaging")).
		WithVariant(widgets.ButtonPrimary).
		WithIcon("▶").
		WithZone(env.Zones, "bottom:start").
		OnActivate(func() tea.Cmd { return startPackaging })
	m.bottom = widgets.NewForm(m.multi, m.start)

	switch m.focus {
	case FocusSidebar:
		m.menu.Focus()
	case FocusBottom:
		m.bottom.Focus()
	}
}

type navigateMsg struct{ name string }

type startPackagingMsg struct{}

type cancelPackagingMsg struct{}

type packagingEventMsg struct{ event packaging.Event }

type packagingClosedMsg struct{}

func navigateCmd(name string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{name: name} }
}

func startPackaging() tea.Msg { return startPackagingMsg{} }

func cancelPackaging() tea.Msg { return cancelPackagingMsg{} }

// waitForEvent blocks on the run's channel. Each event schedules the next
// wait until the channel closes.
func waitForEvent(events <-chan packaging.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return packagingClosedMsg{}
		}
		return packagingEventMsg{event: ev}
	}
}

func (m App) Init() tea.Cmd {
	return tea.SetWindowTitle(m.env.T("app_title"))
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case navigateMsg:
		return m.navigate(msg.name)
	case startPackagingMsg:
		return m.startPackaging()
	case cancelPackagingMsg:
		return m.cancelPackaging()
	case packagingEventMsg:
		return m.handleEvent(msg.event)
	case packagingClosedMsg:
		m.finishRun()
		return m, nil
	case pages.ThemeRequestMsg:
		return m.setTheme(msg.Name)
	case pages.LanguageRequestMsg:
		return m.setLanguage(msg.Language)
	case pages.NoticeMsg:
		m.notice = &notice{level: msg.Level, title: msg.Title, body: msg.Body}
		return m, nil
	case spinner.TickMsg:
		if m.dialog != nil {
			return m, m.dialog.Update(msg)
		}
		return m, nil
	}
	return m, m.content.Update(msg)
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.run != nil {
			m.run.cancel()
		}
		return m, tea.Quit
	}

	if m.dialog != nil {
		if key.Matches(msg, m.keys.Escape) || msg.String() == "enter" {
			return m.cancelPackaging()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Focus):
		return m.SetFocus((m.focus + 1) % focusAreas)
	case key.Matches(msg, m.keys.FocusBack):
		return m.SetFocus((m.focus + focusAreas - 1) % focusAreas)
	case key.Matches(msg, m.keys.Back):
		return m.goBack()
	case key.Matches(msg, m.keys.Theme):
		return m.setTheme(m.env.Themes.Next())
	case key.Matches(msg, m.keys.Package):
		return m.startPackaging()
	case key.Matches(msg, m.keys.Sidebar):
		m.menu.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		if m.notice != nil {
			m.notice = nil
			return m, nil
		}
		if m.focus != FocusSidebar {
			return m.SetFocus(FocusSidebar)
		}
		return m, nil
	case m.focus != FocusContent && key.Matches(msg, m.keys.Jump):
		specs := pages.Registry()
		return m.navigate(specs[int(msg.String()[0]-'1')].Name)
	}

	switch m.focus {
	case FocusSidebar:
		return m, m.menu.Update(msg)
	case FocusContent:
		return m, m.content.Update(msg)
	default:
		return m, m.bottom.Update(msg)
	}
}

func (m App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		return m, m.dialog.Update(msg)
	}
	return m, tea.Batch(m.menu.Update(msg), m.content.Update(msg), m.bottom.Update(msg))
}

// SetFocus moves keyboard focus to area.
func (m App) SetFocus(area FocusArea) (App, tea.Cmd) {
	m.menu.Blur()
	m.content.Blur()
	m.bottom.Blur()
	m.focus = area
	switch area {
	case FocusSidebar:
		m.menu.Focus()
		return m, nil
	case FocusContent:
		return m, m.content.Focus()
	default:
		return m, m.bottom.Focus()
	}
}

func (m App) refocus() tea.Cmd {
	if m.focus == FocusContent {
		return m.content.Focus()
	}
	return nil
}

func (m App) navigate(name string) (tea.Model, tea.Cmd) {
	if err := m.nav.NavigateTo(name); err != nil {
		m.env.Log.With("page", name).Error(err, "navigation failed")
		m.notice = &notice{level: pages.NoticeWarning, title: m.env.T("msg_unknown_page", name)}
		return m, nil
	}
	return m, m.refocus()
}

func (m App) goBack() (tea.Model, tea.Cmd) {
	if !m.nav.CanGoBack() {
		return m, nil
	}
	if err := m.nav.GoBack(); err != nil {
		m.env.Log.Error(err, "go back failed")
		m.notice = &notice{level: pages.NoticeWarning, title: err.Error()}
		return m, nil
	}
	return m, m.refocus()
}

func (m App) setTheme(name string) (tea.Model, tea.Cmd) {
	env := m.env
	resolved := name
	if name == config.ThemeAuto {
		resolved = m.resolveAuto()
	}
	if err := env.Themes.SetTheme(resolved); err != nil {
		m.notice = &notice{level: pages.NoticeError, title: env.T("msg_unknown_theme", name), body: err.Error()}
		return m, nil
	}
	env.Prefs.Theme = name
	env.Log.With("theme", resolved).Info("theme changed")
	return m, nil
}

// setLanguage loads lang and rebuilds every page and the chrome so their
// text is read from the new catalog. The visible page is replaced in place.
func (m App) setLanguage(lang string) (tea.Model, tea.Cmd) {
	env := m.env
	if err := env.Catalog.Load(lang); err != nil {
		env.Log.With("language", lang).Error(err, "language load failed")
		m.notice = &notice{level: pages.NoticeError, title: env.T("msg_language_changed", lang), body: err.Error()}
	}
	env.Prefs.Language = env.Catalog.Language()

	for _, spec := range pages.Registry() {
		if err := m.nav.RegisterPage(spec.New(env)); err != nil {
			env.Log.With("page", spec.Name).Error(err, "page rebuild failed")
		}
	}
	m.buildChrome()
	env.Log.With("language", env.Catalog.Language()).Info("language changed")
	return m, m.refocus()
}

func (m App) startPackaging() (tea.Model, tea.Cmd) {
	if m.run != nil {
		return m, nil
	}
	env := m.env
	if strings.TrimSpace(env.Settings.Script) == "" {
		m.notice = &notice{
			level: pages.NoticeWarning,
			title: env.T("msg_no_file_selected_title"),
			body:  env.T("msg_no_file_selected_body"),
		}
		return m, nil
	}
	if err := env.Settings.Validate(); err != nil {
		env.Log.Error(err, "packaging settings invalid")
		m.notice = &notice{level: pages.NoticeError, title: env.T("msg_invalid_settings_title"), body: err.Error()}
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.run = &run{cancel: cancel, events: m.sim.Start(ctx)}
	m.dialog = newProgressDialog(env, func() tea.Cmd { return cancelPackaging })
	m.notice = nil
	env.Store.Set(state.KeyPackagingRunning, true)
	env.Log.WithFields(map[string]any{
		"script": env.Settings.Script,
		"output": env.Settings.ResolvedOutputDir(),
	}).Info("packaging requested")
	return m, tea.Batch(waitForEvent(m.run.events), m.dialog.spinner.Tick)
}

func (m App) cancelPackaging() (tea.Model, tea.Cmd) {
	if m.run == nil || m.dialog == nil || m.dialog.cancelling {
		return m, nil
	}
	m.dialog.cancelling = true
	m.run.cancel()
	m.env.Log.Info("packaging cancel requested")
	return m, nil
}

func (m App) handleEvent(ev packaging.Event) (tea.Model, tea.Cmd) {
	if m.run == nil {
		return m, nil
	}
	env := m.env
	if m.dialog == nil {
		return m, waitForEvent(m.run.events)
	}
	m.dialog.apply(ev)
	switch {
	case ev.Done:
		env.Log.With("output", env.Settings.ResolvedOutputDir()).Info("packaging finished")
		m.notice = &notice{
			level: pages.NoticeInfo,
			title: env.T("packaging_complete"),
			body:  m.dialog.summary(ev).View(env.T),
		}
		m.closeDialog()
	case ev.Cancelled:
		env.Log.With("step", ev.Step).Info("packaging cancelled")
		m.notice = &notice{
			level: pages.NoticeWarning,
			title: env.T("packaging_cancelled_status"),
			body:  m.dialog.summary(ev).View(env.T),
		}
		m.closeDialog()
	}
	return m, waitForEvent(m.run.events)
}

func (m *App) closeDialog() {
	if m.dialog != nil {
		m.dialog.Close()
		m.dialog = nil
	}
}

func (m *App) finishRun() {
	if m.run == nil {
		return
	}
	m.run.cancel()
	m.run = nil
	m.closeDialog()
	m.env.Store.Set(state.KeyPackagingRunning, false)
}

// Close destroys every page and releases the chrome.
func (m App) Close() {
	if m.run != nil {
		m.run.cancel()
	}
	for _, name := range m.nav.Names() {
		_ = m.nav.UnregisterPage(name)
	}
	m.closeDialog()
	widgets.CloseAll(m.menu, m.bottom)
}

// CurrentPage is the name of the visible page.
func (m App) CurrentPage() string { return m.nav.CurrentName() }

// History returns the navigation history.
func (m App) History() []string { return m.nav.History() }

// FocusArea returns the region receiving keys.
func (m App) FocusArea() FocusArea { return m.focus }

// Notice returns the banner text, if one is shown.
func (m App) Notice() (title, body string, ok bool) {
	if m.notice == nil {
		return "", "", false
	}
	return m.notice.title, m.notice.body, true
}

// Running reports whether a packaging run is active.
func (m App) Running() bool { return m.run != nil }

// DialogOpen reports whether the progress dialog is shown.
func (m App) DialogOpen() bool { return m.dialog != nil }

// Content returns the content area pages attach to.
func (m App) Content() *ContentArea { return m.content }

// Menu returns the side menu.
func (m App) Menu() *widgets.SideMenu { return m.menu }
