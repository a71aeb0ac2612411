package nav

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/packdeck/internal/logger"
	"github.com/alexisbeaulieu97/packdeck/internal/page"
	"github.com/alexisbeaulieu97/packdeck/internal/state"
	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

type callLog struct {
	entries []string
}

func (l *callLog) add(s string) { l.entries = append(l.entries, s) }

type fakeSurface struct {
	log      *callLog
	attached page.Content
}

func (s *fakeSurface) Attach(c page.Content) {
	s.log.add("attach:" + c.View(0, 0))
	s.attached = c
}

func (s *fakeSurface) Detach(c page.Content) {
	s.log.add("detach:" + c.View(0, 0))
	if s.attached == c {
		s.attached = nil
	}
}

type trackedPage struct {
	page.Base
	log    *callLog
	builds int
}

func newTrackedPage(name string, log *callLog) *trackedPage {
	return &trackedPage{Base: page.NewBase(name), log: log}
}

func (p *trackedPage) CreateContent(page.Surface) page.Content {
	p.builds++
	p.log.add("create:" + p.Name())
	return page.Text(p.Name())
}

func (p *trackedPage) OnShow() { p.log.add("show:" + p.Name()) }
func (p *trackedPage) OnHide() { p.log.add("hide:" + p.Name()) }

func setup(t *testing.T, names ...string) (*Manager, *state.Store, *callLog, map[string]*trackedPage) {
	t.Helper()

	log := &callLog{}
	store := state.New()
	m := New(&fakeSurface{log: log}, store)
	pages := make(map[string]*trackedPage, len(names))
	for _, name := range names {
		p := newTrackedPage(name, log)
		pages[name] = p
		require.NoError(t, m.RegisterPage(p))
	}
	return m, store, log, pages
}

func TestPagesAreNotBuiltUntilNavigated(t *testing.T) {
	t.Parallel()

	m, _, log, pages := setup(t, "dashboard", "settings")
	assert.Nil(t, m.Current())
	assert.Empty(t, m.History())
	for _, p := range pages {
		assert.False(t, p.Loaded())
		assert.Zero(t, p.builds)
	}
	assert.Empty(t, log.entries)
	assert.Equal(t, []string{"dashboard", "settings"}, m.Names())
}

func TestNavigateBuildsOnce(t *testing.T) {
	t.Parallel()

	m, _, _, pages := setup(t, "a", "b")
	require.NoError(t, m.NavigateTo("a"))
	require.NoError(t, m.NavigateTo("b"))
	require.NoError(t, m.NavigateTo("a"))

	assert.Equal(t, 1, pages["a"].builds)
	assert.Equal(t, 1, pages["b"].builds)
	assert.True(t, pages["b"].Loaded())
}

func TestNavigateCallOrder(t *testing.T) {
	t.Parallel()

	m, _, log, _ := setup(t, "a", "b")
	require.NoError(t, m.NavigateTo("a"))
	log.entries = nil

	require.NoError(t, m.NavigateTo("b"))
	assert.Equal(t, []string{"hide:a", "detach:a", "create:b", "attach:b", "show:b"}, log.entries)

	log.entries = nil
	require.NoError(t, m.NavigateTo("a"))
	assert.Equal(t, []string{"hide:b", "detach:b", "attach:a", "show:a"}, log.entries)
}

func TestNavigateSamePageReshows(t *testing.T) {
	t.Parallel()

	m, _, log, _ := setup(t, "a")
	require.NoError(t, m.NavigateTo("a"))
	log.entries = nil

	require.NoError(t, m.NavigateTo("a"))
	assert.Equal(t, []string{"hide:a", "detach:a", "attach:a", "show:a"}, log.entries)
	assert.Equal(t, []string{"a"}, m.History())
}

func TestNavigateUnknownIsNotFound(t *testing.T) {
	t.Parallel()

	m, store, log, _ := setup(t, "a")
	require.NoError(t, m.NavigateTo("a"))
	log.entries = nil

	err := m.NavigateTo("missing")
	var notFound *packdeckerrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Name)
	assert.Equal(t, "a", m.CurrentName())
	assert.Equal(t, []string{"a"}, m.History())
	assert.Equal(t, "a", store.String(state.KeyCurrentPage, ""))
	assert.Empty(t, log.entries)
}

func TestNavigatePublishesCurrentPage(t *testing.T) {
	t.Parallel()

	m, store, _, _ := setup(t, "dashboard", "settings")
	type change struct{ newValue, oldValue any }
	var changes []change
	store.Subscribe(state.KeyCurrentPage, func(newValue, oldValue any) {
		changes = append(changes, change{newValue, oldValue})
	})

	require.NoError(t, m.NavigateTo("settings"))
	assert.Equal(t, []string{"settings"}, m.History())

	require.NoError(t, m.NavigateTo("dashboard"))
	require.Equal(t, []change{
		{"settings", state.Absent},
		{"dashboard", "settings"},
	}, changes)
}

func TestGoBack(t *testing.T) {
	t.Parallel()

	m, _, _, _ := setup(t, "a", "b", "c")
	require.NoError(t, m.NavigateTo("a"))
	require.NoError(t, m.NavigateTo("b"))
	require.NoError(t, m.NavigateTo("c"))
	require.Equal(t, []string{"a", "b", "c"}, m.History())

	require.NoError(t, m.GoBack())
	assert.Equal(t, "b", m.CurrentName())
	assert.Equal(t, []string{"a", "b"}, m.History())

	require.NoError(t, m.GoBack())
	assert.Equal(t, "a", m.CurrentName())
	assert.Equal(t, []string{"a"}, m.History())
	assert.False(t, m.CanGoBack())

	require.NoError(t, m.GoBack())
	assert.Equal(t, "a", m.CurrentName())
	assert.Equal(t, []string{"a"}, m.History())
}

func TestHistoryCollapsesAdjacentDuplicates(t *testing.T) {
	t.Parallel()

	m, _, _, _ := setup(t, "a", "b")
	for _, name := range []string{"a", "a", "b", "b", "a"} {
		require.NoError(t, m.NavigateTo(name))
	}
	assert.Equal(t, []string{"a", "b", "a"}, m.History())

	h := m.History()
	h[0] = "mutated"
	assert.Equal(t, "a", m.History()[0])
}

func TestDestroyThenNavigateRebuilds(t *testing.T) {
	t.Parallel()

	m, _, _, pages := setup(t, "a", "b")
	require.NoError(t, m.NavigateTo("a"))
	require.NoError(t, m.NavigateTo("b"))

	pages["a"].Destroy()
	assert.False(t, pages["a"].Loaded())

	require.NoError(t, m.NavigateTo("a"))
	assert.Equal(t, 2, pages["a"].builds)
}

func TestRegisterPageReplacesHiddenAndDestroysOrphan(t *testing.T) {
	t.Parallel()

	m, _, log, pages := setup(t, "a", "b")
	require.NoError(t, m.NavigateTo("a"))
	require.NoError(t, m.NavigateTo("b"))

	replacement := newTrackedPage("a", log)
	require.NoError(t, m.RegisterPage(replacement))
	assert.False(t, pages["a"].Loaded())

	p, ok := m.Page("a")
	require.True(t, ok)
	assert.Same(t, replacement, p)
	assert.Equal(t, []string{"a", "b"}, m.Names())

	require.NoError(t, m.NavigateTo("a"))
	assert.Equal(t, 1, replacement.builds)
}

func TestRegisterPageReplacesVisible(t *testing.T) {
	t.Parallel()

	m, _, log, pages := setup(t, "a")
	require.NoError(t, m.NavigateTo("a"))
	log.entries = nil

	replacement := newTrackedPage("a", log)
	require.NoError(t, m.RegisterPage(replacement))

	assert.Equal(t, []string{"hide:a", "detach:a", "create:a", "attach:a", "show:a"}, log.entries)
	assert.False(t, pages["a"].Loaded())
	assert.Same(t, replacement, m.Current())
	assert.Equal(t, []string{"a"}, m.History())
}

func TestStrictRegistrationRejectsDuplicates(t *testing.T) {
	t.Parallel()

	log := &callLog{}
	m := New(&fakeSurface{log: log}, state.New(), WithStrictRegistration())
	require.NoError(t, m.RegisterPage(newTrackedPage("a", log)))

	err := m.RegisterPage(newTrackedPage("a", log))
	var dup *packdeckerrors.DuplicateRegistrationError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "a", dup.Name)
}

func TestUnregisterPage(t *testing.T) {
	t.Parallel()

	m, _, log, pages := setup(t, "a", "b")
	require.NoError(t, m.NavigateTo("a"))
	require.NoError(t, m.NavigateTo("b"))
	log.entries = nil

	require.NoError(t, m.UnregisterPage("b"))
	assert.Equal(t, []string{"hide:b", "detach:b"}, log.entries)
	assert.Nil(t, m.Current())
	assert.False(t, pages["b"].Loaded())
	assert.Equal(t, []string{"a"}, m.Names())
	assert.Equal(t, []string{"a", "b"}, m.History())

	var notFound *packdeckerrors.NotFoundError
	require.True(t, errors.As(m.UnregisterPage("b"), &notFound))
	require.True(t, errors.As(m.NavigateTo("b"), &notFound))
}

func TestGoBackToRemovedPage(t *testing.T) {
	t.Parallel()

	m, _, _, _ := setup(t, "a", "b")
	require.NoError(t, m.NavigateTo("a"))
	require.NoError(t, m.NavigateTo("b"))
	require.NoError(t, m.UnregisterPage("a"))

	var notFound *packdeckerrors.NotFoundError
	require.True(t, errors.As(m.GoBack(), &notFound))
	assert.Equal(t, []string{"a"}, m.History())
	assert.Equal(t, "b", m.CurrentName())
}

func TestNavigationIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	calls := &callLog{}
	m := New(&fakeSurface{log: calls}, state.New(), WithLogger(log))
	require.NoError(t, m.RegisterPage(newTrackedPage("home", calls)))
	require.NoError(t, m.NavigateTo("home"))

	out := buf.String()
	assert.True(t, strings.Contains(out, `"message":"navigated"`))
	assert.True(t, strings.Contains(out, `"page":"home"`))
}

type emptyPage struct {
	page.Base
	builds int
}

func (p *emptyPage) CreateContent(page.Surface) page.Content {
	p.builds++
	return nil
}

func TestPageWithoutContentIsBuiltOnce(t *testing.T) {
	t.Parallel()

	m, _, _, _ := setup(t, "settings")
	empty := &emptyPage{Base: page.NewBase("empty")}
	require.NoError(t, m.RegisterPage(empty))

	require.NoError(t, m.NavigateTo("empty"))
	require.NoError(t, m.NavigateTo("settings"))
	require.NoError(t, m.NavigateTo("empty"))

	assert.Equal(t, 1, empty.builds)
	assert.True(t, empty.Loaded())
	assert.Equal(t, "empty", m.CurrentName())
}
