// Package page defines the navigable page capability and an embeddable
// implementation of its bookkeeping.
package page

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Content is the built subtree of a page.
type Content interface {
	View(width, height int) string
}

// Interactive content receives input while its page is visible and focused.
type Interactive interface {
	Content
	Update(msg tea.Msg) tea.Cmd
	Focus() tea.Cmd
	Blur()
}

// Releaser content owns subscriptions that must be revoked when the page is
// destroyed.
type Releaser interface {
	Release()
}

// Surface is the area page content is shown in. At most one content is
// attached at a time.
type Surface interface {
	Attach(Content)
	Detach(Content)
}

// Page is a named, lazily built unit of navigable content.
type Page interface {
	Name() string
	// CreateContent builds the content subtree. It is called at most once per
	// load cycle and must not assume the page is visible.
	CreateContent(parent Surface) Content
	OnShow()
	OnHide()
	// Destroy detaches and releases the content and marks the page unloaded.
	Destroy()
	Loaded() bool
	Content() Content
	// Store records content built by CreateContent and marks the page loaded.
	Store(parent Surface, c Content)
}

// Base implements the bookkeeping half of Page. Embed it and provide
// CreateContent.
type Base struct {
	name    string
	content Content
	surface Surface
	loaded  bool
}

// NewBase returns a Base for name.
func NewBase(name string) Base {
	return Base{name: name}
}

func (b *Base) Name() string { return b.name }

func (b *Base) OnShow() {}

func (b *Base) OnHide() {}

func (b *Base) Loaded() bool { return b.loaded }

func (b *Base) Content() Content { return b.content }

// Store marks the page loaded even when c is nil, so a builder that yields
// no content still runs once per load cycle.
func (b *Base) Store(parent Surface, c Content) {
	b.surface = parent
	b.content = c
	b.loaded = true
}

func (b *Base) Destroy() {
	if !b.loaded {
		return
	}
	if b.surface != nil && b.content != nil {
		b.surface.Detach(b.content)
	}
	if r, ok := b.content.(Releaser); ok {
		r.Release()
	}
	b.content = nil
	b.surface = nil
	b.loaded = false
}

// Builder constructs content for a Func page.
type Builder func(parent Surface) Content

// Hooks are optional visibility callbacks for a Func page.
type Hooks struct {
	OnShow func()
	OnHide func()
}

// Func is a page assembled from a name and a builder, for variants that need
// no state of their own.
type Func struct {
	Base
	build Builder
	hooks Hooks
}

// NewFunc returns a page named name whose content comes from build.
func NewFunc(name string, build Builder, hooks ...Hooks) *Func {
	f := &Func{Base: NewBase(name), build: build}
	if len(hooks) > 0 {
		f.hooks = hooks[0]
	}
	return f
}

func (f *Func) CreateContent(parent Surface) Content {
	return f.build(parent)
}

func (f *Func) OnShow() {
	if f.hooks.OnShow != nil {
		f.hooks.OnShow()
	}
}

func (f *Func) OnHide() {
	if f.hooks.OnHide != nil {
		f.hooks.OnHide()
	}
}

// Text is static content.
type Text string

func (t Text) View(int, int) string { return string(t) }
