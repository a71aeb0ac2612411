// Package widgets contains the themed building blocks pages are composed of.
// Every widget computes its styles from the active theme when built and
// again whenever the theme changes, until Close is called.
package widgets

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/packdeck/internal/observer"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Closer is implemented by every widget.
type Closer interface {
	Close()
}

// themed embeds the theme subscription shared by all widgets.
type themed struct {
	themes *theme.Manager
	handle observer.Handle
}

// bind applies the active theme now and on every change.
func (t *themed) bind(themes *theme.Manager, apply func(theme.Theme)) {
	t.themes = themes
	apply(themes.Active())
	t.handle = themes.RegisterObserver(apply)
}

// Close stops reacting to theme changes. It is safe to call more than once.
func (t *themed) Close() {
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
}

// Bound reports whether the widget still follows theme changes.
func (t *themed) Bound() bool {
	return t.handle != nil
}

// CloseAll closes every widget in ws.
func CloseAll(ws ...Closer) {
	for _, w := range ws {
		if w != nil {
			w.Close()
		}
	}
}

func mark(zones *zone.Manager, id, v string) string {
	if zones == nil || id == "" {
		return v
	}
	return zones.Mark(id, v)
}

func zoneInfo(zones *zone.Manager, id string) *zone.ZoneInfo {
	if zones == nil || id == "" {
		return nil
	}
	return zones.Get(id)
}
