package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/packdeck/internal/page"
)

// ContentArea is the surface pages attach to. It shows at most one
// content at a time.
type ContentArea struct {
	current page.Content
	focused bool
}

// NewContentArea creates an empty content area.
func NewContentArea() *ContentArea {
	return &ContentArea{}
}

// Attach shows c, blurring whatever was shown.
func (a *ContentArea) Attach(c page.Content) {
	if a.current != nil && a.current != c {
		if i, ok := a.current.(page.Interactive); ok {
			i.Blur()
		}
	}
	a.current = c
}

// Detach removes c if it is shown.
func (a *ContentArea) Detach(c page.Content) {
	if a.current != c {
		return
	}
	if i, ok := c.(page.Interactive); ok {
		i.Blur()
	}
	a.current = nil
}

// Current returns the shown content, or nil.
func (a *ContentArea) Current() page.Content { return a.current }

// Focus passes focus to the shown content.
func (a *ContentArea) Focus() tea.Cmd {
	a.focused = true
	if i, ok := a.current.(page.Interactive); ok {
		return i.Focus()
	}
	return nil
}

func (a *ContentArea) Blur() {
	a.focused = false
	if i, ok := a.current.(page.Interactive); ok {
		i.Blur()
	}
}

func (a *ContentArea) Focused() bool { return a.focused }

// Update routes msg to interactive content. Mouse events are delivered
// whether or not the area holds focus.
func (a *ContentArea) Update(msg tea.Msg) tea.Cmd {
	i, ok := a.current.(page.Interactive)
	if !ok {
		return nil
	}
	if _, mouse := msg.(tea.MouseMsg); !mouse && !a.focused {
		return nil
	}
	return i.Update(msg)
}

func (a *ContentArea) View(width, height int) string {
	if a.current == nil {
		return ""
	}
	return a.current.View(width, height)
}
