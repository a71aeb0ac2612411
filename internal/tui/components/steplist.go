package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/packaging"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// StepState is the display state of one packaging step.
type StepState int

const (
	StepPending StepState = iota
	StepRunning
	StepDone
	StepCancelled
)

// StepEntry is one line of the list.
type StepEntry struct {
	Key   string
	State StepState
}

// StepList tracks packaging steps as events arrive.
type StepList struct {
	entries []StepEntry
}

// NewStepList starts every step in steps as pending.
func NewStepList(steps []packaging.Step) StepList {
	entries := make([]StepEntry, 0, len(steps))
	for _, s := range steps {
		entries = append(entries, StepEntry{Key: s.StatusKey})
	}
	return StepList{entries: entries}
}

// Apply advances the list. Steps before ev.Step are done and ev.Step is
// running; a Done event finishes every step and a Cancelled event marks the
// running step cancelled.
func (s *StepList) Apply(ev packaging.Event) {
	switch {
	case ev.Cancelled:
		for i := range s.entries {
			if s.entries[i].State == StepRunning {
				s.entries[i].State = StepCancelled
			}
		}
	case ev.Done:
		for i := range s.entries {
			s.entries[i].State = StepDone
		}
	default:
		for i := range s.entries {
			switch {
			case i < ev.Step:
				s.entries[i].State = StepDone
			case i == ev.Step:
				s.entries[i].State = StepRunning
			}
		}
	}
}

// Entries returns the ordered step entries.
func (s StepList) Entries() []StepEntry {
	clone := make([]StepEntry, len(s.entries))
	copy(clone, s.entries)
	return clone
}

// Completed counts finished steps.
func (s StepList) Completed() int {
	n := 0
	for _, e := range s.entries {
		if e.State == StepDone {
			n++
		}
	}
	return n
}

// Total is the number of steps.
func (s StepList) Total() int { return len(s.entries) }

// View renders one line per step, translating keys with text.
func (s StepList) View(t theme.Theme, text func(key string, args ...any) string) string {
	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		mark, color := "·", t.Color(theme.ForegroundSecondary)
		switch e.State {
		case StepRunning:
			mark, color = "›", t.Color(theme.Accent)
		case StepDone:
			mark, color = "✓", t.Color(theme.Success)
		case StepCancelled:
			mark, color = "✗", t.Color(theme.Warning)
		}
		style := lipgloss.NewStyle().Foreground(color)
		lines = append(lines, style.Render(mark+" "+text(e.Key)))
	}
	return strings.Join(lines, "\n")
}
