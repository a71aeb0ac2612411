package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/packdeck/internal/packaging"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

func text(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	return key + fmt.Sprint(args...)
}

func states(list StepList) []StepState {
	var out []StepState
	for _, e := range list.Entries() {
		out = append(out, e.State)
	}
	return out
}

func TestStepListFollowsEvents(t *testing.T) {
	t.Parallel()

	list := NewStepList(packaging.Steps)
	require.Equal(t, len(packaging.Steps), list.Total())
	assert.Equal(t, 0, list.Completed())

	list.Apply(packaging.Event{Step: 2, StatusKey: "packaging_compiling", Percent: 60})
	assert.Equal(t, []StepState{StepDone, StepDone, StepRunning, StepPending, StepPending, StepPending}, states(list))
	assert.Equal(t, 2, list.Completed())

	list.Apply(packaging.Event{Step: 5, Done: true})
	assert.Equal(t, len(packaging.Steps), list.Completed())
}

func TestStepListCancelMarksRunningStep(t *testing.T) {
	t.Parallel()

	list := NewStepList(packaging.Steps)
	list.Apply(packaging.Event{Step: 1})
	list.Apply(packaging.Event{Step: 2, Cancelled: true})

	got := states(list)
	assert.Equal(t, StepDone, got[0])
	assert.Equal(t, StepCancelled, got[1])
	assert.Equal(t, StepPending, got[2])
}

func TestStepListView(t *testing.T) {
	t.Parallel()

	list := NewStepList(packaging.Steps[:3])
	list.Apply(packaging.Event{Step: 1})

	lines := strings.Split(list.View(theme.LightTheme(), text), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "✓ packaging_analyzing")
	assert.Contains(t, lines[1], "› packaging_optimizing")
	assert.Contains(t, lines[2], "· packaging_compiling")
}

func TestStepListEntriesAreCopies(t *testing.T) {
	t.Parallel()

	list := NewStepList(packaging.Steps)
	entries := list.Entries()
	entries[0].State = StepDone
	assert.Equal(t, 0, list.Completed())
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	p := NewProgress(20)
	view := p.View(theme.DarkTheme(), 60)
	assert.Contains(t, view, "60%")

	assert.Contains(t, p.View(theme.DarkTheme(), 150), "150%", "label is not clamped")
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	done := NewSummary(SummaryData{Total: 6, Completed: 6, Finished: true, Output: "dist"}).View(text)
	assert.Equal(t, "packaging_success_status · packaging_steps_summary6 6 · packaging_output_summarydist", done)

	cancelled := NewSummary(SummaryData{Total: 6, Completed: 2, Cancelled: true, Output: "dist"}).View(text)
	assert.Equal(t, "packaging_cancelled_status · packaging_steps_summary2 6", cancelled)

	assert.Empty(t, NewSummary(SummaryData{}).View(text))
}
