package components

import (
	"strings"
)

// SummaryData aggregates the outcome of a packaging run.
type SummaryData struct {
	Total     int
	Completed int
	Finished  bool
	Cancelled bool
	Output    string
}

// Summary renders the text shown once a run ends.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary, translating with text.
func (s Summary) View(text func(key string, args ...any) string) string {
	var lines []string
	switch {
	case s.data.Cancelled:
		lines = append(lines, text("packaging_cancelled_status"))
	case s.data.Finished:
		lines = append(lines, text("packaging_success_status"))
	}
	if s.data.Total > 0 {
		lines = append(lines, text("packaging_steps_summary", s.data.Completed, s.data.Total))
	}
	if s.data.Finished && !s.data.Cancelled && s.data.Output != "" {
		lines = append(lines, text("packaging_output_summary", s.data.Output))
	}
	return strings.Join(lines, " · ")
}
