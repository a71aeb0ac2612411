package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Progress renders run completion as a bar followed by a percentage.
type Progress struct {
	bar progress.Model
}

// NewProgress creates a progress component with a bar width cells wide.
func NewProgress(width int) Progress {
	bar := progress.New(progress.WithoutPercentage(), progress.WithWidth(width))
	return Progress{bar: bar}
}

// View renders percent, clamped to 0-100 for the bar, in t's colors.
func (p Progress) View(t theme.Theme, percent int) string {
	ratio := math.Min(1.0, math.Max(0, float64(percent)/100))
	p.bar.FullColor = string(t.Color(theme.Accent))
	p.bar.EmptyColor = string(t.Color(theme.BackgroundTertiary))
	label := lipgloss.NewStyle().
		Bold(true).
		Width(5).
		Align(lipgloss.Right).
		Foreground(t.Color(theme.ForegroundPrimary)).
		Render(fmt.Sprintf("%d%%", percent))
	return lipgloss.JoinHorizontal(lipgloss.Top, p.bar.ViewAs(ratio), label)
}
