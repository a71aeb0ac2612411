package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Panel is a themed container. Elevated panels sit on the secondary
// background inside a border; flat panels use the primary background. A
// title and subtitle turn a panel into a card.
type Panel struct {
	themed
	title    string
	subtitle string
	elevated bool
	width    int

	box           lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
}

// NewPanel creates a flat panel.
func NewPanel(themes *theme.Manager) *Panel {
	p := &Panel{}
	p.bind(themes, p.restyle)
	return p
}

// NewCard creates an elevated panel with a title.
func NewCard(themes *theme.Manager, title, subtitle string) *Panel {
	return NewPanel(themes).WithTitle(title, subtitle).WithElevation(true)
}

func (p *Panel) restyle(t theme.Theme) {
	box := lipgloss.NewStyle().Padding(0, 1)
	if p.elevated {
		box = box.Background(t.Color(theme.BackgroundSecondary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Color(theme.Border)).
			BorderBackground(t.Color(theme.BackgroundPrimary))
	} else {
		box = box.Background(t.Color(theme.BackgroundPrimary))
	}
	if p.width > 0 {
		box = box.Width(p.width)
	}
	p.box = box
	p.titleStyle = t.Font(theme.FontHeading).Apply(lipgloss.NewStyle()).Foreground(t.Color(theme.ForegroundPrimary))
	p.subtitleStyle = t.Font(theme.FontSmall).Apply(lipgloss.NewStyle()).Foreground(t.Color(theme.ForegroundSecondary))
}

// WithTitle sets the header lines.
func (p *Panel) WithTitle(title, subtitle string) *Panel {
	p.title = title
	p.subtitle = subtitle
	return p
}

// WithElevation switches between elevated and flat.
func (p *Panel) WithElevation(elevated bool) *Panel {
	p.elevated = elevated
	p.restyle(p.themes.Active())
	return p
}

// WithWidth fixes the inner width.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	p.restyle(p.themes.Active())
	return p
}

func (p *Panel) Elevated() bool { return p.elevated }

// Style returns the container style.
func (p *Panel) Style() lipgloss.Style { return p.box }

// Render wraps body in the panel.
func (p *Panel) Render(body string) string {
	var parts []string
	if p.title != "" {
		parts = append(parts, p.titleStyle.Render(p.title))
	}
	if p.subtitle != "" {
		parts = append(parts, p.subtitleStyle.Render(p.subtitle))
	}
	if len(parts) > 0 && body != "" {
		parts = append(parts, "")
	}
	if body != "" {
		parts = append(parts, body)
	}
	return p.box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
