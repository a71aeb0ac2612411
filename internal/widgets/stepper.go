package widgets

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// Stepper is a bounded numeric value adjusted with left and right and drawn
// as a bar.
type Stepper struct {
	themed
	format   func(float64) string
	min      float64
	max      float64
	step     float64
	value    float64
	focused  bool
	onChange func(float64)

	bar        progress.Model
	labelStyle lipgloss.Style
	focusStyle lipgloss.Style
}

// NewStepper creates a stepper. format renders the label line for a value.
func NewStepper(themes *theme.Manager, format func(float64) string, min, max, step, value float64) *Stepper {
	s := &Stepper{format: format, min: min, max: max, step: step}
	s.value = s.clamp(value)
	s.bar = progress.New(progress.WithoutPercentage(), progress.WithWidth(30))
	s.bind(themes, s.restyle)
	return s
}

func (s *Stepper) restyle(t theme.Theme) {
	s.bar.FullColor = string(t.Color(theme.Accent))
	s.bar.EmptyColor = string(t.Color(theme.BackgroundTertiary))
	s.labelStyle = t.Font(theme.FontDefault).Apply(lipgloss.NewStyle()).Foreground(t.Color(theme.ForegroundPrimary))
	s.focusStyle = s.labelStyle.Foreground(t.Color(theme.Accent)).Underline(true)
}

func (s *Stepper) clamp(v float64) float64 {
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
	}
	return math.Max(s.min, math.Min(s.max, v))
}

// OnChange registers fn to run with each new value.
func (s *Stepper) OnChange(fn func(float64)) *Stepper {
	s.onChange = fn
	return s
}

func (s *Stepper) Value() float64 { return s.value }

// SetValue clamps v into range and snaps it to the step.
func (s *Stepper) SetValue(v float64) {
	v = s.clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
}

func (s *Stepper) Increment() { s.SetValue(s.value + s.step) }
func (s *Stepper) Decrement() { s.SetValue(s.value - s.step) }

func (s *Stepper) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *Stepper) Blur()         { s.focused = false }
func (s *Stepper) Focused() bool { return s.focused }

func (s *Stepper) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "right", "l", "+":
			s.Increment()
		case "left", "h", "-":
			s.Decrement()
		}
	}
	return nil
}

// Percent is the value's position in range, 0 to 1.
func (s *Stepper) Percent() float64 {
	if s.max <= s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

func (s *Stepper) View() string {
	label := s.labelStyle.Render(s.format(s.value))
	if s.focused {
		label = s.focusStyle.Render(s.format(s.value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, s.bar.ViewAs(s.Percent()))
}
