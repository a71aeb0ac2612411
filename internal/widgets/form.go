package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Field is a focusable widget a Form can route input to.
type Field interface {
	Closer
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Form keeps a focus ring over fields. Up and down move focus; every other
// message goes to the focused field.
type Form struct {
	fields  []Field
	cursor  int
	focused bool
}

// NewForm creates a form over fields, in focus order.
func NewForm(fields ...Field) *Form {
	return &Form{fields: fields}
}

// Add appends fields to the focus ring.
func (f *Form) Add(fields ...Field) {
	f.fields = append(f.fields, fields...)
}

func (f *Form) Len() int { return len(f.fields) }

// Cursor returns the index of the focused field.
func (f *Form) Cursor() int { return f.cursor }

// Current returns the field holding focus, or nil for an empty form.
func (f *Form) Current() Field {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.cursor]
}

// Focus gives focus to the current field.
func (f *Form) Focus() tea.Cmd {
	f.focused = true
	if cur := f.Current(); cur != nil {
		return cur.Focus()
	}
	return nil
}

// Blur removes focus from the current field.
func (f *Form) Blur() {
	f.focused = false
	if cur := f.Current(); cur != nil {
		cur.Blur()
	}
}

func (f *Form) Focused() bool { return f.focused }

// Next moves focus forward, wrapping.
func (f *Form) Next() tea.Cmd {
	return f.move(1)
}

// Prev moves focus back, wrapping.
func (f *Form) Prev() tea.Cmd {
	return f.move(-1)
}

func (f *Form) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.fields[f.cursor].Blur()
	f.cursor = (f.cursor + delta + len(f.fields)) % len(f.fields)
	if !f.focused {
		return nil
	}
	return f.fields[f.cursor].Focus()
}

type mouseHandler interface {
	HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool)
}

// Update routes msg while the form is focused. Mouse events reach every
// field that handles them, focused or not.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		var cmds []tea.Cmd
		for _, field := range f.fields {
			if h, ok := field.(mouseHandler); ok {
				cmd, _ := h.HandleMouse(mouse)
				cmds = append(cmds, cmd)
			}
		}
		return tea.Batch(cmds...)
	}
	if !f.focused || len(f.fields) == 0 {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up":
			return f.Prev()
		case "down":
			return f.Next()
		}
	}
	return f.fields[f.cursor].Update(msg)
}

// Close closes every field.
func (f *Form) Close() {
	for _, field := range f.fields {
		field.Close()
	}
}
