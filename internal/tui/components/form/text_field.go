package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskhub/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	base
	input textinput.Model
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(48)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	ti.SetStyles(inputStyles())

	return &TextField{
		base:  base{label: label},
		input: ti,
	}
}

func inputStyles() textinput.Styles {
	s := textinput.DefaultStyles(true)
	s.Cursor.Color = styles.ColorPrimary
	s.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	s.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	return s
}

// Required marks the field label with a required indicator.
func (f *TextField) Required() *TextField {
	f.required = true
	return f
}

// WithCharLimit caps the input length.
func (f *TextField) WithCharLimit(n int) *TextField {
	f.input.CharLimit = n
	return f
}

// WithHint shows a muted line under the title.
func (f *TextField) WithHint(hint string) *TextField {
	f.hint = hint
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string { return f.frame(f.input.View()) }

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Value() any { return f.input.Value() }

// SetValue replaces the input text.
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
