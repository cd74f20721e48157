package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/taskhub/internal/core/styles"
)

// CheckboxField is a boolean toggle with a description line. Space or x
// toggles it while focused.
type CheckboxField struct {
	base
	text    string
	checked bool
}

// NewCheckboxField creates a checkbox. text is rendered next to the box.
func NewCheckboxField(label, text string, checked bool) *CheckboxField {
	return &CheckboxField{
		base:    base{label: label},
		text:    text,
		checked: checked,
	}
}

func (f *CheckboxField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "space", " ", "x":
			f.checked = !f.checked
		}
	}
	return f, nil
}

func (f *CheckboxField) View() string {
	box := styles.OptionStyle.Render(" ")
	if f.checked {
		box = styles.OptionSelectedStyle.Render(styles.IconCheck)
	}
	return f.frame(box + " " + styles.CommandStyle.Render(f.text))
}

func (f *CheckboxField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *CheckboxField) Blur() { f.focused = false }

func (f *CheckboxField) Value() any { return f.checked }

// Checked reports the toggle state.
func (f *CheckboxField) Checked() bool { return f.checked }

// SetChecked sets the toggle state.
func (f *CheckboxField) SetChecked(v bool) { f.checked = v }
