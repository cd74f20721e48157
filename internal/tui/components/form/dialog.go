package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskhub/internal/core/styles"
)

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	variables    []string // parallel slice: variable name for each field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
	Help         string
}

// DefaultHelp is the key help rendered below the fields.
const DefaultHelp = "tab: next  shift+tab: prev  enter: next/submit  esc: cancel"

// NewDialog creates a form dialog with the given fields and variable names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, variables []string) *Dialog {
	d := &Dialog{
		fields:    fields,
		variables: variables,
		Title:     title,
		Help:      DefaultHelp,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.moveFocus(1)
	case "shift+tab":
		return d.moveFocus(-1)
	case "enter":
		if d.focusedConsumesEnter() {
			return d.updateFocusedField(msg)
		}
		if d.focusedField == len(d.fields)-1 {
			d.submitted = true
			return d, nil
		}
		return d.moveFocus(1)
	case "esc":
		if d.isFocusedFieldFiltering() {
			// Let the field handle esc to exit filter mode
			return d.updateFocusedField(msg)
		}
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	var parts []string
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	if d.Help != "" {
		parts = append(parts, "", styles.FormHelpStyle.Render(d.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of variable names to field values.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for i, field := range d.fields {
		result[d.variables[i]] = field.Value()
	}
	return result
}

// FieldByName returns the field bound to a variable name.
func (d *Dialog) FieldByName(name string) (Field, bool) {
	for i, v := range d.variables {
		if v == name {
			return d.fields[i], true
		}
	}
	return nil, false
}

// SetErrors assigns inline errors by variable name. Fields missing from
// errs are cleared.
func (d *Dialog) SetErrors(errs map[string]string) {
	for i, field := range d.fields {
		field.SetError(errs[d.variables[i]])
	}
}

// FocusedName returns the variable name of the focused field.
func (d *Dialog) FocusedName() string {
	if len(d.fields) == 0 {
		return ""
	}
	return d.variables[d.focusedField]
}

// FocusField moves focus to the named field.
func (d *Dialog) FocusField(name string) tea.Cmd {
	for i, v := range d.variables {
		if v == name {
			return d.focus(i)
		}
	}
	return nil
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// ConsumeSubmit reports a pending submit and clears it.
func (d *Dialog) ConsumeSubmit() bool {
	s := d.submitted
	d.submitted = false
	return s
}

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// moveFocus shifts focus by delta, wrapping at both ends.
func (d *Dialog) moveFocus(delta int) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}
	n := len(d.fields)
	return d, d.focus(((d.focusedField+delta)%n + n) % n)
}

func (d *Dialog) focus(i int) tea.Cmd {
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[d.focusedField].Focus()
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) focusedConsumesEnter() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(enterConsumer); ok {
		return f.ConsumesEnter()
	}
	return false
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
