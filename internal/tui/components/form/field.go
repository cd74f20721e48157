package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskhub/internal/core/styles"
)

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/textarea/select, bool for checkbox, []attach.File for attachments
	Label() string // Display label for the field
	SetError(msg string)
	Error() string
}

// enterConsumer is an optional interface for fields that use enter
// themselves instead of advancing focus.
type enterConsumer interface {
	ConsumesEnter() bool
}

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// base carries the state shared by every field: label, focus, the inline
// error message and decorations.
type base struct {
	label    string
	hint     string
	required bool
	focused  bool
	err      string
}

func (b *base) Focused() bool       { return b.focused }
func (b *base) Label() string       { return b.label }
func (b *base) SetError(msg string) { b.err = msg }
func (b *base) Error() string       { return b.err }

// frame renders content under the field title with the focus border, hint
// and error line.
func (b *base) frame(content string) string {
	titleStyle := styles.FormTitleBlurredStyle
	if b.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(b.label)
	if b.required {
		title += styles.FormRequiredStyle.Render(" *")
	}

	parts := []string{title}
	if b.hint != "" {
		parts = append(parts, styles.FormHelpStyle.Render(b.hint))
	}
	parts = append(parts, content)
	if b.err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(styles.IconCross+" "+b.err))
	}

	borderStyle := styles.FormFieldStyle
	if b.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
