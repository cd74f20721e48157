package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestTextField(t *testing.T) {
	t.Run("creation with defaults", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "")
		assert.Equal(t, "Name", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
		assert.Empty(t, f.Error())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "hello")
		assert.Equal(t, "hello", f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("focus returns a cmd", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		assert.NotNil(t, f.Focus())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		field, cmd := f.Update(tea.KeyPressMsg(tea.Key{Code: 'a', Text: "a"}))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("set value", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.SetValue("typed text")
		assert.Equal(t, "typed text", f.Value())
	})

	t.Run("char limit", func(t *testing.T) {
		f := NewTextField("Due", "", "").WithCharLimit(10)
		f.SetValue("2026-10-16T00:00")
		assert.Equal(t, "2026-10-16", f.Value())
	})

	t.Run("view shows required marker, hint and error", func(t *testing.T) {
		f := NewTextField("Title", "", "").Required().WithHint("what needs doing")
		f.SetError("Task title is required")

		view := f.View()
		assert.Contains(t, view, "Title")
		assert.Contains(t, view, "*")
		assert.Contains(t, view, "what needs doing")
		assert.Contains(t, view, "Task title is required")
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		blurred := f.View()
		f.Focus()
		assert.NotEqual(t, blurred, f.View())
	})
}
