package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestTextAreaField(t *testing.T) {
	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "line one")
		assert.Equal(t, "Body", f.Label())
		assert.Equal(t, "line one", f.Value())
	})

	t.Run("consumes enter", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "")
		assert.True(t, f.ConsumesEnter())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "")
		field, cmd := f.Update(tea.KeyPressMsg(tea.Key{Code: 'a', Text: "a"}))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("set value keeps newlines", func(t *testing.T) {
		f := NewTextAreaField("Body", "", "")
		f.SetValue("a\nb")
		assert.Equal(t, "a\nb", f.Value())
	})

	t.Run("view renders hint", func(t *testing.T) {
		f := NewTextAreaField("Details", "", "").WithHint("within 2 days")
		assert.Contains(t, f.View(), "within 2 days")
	})
}
