package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestSelectFormField(t *testing.T) {
	options := []Option{
		{Label: "Alpha", Value: "alpha"},
		{Label: "Beta", Value: "beta"},
		{Label: "Gamma", Value: "gamma"},
	}

	t.Run("creation with no default", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "")
		assert.Equal(t, "Pick", f.Label())
		assert.False(t, f.Focused())
		assert.Equal(t, "alpha", f.Value())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "beta")
		assert.Equal(t, "beta", f.Value())
	})

	t.Run("invalid default falls back to first", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "nonexistent")
		assert.Equal(t, "alpha", f.Value())
	})

	t.Run("empty options", func(t *testing.T) {
		f := NewSelectFormField("Pick", nil, "")
		assert.Empty(t, f.Value())
	})

	t.Run("set value", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "")
		f.SetValue("gamma")
		assert.Equal(t, "gamma", f.Value())
		f.SetValue("")
		assert.Equal(t, "alpha", f.Value())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "")
		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "alpha", field.Value())
	})

	t.Run("update processes input when focused", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "")
		f.Focus()

		field, _ := f.Update(tea.KeyPressMsg(tea.Key{Code: 'j'}))
		assert.Equal(t, "beta", field.Value())
	})

	t.Run("is not filtering initially", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "")
		assert.False(t, f.IsFiltering())
	})

	t.Run("view renders labels", func(t *testing.T) {
		f := NewSelectFormField("Pick", options, "")
		view := f.View()
		assert.Contains(t, view, "Pick")
		assert.Contains(t, view, "Alpha")
	})
}
