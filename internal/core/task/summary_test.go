package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	t.Run("minimal draft", func(t *testing.T) {
		d := New()
		d.Title = "Essay"
		d.DueDate = "2099-01-01"

		got := Summary(d)
		assert.Contains(t, got, "# Essay")
		assert.Contains(t, got, "**Due:** 2099-01-01")
		assert.Contains(t, got, "**Category:** Academic")
		assert.NotContains(t, got, "Priority")
		assert.NotContains(t, got, "## Description")
	})

	t.Run("full draft", func(t *testing.T) {
		d := New()
		d.Title = "Lab report"
		d.Priority = PriorityHigh
		d.Category = CategoryPersonal
		d.Description1 = "Write up results"
		d.Description2 = "Due within two days"
		d.Attachments1 = files("graph.png")
		d.Attachments2 = files("a", "notes.txt")

		got := Summary(d)
		assert.Contains(t, got, "**Priority:** high")
		assert.Contains(t, got, "**Category:** Personal")
		assert.Contains(t, got, "## Description\n\nWrite up results\n")
		assert.Contains(t, got, "- `graph.png` (1 B)")
		assert.Contains(t, got, "## Priority details")
		assert.Contains(t, got, "- `notes.txt` (2 B)")
	})

	t.Run("untitled", func(t *testing.T) {
		got := Summary(New())
		assert.Contains(t, got, "# Untitled task")
		assert.Contains(t, got, "**Due:** not set")
	})
}
