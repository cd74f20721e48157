// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/taskhub/internal/core/styles"
)

const helpKeyWidth = 12

// HelpEntry is a single keyboard shortcut.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog lists keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// View renders the dialog box.
func (h *HelpDialog) View() string {
	lines := []string{styles.HeaderTitleStyle.Render(h.title)}

	for _, section := range h.sections {
		lines = append(lines, "")
		if section.Title != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title))
		}
		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}

	lines = append(lines, styles.HelpStyle.Render("esc/f1 close"))
	return styles.HelpDialogStyle.Render(strings.Join(lines, "\n"))
}

// Overlay renders the dialog centered over background. Without a known
// size the dialog is returned on its own.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()
	if width <= 0 || height <= 0 {
		return modal
	}

	modalLayer := lipgloss.NewLayer(modal).
		X(max(0, (width-lipgloss.Width(modal))/2)).
		Y(max(0, (height-lipgloss.Height(modal))/2)).
		Z(1)

	return lipgloss.NewCompositor(lipgloss.NewLayer(background), modalLayer).Render()
}

func formatKeyDesc(key, desc string) string {
	pad := max(0, helpKeyWidth-lipgloss.Width(key))
	return styles.HelpKeyStyle.Render(key+strings.Repeat(" ", pad)) + styles.CommandStyle.Render(desc)
}
