package createtask

import "github.com/colonyops/taskhub/internal/tui/components"

var helpSections = []components.HelpDialogSection{
	{
		Title: "Form",
		Entries: []components.HelpEntry{
			{Key: "tab", Desc: "next field"},
			{Key: "shift+tab", Desc: "previous field"},
			{Key: "enter", Desc: "next field from a one-line input"},
			{Key: "ctrl+s", Desc: "submit"},
			{Key: "ctrl+r", Desc: "clear the form"},
			{Key: "esc", Desc: "quit"},
		},
	},
	{
		Title: "Choices",
		Entries: []components.HelpEntry{
			{Key: "↑/↓", Desc: "change category"},
			{Key: "space", Desc: "toggle high priority"},
		},
	},
	{
		Title: "Attachments",
		Entries: []components.HelpEntry{
			{Key: "enter", Desc: "attach the typed path"},
			{Key: "ctrl+o", Desc: "attach every file in a folder"},
			{Key: "ctrl+g", Desc: "attach the images in a folder"},
			{Key: "↑/↓", Desc: "select a staged file"},
			{Key: "ctrl+d", Desc: "remove the selected file"},
		},
	},
}

func newHelp() *components.HelpDialog {
	return components.NewHelpDialog("Keyboard shortcuts", helpSections)
}
