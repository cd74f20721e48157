package form

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/colonyops/taskhub/internal/core/attach"
	"github.com/colonyops/taskhub/internal/core/styles"
)

// PickKind selects how a path typed into an attachment field is resolved.
type PickKind int

const (
	PickFiles     PickKind = iota // comma separated file paths
	PickDirectory                 // every file below a directory
	PickImages                    // image files directly inside a directory
)

func (k PickKind) String() string {
	switch k {
	case PickFiles:
		return "files"
	case PickDirectory:
		return "directory"
	case PickImages:
		return "images"
	default:
		return fmt.Sprintf("PickKind(%d)", int(k))
	}
}

// PickRequestMsg asks the owner of the form to resolve Input into files for
// the named attachment field. The field itself never touches the
// filesystem.
type PickRequestMsg struct {
	Field string
	Kind  PickKind
	Input string
}

// RemoveRequestMsg asks the owner to drop the file at Index.
type RemoveRequestMsg struct {
	Field string
	Index int
}

// AttachmentField stages files. It shows the current selection and a path
// input used to request more.
type AttachmentField struct {
	base
	name   string
	input  textinput.Model
	files  []attach.File
	cursor int
}

// NewAttachmentField creates an attachment field. name identifies the field
// in the request messages it emits.
func NewAttachmentField(name, label string) *AttachmentField {
	ti := textinput.New()
	ti.Placeholder = "path/to/file, other/file"
	ti.Prompt = styles.IconPaperclip + " "
	ti.SetWidth(44)
	ti.SetStyles(inputStyles())

	return &AttachmentField{
		base:  base{label: label, hint: "enter: add files  ctrl+o: add folder  ctrl+g: add images  del: remove"},
		name:  name,
		input: ti,
	}
}

// Name returns the identifier used in request messages.
func (f *AttachmentField) Name() string { return f.name }

func (f *AttachmentField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return f, f.pick(PickFiles)
		case "ctrl+o":
			return f, f.pick(PickDirectory)
		case "ctrl+g":
			return f, f.pick(PickImages)
		case "up":
			if f.cursor > 0 {
				f.cursor--
			}
			return f, nil
		case "down":
			if f.cursor < len(f.files)-1 {
				f.cursor++
			}
			return f, nil
		case "delete", "ctrl+d":
			if len(f.files) == 0 {
				return f, nil
			}
			req := RemoveRequestMsg{Field: f.name, Index: f.cursor}
			return f, func() tea.Msg { return req }
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// pick emits a request for the typed input. Files need a path; directory
// and image picks default to the working directory.
func (f *AttachmentField) pick(kind PickKind) tea.Cmd {
	input := strings.TrimSpace(f.input.Value())
	if input == "" {
		if kind == PickFiles {
			return nil
		}
		input = "."
	}
	req := PickRequestMsg{Field: f.name, Kind: kind, Input: input}
	return func() tea.Msg { return req }
}

func (f *AttachmentField) View() string {
	rows := make([]string, 0, len(f.files)+1)
	for i, file := range f.files {
		style := styles.AttachmentStyle
		marker := "  "
		if f.focused && i == f.cursor {
			style = styles.AttachmentSelectedStyle
			marker = "> "
		}
		rows = append(rows, marker+style.Render(styles.FileIcon(file.MediaType)+file.Name)+
			" "+styles.AttachmentMetaStyle.Render(humanize.Bytes(uint64(max(file.Size, 0)))))
	}
	if len(f.files) == 0 {
		rows = append(rows, styles.AttachmentMetaStyle.Render("No files attached"))
	}
	rows = append(rows, f.input.View())
	return f.frame(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (f *AttachmentField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *AttachmentField) Blur() {
	f.focused = false
	f.input.Blur()
}

// Value returns a copy of the staged files.
func (f *AttachmentField) Value() any { return slices.Clone(f.files) }

// Files returns a copy of the staged files.
func (f *AttachmentField) Files() []attach.File { return slices.Clone(f.files) }

// SetFiles replaces the staged files and clamps the cursor.
func (f *AttachmentField) SetFiles(files []attach.File) {
	f.files = slices.Clone(files)
	f.cursor = max(min(f.cursor, len(f.files)-1), 0)
}

// InputValue returns the typed path text.
func (f *AttachmentField) InputValue() string { return f.input.Value() }

// SetInput replaces the typed path text.
func (f *AttachmentField) SetInput(v string) { f.input.SetValue(v) }

// ClearInput empties the path input.
func (f *AttachmentField) ClearInput() { f.input.SetValue("") }

// Cursor returns the index of the highlighted file.
func (f *AttachmentField) Cursor() int { return f.cursor }

func (f *AttachmentField) ConsumesEnter() bool { return true }
