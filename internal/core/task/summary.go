package task

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/colonyops/taskhub/internal/core/attach"
)

// Summary renders the draft as a markdown document for review before it is
// sent.
func Summary(d Draft) string {
	var b strings.Builder

	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "Untitled task"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	due := d.DueDate
	if due == "" {
		due = "not set"
	}
	fmt.Fprintf(&b, "- **Due:** %s\n", due)
	fmt.Fprintf(&b, "- **Category:** %s\n", d.Category.Label())
	if d.Priority == PriorityHigh {
		b.WriteString("- **Priority:** high\n")
	}

	writeSection(&b, "Description", d.Description1, d.Attachments1)
	writeSection(&b, "Priority details", d.Description2, d.Attachments2)

	return b.String()
}

func writeSection(b *strings.Builder, heading, text string, files []attach.File) {
	text = strings.TrimSpace(text)
	if text == "" && len(files) == 0 {
		return
	}

	fmt.Fprintf(b, "\n## %s\n\n", heading)
	if text != "" {
		b.WriteString(text)
		b.WriteString("\n")
	}
	if len(files) > 0 {
		if text != "" {
			b.WriteString("\n")
		}
		for _, f := range files {
			fmt.Fprintf(b, "- `%s` (%s)\n", f.Name, humanize.Bytes(uint64(f.Size)))
		}
	}
}
