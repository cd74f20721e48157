package taskapi

import (
	"time"

	"github.com/colonyops/taskhub/internal/core/attach"
	"github.com/colonyops/taskhub/internal/core/task"
)

// TimestampLayout is the createdAt format: UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Payload is the JSON body of a task creation request.
type Payload struct {
	Title        string        `json:"title"`
	Description1 string        `json:"description1"`
	Description2 string        `json:"description2"`
	DueDate      string        `json:"dueDate"`
	Priority     task.Priority `json:"priority"`
	Category     task.Category `json:"category"`
	Attachments1 []Attachment  `json:"attachments1"`
	Attachments2 []Attachment  `json:"attachments2"`
	CreatedAt    string        `json:"createdAt"`
}

// Attachment describes a staged file. Only metadata is sent: file contents
// and local paths never leave the machine.
type Attachment struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	LastModified int64  `json:"lastModified"` // unix milliseconds
}

// NewPayload builds the request body for a draft created at now.
func NewPayload(d task.Draft, now time.Time) Payload {
	return Payload{
		Title:        d.Title,
		Description1: d.Description1,
		Description2: d.Description2,
		DueDate:      d.DueDate,
		Priority:     d.Priority,
		Category:     d.Category,
		Attachments1: attachments(d.Attachments1),
		Attachments2: attachments(d.Attachments2),
		CreatedAt:    now.UTC().Format(TimestampLayout),
	}
}

func attachments(files []attach.File) []Attachment {
	out := make([]Attachment, 0, len(files))
	for _, f := range files {
		var modified int64
		if !f.ModTime.IsZero() {
			modified = f.ModTime.UnixMilli()
		}
		out = append(out, Attachment{
			Name:         f.Name,
			Size:         f.Size,
			Type:         f.MediaType,
			LastModified: modified,
		})
	}
	return out
}
