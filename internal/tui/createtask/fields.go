package createtask

import (
	"github.com/colonyops/taskhub/internal/core/task"
	"github.com/colonyops/taskhub/internal/tui/components/form"
)

const priorityHint = "Please mark it as high priority if your task deadline is within 2 days"

// fieldOrder is the focus order of the form and the order used to pick the
// first invalid field.
var fieldOrder = []string{
	task.FieldTitle,
	task.FieldDescription1,
	task.FieldAttachments1,
	task.FieldDueDate,
	task.FieldCategory,
	task.FieldPriority,
	task.FieldDescription2,
	task.FieldAttachments2,
}

// scalarFields are synced from the dialog on every update. Attachment
// slots change only through pick and remove requests.
var scalarFields = []string{
	task.FieldTitle,
	task.FieldDescription1,
	task.FieldDescription2,
	task.FieldDueDate,
	task.FieldPriority,
	task.FieldCategory,
}

type fields struct {
	title        *form.TextField
	description1 *form.TextAreaField
	attachments1 *form.AttachmentField
	dueDate      *form.TextField
	category     *form.SelectFormField
	priority     *form.CheckboxField
	description2 *form.TextAreaField
	attachments2 *form.AttachmentField
}

func (f fields) attachments(slot task.Slot) *form.AttachmentField {
	if slot == task.Slot2 {
		return f.attachments2
	}
	return f.attachments1
}

func categoryOptions() []form.Option {
	cats := task.Categories()
	opts := make([]form.Option, len(cats))
	for i, c := range cats {
		opts[i] = form.Option{Label: c.Label(), Value: string(c)}
	}
	return opts
}

// newForm builds the fields and dialog showing d.
func newForm(d task.Draft) (fields, *form.Dialog) {
	f := fields{
		title: form.NewTextField("Task title", "e.g. Finish history essay", d.Title).
			Required(),
		description1: form.NewTextAreaField("Description", "What needs to be done?", d.Description1),
		attachments1: form.NewAttachmentField(task.FieldAttachments1, "Attachments"),
		dueDate: form.NewTextField("Due date", "YYYY-MM-DD", d.DueDate).
			Required().
			WithCharLimit(len(task.DateLayout)),
		category:     form.NewSelectFormField("Category", categoryOptions(), string(d.Category)),
		priority:     form.NewCheckboxField("Priority", "High priority", d.Priority == task.PriorityHigh),
		description2: form.NewTextAreaField("Priority details", "Anything urgent to note?", d.Description2).WithHint(priorityHint),
		attachments2: form.NewAttachmentField(task.FieldAttachments2, "Priority attachments"),
	}
	f.attachments1.SetFiles(d.Attachments1)
	f.attachments2.SetFiles(d.Attachments2)

	dialog := form.NewDialog("Create New Task",
		[]form.Field{
			f.title,
			f.description1,
			f.attachments1,
			f.dueDate,
			f.category,
			f.priority,
			f.description2,
			f.attachments2,
		},
		fieldOrder,
	)
	dialog.Help = helpText
	return f, dialog
}

func slotFor(field string) (task.Slot, bool) {
	switch field {
	case task.FieldAttachments1:
		return task.Slot1, true
	case task.FieldAttachments2:
		return task.Slot2, true
	default:
		return 0, false
	}
}
