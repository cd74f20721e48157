// Package task holds the task draft edited by the create form, the rules used
// to validate it, and the helpers that describe it.
package task

import (
	"errors"
	"fmt"
	"slices"

	"github.com/colonyops/taskhub/internal/core/attach"
)

// Field names shared by SetField, Get, and Errors.
const (
	FieldTitle        = "title"
	FieldDescription1 = "description1"
	FieldDescription2 = "description2"
	FieldDueDate      = "dueDate"
	FieldPriority     = "priority"
	FieldCategory     = "category"
	FieldAttachments1 = "attachments1"
	FieldAttachments2 = "attachments2"
)

var (
	ErrUnknownField    = errors.New("unknown field")
	ErrFieldType       = errors.New("invalid value type")
	ErrInvalidSlot     = errors.New("invalid attachment slot")
	ErrIndexOutOfRange = errors.New("attachment index out of range")
)

// Priority is either high or unset.
type Priority string

const (
	PriorityNone Priority = ""
	PriorityHigh Priority = "high"
)

// IsValid reports whether p is high or unset.
func (p Priority) IsValid() bool {
	return p == PriorityNone || p == PriorityHigh
}

// Category groups tasks. Academic is the default.
type Category string

const (
	CategoryAcademic Category = "academic"
	CategoryPersonal Category = "personal"
)

// Categories returns the selectable categories in display order.
func Categories() []Category {
	return []Category{CategoryAcademic, CategoryPersonal}
}

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryAcademic:
		return "Academic"
	case CategoryPersonal:
		return "Personal"
	default:
		return string(c)
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// Slot identifies one of the two attachment lists of a draft.
type Slot int

const (
	Slot1 Slot = 1
	Slot2 Slot = 2
)

// Field returns the draft field name backing the slot.
func (s Slot) Field() string {
	switch s {
	case Slot1:
		return FieldAttachments1
	case Slot2:
		return FieldAttachments2
	default:
		return ""
	}
}

// Draft is the in-memory state of a task being created. It is never
// persisted.
type Draft struct {
	Title        string
	Description1 string
	Description2 string
	DueDate      string // YYYY-MM-DD
	Priority     Priority
	Category     Category
	Attachments1 []attach.File
	Attachments2 []attach.File
}

// New returns a draft holding the default values.
func New() Draft {
	return Draft{Category: CategoryAcademic}
}

// Reset returns the draft to its default values.
func (d *Draft) Reset() {
	*d = New()
}

// SetField replaces a single field and leaves every other field unchanged.
// No validation is performed on the value itself.
func (d *Draft) SetField(name string, value any) error {
	switch name {
	case FieldTitle, FieldDescription1, FieldDescription2, FieldDueDate:
		s, ok := value.(string)
		if !ok {
			return typeErr(name, "string", value)
		}
		*d.stringField(name) = s
	case FieldPriority:
		switch v := value.(type) {
		case Priority:
			d.Priority = v
		case string:
			d.Priority = Priority(v)
		case bool:
			d.Priority = PriorityNone
			if v {
				d.Priority = PriorityHigh
			}
		default:
			return typeErr(name, "priority", value)
		}
	case FieldCategory:
		switch v := value.(type) {
		case Category:
			d.Category = v
		case string:
			d.Category = Category(v)
		default:
			return typeErr(name, "category", value)
		}
	case FieldAttachments1, FieldAttachments2:
		files, ok := value.([]attach.File)
		if !ok {
			return typeErr(name, "[]attach.File", value)
		}
		if name == FieldAttachments1 {
			d.Attachments1 = slices.Clone(files)
		} else {
			d.Attachments2 = slices.Clone(files)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Get returns the current value of a field, or nil for an unknown name.
func (d Draft) Get(name string) any {
	switch name {
	case FieldTitle:
		return d.Title
	case FieldDescription1:
		return d.Description1
	case FieldDescription2:
		return d.Description2
	case FieldDueDate:
		return d.DueDate
	case FieldPriority:
		return d.Priority
	case FieldCategory:
		return d.Category
	case FieldAttachments1:
		return d.Attachments1
	case FieldAttachments2:
		return d.Attachments2
	default:
		return nil
	}
}

// Attachments returns the files staged in a slot. The returned slice must not
// be modified.
func (d Draft) Attachments(slot Slot) []attach.File {
	switch slot {
	case Slot1:
		return d.Attachments1
	case Slot2:
		return d.Attachments2
	default:
		return nil
	}
}

// AddAttachments appends files to a slot. Duplicates are kept and no size
// limit applies.
func (d *Draft) AddAttachments(slot Slot, files ...attach.File) error {
	list, err := d.slot(slot)
	if err != nil {
		return err
	}
	// Clip forces a new backing array so copies of the draft stay independent.
	*list = append(slices.Clip(*list), files...)
	return nil
}

// RemoveAttachment deletes the entry at index from a slot. Later entries shift
// down by one.
func (d *Draft) RemoveAttachment(slot Slot, index int) error {
	list, err := d.slot(slot)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(*list) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(*list))
	}

	next := make([]attach.File, 0, len(*list)-1)
	next = append(next, (*list)[:index]...)
	next = append(next, (*list)[index+1:]...)
	*list = next
	return nil
}

func (d *Draft) slot(slot Slot) (*[]attach.File, error) {
	switch slot {
	case Slot1:
		return &d.Attachments1, nil
	case Slot2:
		return &d.Attachments2, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
}

func (d *Draft) stringField(name string) *string {
	switch name {
	case FieldTitle:
		return &d.Title
	case FieldDescription1:
		return &d.Description1
	case FieldDescription2:
		return &d.Description2
	default:
		return &d.DueDate
	}
}

func typeErr(name, want string, got any) error {
	return fmt.Errorf("%w: %s expects %s, got %T", ErrFieldType, name, want, got)
}
