package task

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// DateLayout is the format of Draft.DueDate.
const DateLayout = "2006-01-02"

// KeySubmit is the reserved Errors key for submission failures.
const KeySubmit = "submit"

// User-facing messages.
const (
	MsgTitleRequired   = "Task title is required"
	MsgDueDateRequired = "Due date is required"
	MsgDueDatePast     = "Due date cannot be in the past"
	MsgDueDateInvalid  = "Due date must be a valid date (YYYY-MM-DD)"
	MsgSubmitFailed    = "Failed to create task. Please try again."
)

// Errors maps a field name to its validation message. A missing key means the
// field is valid. KeySubmit holds the submission-level error.
type Errors map[string]string

// Empty reports whether there are no errors.
func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the field names with errors in sorted order.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// Err returns the errors as criterio.FieldErrors, or nil when empty.
func (e Errors) Err() error {
	var b criterio.FieldErrorsBuilder
	for _, field := range e.Fields() {
		b = b.Append(field, errors.New(e[field]))
	}
	return b.ToError()
}

// Validate checks a draft against the current time. Only the title and due
// date are validated; the due date is compared by calendar day in now's
// location.
func Validate(d Draft, now time.Time) Errors {
	err := criterio.ValidateStruct(
		criterio.Run(FieldTitle, d.Title, ValidateTitle),
		criterio.Run(FieldDueDate, d.DueDate, DueDateValidator(now)),
	)
	return errorsFrom(err)
}

// ValidateTitle rejects titles that are blank after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New(MsgTitleRequired)
	}
	return nil
}

// DueDateValidator returns the due date rule for the given current time.
func DueDateValidator(now time.Time) func(string) error {
	return func(value string) error {
		if value == "" {
			return errors.New(MsgDueDateRequired)
		}

		due, err := time.ParseInLocation(DateLayout, value, now.Location())
		if err != nil {
			return errors.New(MsgDueDateInvalid)
		}

		y, m, d := now.Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		if due.Before(today) {
			return errors.New(MsgDueDatePast)
		}
		return nil
	}
}

func errorsFrom(err error) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		errs[KeySubmit] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		if _, seen := errs[fe.Field]; !seen {
			errs[fe.Field] = fe.Err.Error()
		}
	}
	return errs
}
