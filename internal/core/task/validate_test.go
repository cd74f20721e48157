package task

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is late in the day so that a time-of-day comparison would wrongly
// reject today's date.
var now = time.Date(2026, time.October, 16, 23, 30, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(d *Draft)
		want Errors
	}{
		{
			name: "valid draft",
			edit: func(d *Draft) { d.Title = "Essay"; d.DueDate = "2099-01-01" },
			want: Errors{},
		},
		{
			name: "empty title and due date",
			edit: func(d *Draft) {},
			want: Errors{FieldTitle: MsgTitleRequired, FieldDueDate: MsgDueDateRequired},
		},
		{
			name: "whitespace title",
			edit: func(d *Draft) { d.Title = " \t\n "; d.DueDate = "2099-01-01" },
			want: Errors{FieldTitle: MsgTitleRequired},
		},
		{
			name: "title with surrounding whitespace is valid",
			edit: func(d *Draft) { d.Title = "  Essay  "; d.DueDate = "2099-01-01" },
			want: Errors{},
		},
		{
			name: "due today",
			edit: func(d *Draft) { d.Title = "Essay"; d.DueDate = "2026-10-16" },
			want: Errors{},
		},
		{
			name: "due yesterday",
			edit: func(d *Draft) { d.Title = "Essay"; d.DueDate = "2026-10-15" },
			want: Errors{FieldDueDate: MsgDueDatePast},
		},
		{
			name: "due tomorrow",
			edit: func(d *Draft) { d.Title = "Essay"; d.DueDate = "2026-10-17" },
			want: Errors{},
		},
		{
			name: "due long ago",
			edit: func(d *Draft) { d.Title = "Essay"; d.DueDate = "1999-12-31" },
			want: Errors{FieldDueDate: MsgDueDatePast},
		},
		{
			name: "malformed due date",
			edit: func(d *Draft) { d.Title = "Essay"; d.DueDate = "next friday" },
			want: Errors{FieldDueDate: MsgDueDateInvalid},
		},
		{
			name: "other fields are never validated",
			edit: func(d *Draft) {
				d.Title = "Essay"
				d.DueDate = "2099-01-01"
				d.Category = "unknown"
				d.Priority = "urgent"
				d.Attachments1 = files("a")
			},
			want: Errors{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			tt.edit(&d)
			got := Validate(d, now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, got.Empty())
		})
	}
}

func TestValidate_UsesLocationOfNow(t *testing.T) {
	// 01:00 on the 17th in UTC+2 is still the 16th in UTC.
	zone := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2026, time.October, 17, 1, 0, 0, 0, zone)

	d := New()
	d.Title = "Essay"
	d.DueDate = "2026-10-16"

	errs := Validate(d, local)
	assert.Equal(t, MsgDueDatePast, errs[FieldDueDate])
}

func TestValidate_Deterministic(t *testing.T) {
	d := New()
	d.DueDate = "2026-01-01"
	assert.Equal(t, Validate(d, now), Validate(d, now))
}

func TestErrors(t *testing.T) {
	t.Run("empty converts to nil error", func(t *testing.T) {
		assert.NoError(t, Errors{}.Err())
	})

	t.Run("field errors are sorted", func(t *testing.T) {
		errs := Errors{FieldTitle: MsgTitleRequired, FieldDueDate: MsgDueDateRequired}
		assert.True(t, errs.Has(FieldTitle))
		assert.False(t, errs.Has(FieldCategory))
		assert.Equal(t, []string{FieldDueDate, FieldTitle}, errs.Fields())

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, errs.Err(), &fieldErrs)
		require.Len(t, fieldErrs, 2)
		assert.Equal(t, FieldDueDate, fieldErrs[0].Field)
		assert.Equal(t, MsgDueDateRequired, fieldErrs[0].Err.Error())
	})
}
