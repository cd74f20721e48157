package commands

import (
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskhub/internal/core/attach"
	"github.com/colonyops/taskhub/internal/core/task"
)

// draftFlags are the task fields accepted on the command line. They prefill
// the interactive form and drive non-interactive submission.
type draftFlags struct {
	title       string
	description string
	details     string
	due         string
	high        bool
	category    string

	attach      []string
	attachDir   []string
	attachImgs  []string
	attach2     []string
	attach2Dir  []string
	attach2Imgs []string
}

func (f *draftFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Aliases:     []string{"t"},
			Usage:       "task title",
			Destination: &f.title,
		},
		&cli.StringFlag{
			Name:        "description",
			Aliases:     []string{"d"},
			Usage:       "task description",
			Destination: &f.description,
		},
		&cli.StringFlag{
			Name:        "details",
			Usage:       "priority details",
			Destination: &f.details,
		},
		&cli.StringFlag{
			Name:        "due",
			Usage:       "due date (YYYY-MM-DD)",
			Destination: &f.due,
		},
		&cli.BoolFlag{
			Name:        "high",
			Usage:       "mark the task as high priority",
			Destination: &f.high,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "task category (academic, personal)",
			Value:       string(task.CategoryAcademic),
			Destination: &f.category,
			Validator: func(s string) error {
				if !task.Category(s).IsValid() {
					return fmt.Errorf("unknown category %q", s)
				}
				return nil
			},
		},
		&cli.StringSliceFlag{
			Name:        "attach",
			Aliases:     []string{"a"},
			Usage:       "attach a file to the description (repeatable)",
			Destination: &f.attach,
		},
		&cli.StringSliceFlag{
			Name:        "attach-dir",
			Usage:       "attach every file below a directory to the description",
			Destination: &f.attachDir,
		},
		&cli.StringSliceFlag{
			Name:        "attach-images",
			Usage:       "attach the images inside a directory to the description",
			Destination: &f.attachImgs,
		},
		&cli.StringSliceFlag{
			Name:        "attach2",
			Usage:       "attach a file to the priority details (repeatable)",
			Destination: &f.attach2,
		},
		&cli.StringSliceFlag{
			Name:        "attach2-dir",
			Usage:       "attach every file below a directory to the priority details",
			Destination: &f.attach2Dir,
		},
		&cli.StringSliceFlag{
			Name:        "attach2-images",
			Usage:       "attach the images inside a directory to the priority details",
			Destination: &f.attach2Imgs,
		},
	}
}

// draft builds a draft from the flag values, resolving attachments.
func (f *draftFlags) draft() (task.Draft, error) {
	d := task.New()
	d.Title = f.title
	d.Description1 = f.description
	d.Description2 = f.details
	d.DueDate = f.due
	if f.category != "" {
		d.Category = task.Category(f.category)
	}
	if err := d.SetField(task.FieldPriority, f.high); err != nil {
		return d, err
	}

	var errs []error
	add := func(slot task.Slot, files []attach.File, err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		if err := d.AddAttachments(slot, files...); err != nil {
			errs = append(errs, err)
		}
	}

	for _, p := range f.attach {
		files, err := attach.Files(attach.ParsePaths(p)...)
		add(task.Slot1, files, err)
	}
	for _, dir := range f.attachDir {
		files, err := attach.Directory(dir)
		add(task.Slot1, files, err)
	}
	for _, dir := range f.attachImgs {
		files, err := attach.Images(dir)
		add(task.Slot1, files, err)
	}
	for _, p := range f.attach2 {
		files, err := attach.Files(attach.ParsePaths(p)...)
		add(task.Slot2, files, err)
	}
	for _, dir := range f.attach2Dir {
		files, err := attach.Directory(dir)
		add(task.Slot2, files, err)
	}
	for _, dir := range f.attach2Imgs {
		files, err := attach.Images(dir)
		add(task.Slot2, files, err)
	}

	if err := errors.Join(errs...); err != nil {
		return d, fmt.Errorf("attachments: %w", err)
	}
	return d, nil
}

// draftFile is the JSON input accepted by submit --file.
type draftFile struct {
	Title        string   `json:"title"`
	Description1 string   `json:"description1"`
	Description2 string   `json:"description2"`
	DueDate      string   `json:"dueDate"`
	Priority     string   `json:"priority"`
	Category     string   `json:"category"`
	Attachments1 []string `json:"attachments1"`
	Attachments2 []string `json:"attachments2"`
}

func (in draftFile) draft() (task.Draft, error) {
	if err := in.validate(); err != nil {
		return task.Draft{}, err
	}

	d := task.New()
	d.Title = in.Title
	d.Description1 = in.Description1
	d.Description2 = in.Description2
	d.DueDate = in.DueDate
	d.Priority = task.Priority(in.Priority)
	if in.Category != "" {
		d.Category = task.Category(in.Category)
	}

	files1, err := attach.Files(in.Attachments1...)
	if err != nil {
		return d, fmt.Errorf("attachments1: %w", err)
	}
	files2, err := attach.Files(in.Attachments2...)
	if err != nil {
		return d, fmt.Errorf("attachments2: %w", err)
	}
	d.Attachments1 = files1
	d.Attachments2 = files2
	return d, nil
}

// validate rejects priority and category values the task model does not
// know. Empty values fall back to the defaults.
func (in draftFile) validate() error {
	return criterio.ValidateStruct(
		criterio.Run(task.FieldPriority, task.Priority(in.Priority), func(p task.Priority) error {
			if !p.IsValid() {
				return fmt.Errorf("unknown priority %q (use %q or leave empty)", p, task.PriorityHigh)
			}
			return nil
		}),
		criterio.Run(task.FieldCategory, in.Category, func(c string) error {
			if c != "" && !task.Category(c).IsValid() {
				return fmt.Errorf("unknown category %q", c)
			}
			return nil
		}),
	)
}
