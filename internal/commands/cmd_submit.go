package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/taskhub/internal/core/styles"
	"github.com/colonyops/taskhub/internal/core/task"
	"github.com/colonyops/taskhub/internal/printer"
	"github.com/colonyops/taskhub/internal/taskapi"
	"github.com/colonyops/taskhub/pkg/iojson"
)

const priorityHint = "Please mark it as high priority if your task deadline is within 2 days"

type SubmitCmd struct {
	flags *Flags

	// Command-specific flags
	draft  draftFlags
	input  iojson.FileReader[draftFile]
	dryRun bool
	json   bool

	now func() time.Time
}

// NewSubmitCmd creates a new submit command
func NewSubmitCmd(flags *Flags) *SubmitCmd {
	return &SubmitCmd{flags: flags, now: time.Now}
}

// Register adds the submit command to the application
func (cmd *SubmitCmd) Register(app *cli.Command) *cli.Command {
	flags := append(cmd.draft.flags(),
		cmd.input.Flag(),
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "validate and show the task without sending it",
			Destination: &cmd.dryRun,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "print the API response (or the payload with --dry-run) as JSON",
			Destination: &cmd.json,
		},
	)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "submit",
		Usage:     "Create a task without the interactive form",
		UsageText: "taskhub submit [options]",
		Description: `Validates the task and sends it to the task API.

Fields come from flags or from a JSON document given with --file. When
--title is omitted on a terminal, a short form prompts for the fields.

Examples:
  taskhub submit --title "History essay" --due 2026-11-02 --attach notes.pdf
  taskhub submit -f task.json --json
  taskhub submit --title "Lab report" --due 2026-10-20 --high --dry-run`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *SubmitCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	d, err := cmd.buildDraft()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if errs := task.Validate(d, cmd.now()); !errs.Empty() {
		if cmd.json {
			_ = iojson.WriteError(c.Root().ErrWriter, "invalid task", toAnyMap(errs))
		}
		return fmt.Errorf("invalid task: %w", errs.Err())
	}

	if cmd.dryRun {
		if cmd.json {
			return writeJSON(c, taskapi.NewPayload(d, cmd.now()))
		}
		return renderSummary(c.Root().Writer, d)
	}

	client, err := cmd.flags.APIClient()
	if err != nil {
		return err
	}

	resp, err := client.Create(ctx, d)
	if err != nil {
		log.Error().Err(err).Msg("submit failed")
		if cmd.json {
			_ = iojson.WriteError(c.Root().ErrWriter, task.MsgSubmitFailed, nil)
		}
		return errors.New(task.MsgSubmitFailed)
	}

	if cmd.json {
		return writeJSON(c, resp.Body)
	}

	p.Success("Task created", d.Title)
	return nil
}

// buildDraft reads the draft from --file, the flags, or the prompt.
func (cmd *SubmitCmd) buildDraft() (task.Draft, error) {
	if cmd.input.Provided() {
		in, err := cmd.input.Read()
		if err != nil {
			return task.Draft{}, fmt.Errorf("read input: %w", err)
		}
		return in.draft()
	}

	d, err := cmd.draft.draft()
	if err != nil {
		return d, err
	}

	if d.Title == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := cmd.runForm(&d); err != nil {
			return d, fmt.Errorf("form: %w", err)
		}
	}
	return d, nil
}

func (cmd *SubmitCmd) runForm(d *task.Draft) error {
	category := string(d.Category)
	high := d.Priority == task.PriorityHigh

	options := make([]huh.Option[string], 0, len(task.Categories()))
	for _, c := range task.Categories() {
		options = append(options, huh.NewOption(c.Label(), string(c)))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task title").
				Validate(task.ValidateTitle).
				Value(&d.Title),
			huh.NewText().
				Title("Description").
				Description("What needs to be done?").
				Value(&d.Description1),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD").
				Validate(task.DueDateValidator(cmd.now())).
				Value(&d.DueDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&category),
			huh.NewConfirm().
				Title("High priority?").
				Description(priorityHint).
				Value(&high),
			huh.NewText().
				Title("Priority details").
				Value(&d.Description2),
		),
	).Run()
	if err != nil {
		return err
	}

	d.Category = task.Category(category)
	return d.SetField(task.FieldPriority, high)
}

// renderSummary writes the draft as markdown rendered for the terminal.
func renderSummary(w io.Writer, d task.Draft) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(task.Summary(d))
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

// writeJSON writes obj as JSON, colored when stdout is a terminal.
func writeJSON(c *cli.Command, obj any) error {
	w := c.Root().Writer
	if w != os.Stdout || !term.IsTerminal(int(os.Stdout.Fd())) {
		return iojson.Write(w, c.Root().ErrWriter, obj)
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, printer.ColorizeJSON(data))
	return err
}

func toAnyMap(errs task.Errors) map[string]any {
	out := make(map[string]any, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}
