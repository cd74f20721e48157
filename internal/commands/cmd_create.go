package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/taskhub/internal/printer"
	"github.com/colonyops/taskhub/internal/tui/createtask"
)

type CreateCmd struct {
	flags *Flags
	draft draftFlags
}

// NewCreateCmd creates a new create command
func NewCreateCmd(flags *Flags) *CreateCmd {
	return &CreateCmd{flags: flags}
}

// Flags returns the create flags for registration on the root command
func (cmd *CreateCmd) Flags() []cli.Flag {
	return cmd.draft.flags()
}

// Register adds the create command to the application
func (cmd *CreateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "create",
		Usage:     "Open the interactive task form",
		UsageText: "taskhub create [options]",
		Description: `Opens the task creation form. Flags prefill the form.

Keys:
  tab / shift+tab   move between fields
  ctrl+s            submit
  ctrl+r            reset the form
  esc / ctrl+c      quit

In an attachment field type a path and press enter to attach it, ctrl+o to
attach a whole folder or ctrl+g to attach the images inside a folder.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})

	return app
}

// Run executes the form. Exported for use as default command.
func (cmd *CreateCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *CreateCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the task form needs an interactive terminal; use 'taskhub submit' instead")
	}

	prefill, err := cmd.draft.draft()
	if err != nil {
		return err
	}

	client, err := cmd.flags.APIClient()
	if err != nil {
		return err
	}

	m := createtask.New(createtask.Deps{
		Submitter:  client,
		ResetDelay: cmd.flags.Config.Form.ResetDelay,
		Context:    ctx,
	}, createtask.Options{Draft: &prefill})

	log.Info().Str("endpoint", client.Endpoint()).Msg("starting task form")

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	if fm, ok := final.(createtask.Model); ok && fm.Created() > 0 {
		printer.Ctx(ctx).Successf("Created %d task(s)", fm.Created())
	}
	return nil
}
