package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/taskhub/internal/printer"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config commands to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "config",
		Usage:  "Show the effective configuration",
		Action: cmd.show,
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "taskhub config validate",
				Description: "Validates the configuration file: API URL, reset delay (0 means the 2s default), theme and headers.",
				Action:      cmd.validate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) show(_ context.Context, c *cli.Command) error {
	data, err := cmd.flags.Config.Marshal()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.Root().Writer, "# %s\n%s", cmd.flags.ConfigPath, data)
	return err
}

func (cmd *ConfigCmd) validate(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	if err == nil {
		p.Successf("Configuration is valid")
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		p.Errorf("%s: %s", fe.Field, fe.Err)
	}
	p.Printf("")
	p.Errorf("%d error(s) found", len(fieldErrs))
	return cli.Exit("", 1)
}
