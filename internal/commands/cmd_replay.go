package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tidy/internal/core/logging"
	"github.com/hay-kot/tidy/internal/core/scenario"
	"github.com/hay-kot/tidy/pkg/iojson"
)

type ReplayCmd struct {
	flags *Flags
	input iojson.FileReader[scenario.Scenario]
}

// NewReplayCmd creates a new replay command
func NewReplayCmd(flags *Flags) *ReplayCmd {
	return &ReplayCmd{flags: flags}
}

// Register adds the replay command to the application
func (cmd *ReplayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "replay",
		Usage:     "Replay a scenario of actions and check the result",
		UsageText: "tidy replay [-f scenario.yaml]",
		Description: `Reads a scenario (YAML, or JSON) from a file or stdin, dispatches its
actions into a fresh store and prints the final state and visible items.

Example scenario:

  name: basic flow
  actions:
    - {kind: ADD_ITEM, id: 3, text: x}
    - {kind: TOGGLE_ITEM, id: 0}
    - {kind: SET_FILTER, filter: SHOW_COMPLETED}
  expect:
    count: 4
    visible: [0]

The store starts from the configured seed unless the scenario sets its own.
Exits non-zero when an action is rejected or an expectation fails.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReplayCmd) run(ctx context.Context, c *cli.Command) error {
	bits, err := cmd.input.ReadBytes()
	if err != nil {
		return err
	}

	s, err := scenario.Parse(bits)
	if err != nil {
		return err
	}

	ctx = log.Logger.WithContext(logging.WithCommand(ctx, "replay"))

	res, runErr := scenario.Run(ctx, s, cmd.flags.Config.InitialState())
	if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res); err != nil {
		return err
	}

	if runErr != nil {
		return fmt.Errorf("replay %q: %w", s.Name, runErr)
	}
	return nil
}
