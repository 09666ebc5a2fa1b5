package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tidy/internal/core/styles"
	"github.com/hay-kot/tidy/internal/printer"
	"github.com/hay-kot/tidy/internal/tidy"
	"github.com/hay-kot/tidy/pkg/iojson"
)

type ListCmd struct {
	flags *Flags
	app   *tidy.App

	// flags
	filter     string
	match      string
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags, app *tidy.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List the visible items",
		UsageText: "tidy list [--filter all|active|completed] [--match GLOB] [--json]",
		Description: `Prints the items that pass the filter, starting from the configured seed.

--match keeps items whose text matches a glob pattern, ignoring case
(for example '*milk*' or 'hello *').

Use --json for one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Usage:       "visibility filter (all, active, completed)",
				Destination: &cmd.filter,
			},
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "glob pattern on item text",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		ShellComplete: FilterCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.filter != "" {
		f, err := parseFilter(cmd.filter)
		if err != nil {
			return err
		}
		if err := cmd.app.Todos.SetFilter(f); err != nil {
			return err
		}
	}

	items, err := cmd.app.Todos.Match(cmd.match)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, it := range items {
			if err := iojson.WriteLine(out, it); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	if len(items) == 0 {
		printer.Ctx(ctx).Infof("No items found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tDONE\tTEXT")
	for _, it := range items {
		done := styles.IconUnchecked
		if it.Completed {
			done = styles.IconChecked
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", it.ID, done, it.Text)
	}

	return w.Flush()
}
