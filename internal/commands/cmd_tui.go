package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tidy/internal/profiler"
	"github.com/hay-kot/tidy/internal/tidy"
	"github.com/hay-kot/tidy/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *tidy.App

	filter string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *tidy.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "filter",
			Usage:       "start with this filter (all, active, completed)",
			Sources:     cli.EnvVars("TIDY_FILTER"),
			Destination: &cmd.filter,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof and /debug/state HTTP endpoints on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("TIDY_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, func() any { return cmd.app.Store.GetState() })
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	if cmd.filter != "" {
		f, err := parseFilter(cmd.filter)
		if err != nil {
			return err
		}
		if err := cmd.app.Todos.SetFilter(f); err != nil {
			return err
		}
	}

	m := tui.New(tui.Deps{Todos: cmd.app.Todos})
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := finalModel.(tui.Model); ok {
		st := model.State()
		log.Info().
			Int("items", len(st.Collection)).
			Str("filter", string(st.Filter)).
			Msg("tui closed")
	}
	return nil
}
