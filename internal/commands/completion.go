package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tidy/internal/core/todo"
)

// FilterCompleter suggests the filter names for --filter. When the last
// typed argument is a flag it falls back to the default flag completion.
func FilterCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, f := range todo.FilterModes() {
			_, _ = fmt.Fprintln(w, f)
		}
	}
}

// parseFilter accepts a filter name as written in actions (SHOW_ACTIVE) or
// its short label (active).
func parseFilter(s string) (todo.FilterMode, error) {
	for _, f := range todo.FilterModes() {
		if s == string(f) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q (want all, active or completed)", s)
}
