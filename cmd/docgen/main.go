// Command docgen generates CLI reference documentation from the tidy command
// definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tidy/internal/commands"
	"github.com/hay-kot/tidy/internal/tidy"
)

func main() {
	flags := &commands.Flags{}
	app := &tidy.App{}

	root := &cli.Command{
		Name:        "tidy",
		Usage:       "A small to-do list driven by a single state store",
		UsageText:   "tidy [global options] command [command options]",
		Description: commands.RootDescription,
		Flags:       commands.GlobalFlags(flags),
	}

	tuiCmd := commands.NewTuiCmd(flags, app)
	root.Flags = append(root.Flags, tuiCmd.Flags()...)
	root = commands.Register(root, flags, app)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
