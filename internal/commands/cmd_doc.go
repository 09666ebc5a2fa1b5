package commands

import (
	"context"
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/tidy/internal/core/styles"
)

//go:embed docs/*.md
var docsFS embed.FS

type DocCmd struct {
	flags *Flags
	raw   bool
	width int
}

func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	topics := docTopics()

	commands := make([]*cli.Command, 0, len(topics))
	for _, topic := range topics {
		commands = append(commands, cmd.topicCmd(topic))
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Show built-in documentation",
		Description: `Renders the built-in guides in the terminal.

Use 'tidy doc actions' for the action reference.
Use 'tidy doc keys' for the TUI key bindings.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Commands: commands,
	})
	return app
}

func (cmd *DocCmd) topicCmd(topic string) *cli.Command {
	return &cli.Command{
		Name:  topic,
		Usage: fmt.Sprintf("Show the %s guide", topic),
		Action: func(_ context.Context, c *cli.Command) error {
			out, err := cmd.render(topic)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.Root().Writer, out)
			return err
		},
	}
}

// render returns the topic's markdown, styled with the active theme unless
// --raw is set.
func (cmd *DocCmd) render(topic string) (string, error) {
	md, err := readDoc(topic)
	if err != nil {
		return "", err
	}
	if cmd.raw {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", topic, err)
	}
	return out, nil
}

// docTopics lists the embedded guides by name, sorted.
func docTopics() []string {
	entries, _ := docsFS.ReadDir("docs")

	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	slices.Sort(topics)
	return topics
}

func readDoc(topic string) (string, error) {
	bits, err := docsFS.ReadFile(path.Join("docs", topic+".md"))
	if err != nil {
		return "", fmt.Errorf("unknown doc topic %q (have %s)", topic, strings.Join(docTopics(), ", "))
	}
	return string(bits), nil
}
