// Package initcmd implements the tidy init wizard.
package initcmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/tidy/internal/core/config"
	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/styles"
	"github.com/hay-kot/tidy/internal/core/todo"
	"github.com/hay-kot/tidy/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	DataDir    string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions

	// prompt fills cfg interactively. Replaced in tests.
	prompt func(cfg *config.Config) error
	// confirm asks whether to overwrite an existing config.
	confirm func(path string) (bool, error)
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{
		opts:    opts,
		prompt:  promptUser,
		confirm: confirmOverwrite,
	}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		overwrite, err := w.confirm(w.opts.ConfigPath)
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	cfg.DataDir = w.opts.DataDir

	if !w.opts.Yes {
		if err := w.prompt(&cfg); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("Init cancelled")
				return nil
			}
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid choices: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := WriteConfig(w.opts.ConfigPath, data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Add seed items under 'seed:' in %s", w.opts.ConfigPath)
	p.Printf("  2. Run 'tidy config validate' to check it")
	p.Printf("  3. Run 'tidy' to open the list")

	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Config file already exists").
		Description(path + "\nOverwrite? (a backup will be created)").
		Value(&overwrite).
		Run()
	return overwrite, err
}

func promptUser(cfg *config.Config) error {
	filter := string(cfg.Filter)

	filterOpts := make([]huh.Option[string], 0, len(todo.FilterModes()))
	for _, f := range todo.FilterModes() {
		filterOpts = append(filterOpts, huh.NewOption(f.Label(), string(f)))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&cfg.Theme),
		huh.NewSelect[string]().
			Title("Default filter").
			Description("Which items the list shows on start").
			Options(filterOpts...).
			Value(&filter),
		huh.NewSelect[string]().
			Title("Dispatch during notification").
			Description("What happens when a subscriber dispatches while the store is notifying").
			Options(
				huh.NewOption("queue and apply afterwards", store.Queue.String()),
				huh.NewOption("reject with an error", store.Reject.String()),
			).
			Value(&cfg.Store.ReentrantDispatch),
	))

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Filter = todo.FilterMode(filter)
	return nil
}
