// Package config handles configuration loading and validation for tidy.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/styles"
	"github.com/hay-kot/tidy/internal/core/todo"
)

// Config holds the application configuration.
type Config struct {
	Theme   string          `yaml:"theme"`
	Filter  todo.FilterMode `yaml:"filter"`
	Seed    []todo.Item     `yaml:"seed,omitempty"`
	Store   StoreConfig     `yaml:"store"`
	DataDir string          `yaml:"-"` // set by caller, not from config file
}

// StoreConfig holds state container settings.
type StoreConfig struct {
	// ReentrantDispatch is "queue" or "reject". See store.Policy.
	ReentrantDispatch string `yaml:"reentrant_dispatch"`
}

// DefaultConfig returns a Config with sensible defaults. Seed is left nil so
// the built-in sample items are used.
func DefaultConfig() Config {
	return Config{
		Theme:  styles.DefaultTheme,
		Filter: todo.ShowAll,
		Store: StoreConfig{
			ReentrantDispatch: store.Queue.String(),
		},
	}
}

// Load reads the config file at configPath, if it exists, over the defaults.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Filter == "" {
		c.Filter = defaults.Filter
	}
	if c.Store.ReentrantDispatch == "" {
		c.Store.ReentrantDispatch = defaults.Store.ReentrantDispatch
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}

	if !c.Filter.IsValid() {
		return fmt.Errorf("unknown filter %q", c.Filter)
	}

	if _, err := store.ParsePolicy(c.Store.ReentrantDispatch); err != nil {
		return fmt.Errorf("store.reentrant_dispatch: %w", err)
	}

	return c.validateSeed()
}

// Policy returns the parsed reentrant dispatch policy. Call after Validate.
func (c *Config) Policy() store.Policy {
	p, _ := store.ParsePolicy(c.Store.ReentrantDispatch)
	return p
}

// InitialState returns the state the store starts from.
func (c *Config) InitialState() todo.State {
	var seed todo.Collection
	if c.Seed != nil {
		seed = todo.Collection(c.Seed)
	}
	return todo.InitialState(seed, c.Filter)
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
