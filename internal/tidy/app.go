// Package tidy wires the to-do store, its services and configuration into
// the App consumed by commands and the TUI.
package tidy

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/tidy/internal/core/config"
	"github.com/hay-kot/tidy/internal/core/logging"
	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/todo"
)

// Store is the to-do state container.
type Store = store.Store[todo.State, todo.Action]

// Handle is the narrow store capability handed to views.
type Handle = store.Handle[todo.State, todo.Action]

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the central entry point for all tidy operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Todos  *TodoService
	Store  *Store
	Config *config.Config
	Build  BuildInfo
}

// NewApp constructs an App with a fresh store built from cfg.
func NewApp(cfg *config.Config, logger zerolog.Logger, build BuildInfo) *App {
	s := NewStore(cfg, logging.Component(logger, "store"))

	return &App{
		Todos:  NewTodoService(s, logging.Component(logger, "todo-service")),
		Store:  s,
		Config: cfg,
		Build:  build,
	}
}

// NewStore builds a store for cfg. Without configured seed items or filter
// the reducers bootstrap the initial state themselves.
func NewStore(cfg *config.Config, logger zerolog.Logger) *Store {
	opts := []store.Option[todo.State, todo.Action]{
		store.WithValidator(todo.Validate),
		store.WithReentrancy[todo.State, todo.Action](cfg.Policy()),
		store.WithLogger[todo.State, todo.Action](logger),
	}
	if cfg.Seed != nil || cfg.Filter != todo.ShowAll {
		opts = append(opts, store.WithInitialState[todo.State, todo.Action](cfg.InitialState()))
	}

	s := store.New[todo.State, todo.Action](todo.Reduce, opts...)
	store.RegisterDebugLogger(s, logger)
	return s
}
