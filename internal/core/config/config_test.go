package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/todo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/tmp/tidy")
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, todo.ShowAll, cfg.Filter)
	assert.Equal(t, store.Queue, cfg.Policy())
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, "/tmp/tidy", cfg.DataDir)
	assert.Equal(t, todo.DefaultSeed(), cfg.InitialState().Collection)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
filter: SHOW_ACTIVE
seed:
  - {id: 10, text: buy milk}
  - {id: 11, text: call mom, completed: true}
store:
  reentrant_dispatch: reject
`)

	cfg, err := Load(path, "/tmp/tidy")
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, store.Reject, cfg.Policy())

	state := cfg.InitialState()
	assert.Equal(t, todo.ShowActive, state.Filter)
	assert.Equal(t, todo.Collection{
		{ID: 10, Text: "buy milk"},
		{ID: 11, Text: "call mom", Completed: true},
	}, state.Collection)
}

func TestLoad_EmptySeedIsEmptyList(t *testing.T) {
	path := writeConfig(t, "seed: []\n")

	cfg, err := Load(path, "/tmp/tidy")
	require.NoError(t, err)

	state := cfg.InitialState()
	require.NotNil(t, state.Collection)
	assert.Empty(t, state.Collection)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown theme", "theme: neon\n", `unknown theme "neon"`},
		{"unknown filter", "filter: SHOW_SOME\n", `unknown filter "SHOW_SOME"`},
		{"unknown policy", "store:\n  reentrant_dispatch: drop\n", "store.reentrant_dispatch"},
		{"duplicate seed id", "seed:\n  - {id: 1, text: a}\n  - {id: 1, text: b}\n", "duplicate id 1"},
		{"blank seed text", "seed:\n  - {id: 1, text: ' '}\n", "seed[0].text"},
		{"bad yaml", "theme: [\n", "parse config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), "/tmp/tidy")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorContains(t, cfg.Validate(), "data directory")
}
