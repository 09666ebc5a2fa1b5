package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markHook struct{}

func (markHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Bool("hooked", true)
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "tidy.log")

	logger, closer, err := New("info", file, markHook{})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	closer()

	bits, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(bits), "hidden")
	assert.Contains(t, string(bits), "shown")
	assert.Contains(t, string(bits), `"hooked":true`)
}

func TestNew_Appends(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tidy.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", file)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	bits, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(bits), "first")
	assert.Contains(t, string(bits), "second")
}

func TestNew_BadLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotPanics(t, closer)
}
