package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  map[string]string
		wantEmpty []string
	}{
		{
			name:      "background context adds nothing",
			setupCtx:  context.Background,
			wantEmpty: []string{"command", "scenario"},
		},
		{
			name: "command only",
			setupCtx: func() context.Context {
				return WithCommand(context.Background(), "list")
			},
			wantKeys:  map[string]string{"command": "list"},
			wantEmpty: []string{"scenario"},
		},
		{
			name: "command and scenario",
			setupCtx: func() context.Context {
				return WithScenario(WithCommand(context.Background(), "replay"), "toggle twice")
			},
			wantKeys: map[string]string{"command": "replay", "scenario": "toggle twice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})

			logger.Info().Ctx(tt.setupCtx()).Msg("hello")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			for k, v := range tt.wantKeys {
				assert.Equal(t, v, entry[k])
			}
			for _, k := range tt.wantEmpty {
				assert.NotContains(t, entry, k)
			}
		})
	}
}
