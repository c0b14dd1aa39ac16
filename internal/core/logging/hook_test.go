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
		name     string
		setupCtx func() context.Context
		wantID   string
	}{
		{
			name: "session_id present",
			setupCtx: func() context.Context {
				return WithSessionID(context.Background(), "sess-123")
			},
			wantID: "sess-123",
		},
		{
			name:     "no context values",
			setupCtx: context.Background,
		},
		{
			name: "unrelated context values",
			setupCtx: func() context.Context {
				return context.WithValue(context.Background(), contextKey("other"), "x")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(tt.setupCtx()).Msg("test")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			if tt.wantID == "" {
				assert.NotContains(t, entry, "session_id")
				return
			}
			assert.Equal(t, tt.wantID, entry["session_id"])
		})
	}
}
