package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "jobform.log")

	log, closer, err := New("info", file)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("field", "email").Msg("shown")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"shown"`)
	assert.Contains(t, string(data), `"field":"email"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_Appends(t *testing.T) {
	file := filepath.Join(t.TempDir(), "jobform.log")

	for _, msg := range []string{"first", "second"} {
		log, closer, err := New("info", file)
		require.NoError(t, err)
		log.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestNew_EmptyFileDiscards(t *testing.T) {
	log, closer, err := New("debug", "")
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}
