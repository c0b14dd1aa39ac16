package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/jobform/internal/core/application"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), *cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "Job Application Form", cfg.Title)
		assert.Equal(t, 60, cfg.Summary.WordWrap)
	})
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
title: Careers at Example
summary:
  word_wrap: 80
prefill:
  fullName: Jane Doe
  position: Designer
  additionalSkills: [CSS, React]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, "Careers at Example", cfg.Title)
	assert.Equal(t, "Application Summary", cfg.Summary.Title, "unset values fall back to defaults")
	assert.Equal(t, 80, cfg.Summary.WordWrap)
	assert.Equal(t, "Jane Doe", cfg.Prefill.FullName)
	assert.Equal(t, application.PositionDesigner, cfg.Prefill.Position)
	assert.Equal(t, []string{"CSS", "React"}, cfg.Prefill.AdditionalSkills)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "theme: [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
		wantErr   string
	}{
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.Theme = "solarized-neon" },
			wantField: "theme",
			wantErr:   "unknown theme",
		},
		{
			name:      "word wrap too small",
			mutate:    func(c *Config) { c.Summary.WordWrap = 5 },
			wantField: "summary.word_wrap",
			wantErr:   "at least 20",
		},
		{
			name:      "prefill with unknown skill",
			mutate:    func(c *Config) { c.Prefill.AdditionalSkills = []string{"COBOL"} },
			wantField: "prefill.additionalSkills[0]",
			wantErr:   "unknown skill",
		},
		{
			name:      "prefill with unknown position",
			mutate:    func(c *Config) { c.Prefill.Position = "Intern" },
			wantField: "prefill.position",
			wantErr:   "unknown position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, cfg.Validate(), &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_IncompletePrefillIsAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prefill = application.Draft{Email: "not-an-email"}
	assert.NoError(t, cfg.Validate(), "prefill only needs to be structurally sound")
}
