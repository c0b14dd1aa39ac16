package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/jobform/internal/core/application"
	"github.com/colonyops/jobform/internal/core/config"
	"github.com/colonyops/jobform/internal/core/styles"
	"github.com/colonyops/jobform/internal/printer"
	"github.com/colonyops/jobform/pkg/tuitest"
)

type runResult struct {
	stdout  string
	printed string
	err     error
}

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

func runApp(t *testing.T, cmd registrar, args ...string) runResult {
	t.Helper()

	var out, errOut, printed bytes.Buffer
	app := &cli.Command{
		Name:           "jobform",
		Writer:         &out,
		ErrWriter:      &errOut,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = cmd.Register(app)

	ctx := printer.WithPrinter(context.Background(), printer.New(&printed))
	err := app.Run(ctx, append([]string{"jobform"}, args...))

	return runResult{
		stdout:  out.String(),
		printed: tuitest.StripANSI(printed.String()),
		err:     err,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.ExitCode())
}

func TestFieldsCmd(t *testing.T) {
	t.Run("default layout", func(t *testing.T) {
		res := runApp(t, NewFieldsCmd(&Flags{}), "fields")
		require.NoError(t, res.err)

		var specs []application.FieldSpec
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &specs))
		require.Len(t, specs, 6)
		assert.Equal(t, application.FieldFullName, specs[0].Name)
		assert.Equal(t, application.FieldPreferredInterviewTime, specs[5].Name)
	})

	t.Run("designer layout", func(t *testing.T) {
		res := runApp(t, NewFieldsCmd(&Flags{}), "fields", "--position", "Designer")
		require.NoError(t, res.err)

		var specs []application.FieldSpec
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &specs))
		assert.Equal(t, application.Layout(application.PositionDesigner), specs)
	})

	t.Run("unknown position", func(t *testing.T) {
		res := runApp(t, NewFieldsCmd(&Flags{}), "fields", "-p", "Intern")
		assert.ErrorContains(t, res.err, `unknown position "Intern"`)
	})
}

const validDraftJSON = `{
  "fullName": "Jane Doe",
  "email": "jane@x.com",
  "phoneNumber": "5551234567",
  "position": "Manager",
  "managementExperience": "5 years",
  "additionalSkills": ["React"],
  "preferredInterviewTime": "2024-01-01T10:00"
}`

func TestValidateCmd(t *testing.T) {
	t.Run("valid draft", func(t *testing.T) {
		path := writeFile(t, "draft.json", validDraftJSON)

		res := runApp(t, NewValidateCmd(&Flags{}), "validate", "-f", path)
		require.NoError(t, res.err)

		var report ValidationReport
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.True(t, report.Valid)
		assert.Empty(t, report.Errors)
		require.NotEmpty(t, report.Summary)
		assert.Equal(t, "Jane Doe", report.Summary[0].Value)
	})

	t.Run("invalid draft exits 1", func(t *testing.T) {
		path := writeFile(t, "draft.json", `{"fullName":"Jane","position":"Designer","relevantExperience":"0"}`)

		res := runApp(t, NewValidateCmd(&Flags{}), "validate", "-f", path)
		requireExitCode(t, res.err, 1)

		var report ValidationReport
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.False(t, report.Valid)
		assert.Equal(t, "Relevant Experience is required and must be greater than 0", report.Errors["relevantExperience"])
		assert.Contains(t, report.Errors, "portfolioUrl")
		assert.NotContains(t, report.Errors, "fullName")
		assert.Empty(t, report.Summary)
	})

	t.Run("structural problems are reported before rules", func(t *testing.T) {
		path := writeFile(t, "draft.json", `{"position":"Intern","additionalSkills":["COBOL"]}`)

		res := runApp(t, NewValidateCmd(&Flags{}), "validate", "-f", path)
		requireExitCode(t, res.err, 1)

		var report ValidationReport
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
		assert.Contains(t, report.Errors, "position")
		assert.Contains(t, report.Errors, "additionalSkills[0]")
		assert.NotContains(t, report.Errors, "fullName")
	})

	t.Run("text format", func(t *testing.T) {
		path := writeFile(t, "draft.json", `{}`)

		res := runApp(t, NewValidateCmd(&Flags{}), "validate", "-f", path, "--format", "text")
		requireExitCode(t, res.err, 1)

		assert.Empty(t, res.stdout)
		assert.Contains(t, res.printed, "fullName: Full Name is required")
		assert.Contains(t, res.printed, "5 error(s) found")
	})

	t.Run("text format valid", func(t *testing.T) {
		path := writeFile(t, "draft.json", validDraftJSON)

		res := runApp(t, NewValidateCmd(&Flags{}), "validate", "-f", path, "--format", "text")
		require.NoError(t, res.err)
		assert.Contains(t, res.printed, "Application is valid")
		assert.Contains(t, res.printed, "Management Experience: 5 years")
	})

	t.Run("strict rejects unknown keys", func(t *testing.T) {
		path := writeFile(t, "draft.json", `{"nickname":"JD"}`)

		res := runApp(t, NewValidateCmd(&Flags{}), "validate", "-f", path, "--strict")
		assert.ErrorContains(t, res.err, "decode JSON")
	})
}

func TestConfigValidateCmd(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		flags := &Flags{ConfigPath: filepath.Join(t.TempDir(), "none.yaml")}

		res := runApp(t, NewConfigValidateCmd(flags), "config", "validate")
		require.NoError(t, res.err)
		assert.Contains(t, res.printed, "Configuration is valid")
	})

	t.Run("invalid config text", func(t *testing.T) {
		flags := &Flags{ConfigPath: writeFile(t, "config.yaml", "theme: neon\nprefill:\n  position: Intern\n")}

		res := runApp(t, NewConfigValidateCmd(flags), "config", "validate")
		requireExitCode(t, res.err, 1)
		assert.Contains(t, res.printed, "theme: unknown theme")
		assert.Contains(t, res.printed, "prefill.position")
		assert.Contains(t, res.printed, "2 error(s) found")
	})

	t.Run("invalid config json", func(t *testing.T) {
		flags := &Flags{ConfigPath: writeFile(t, "config.yaml", "summary:\n  word_wrap: 3\n")}

		res := runApp(t, NewConfigValidateCmd(flags), "config", "validate", "--format", "json")
		requireExitCode(t, res.err, 1)

		var out struct {
			Valid  bool          `json:"valid"`
			Errors []ConfigIssue `json:"errors"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
		assert.False(t, out.Valid)
		require.Len(t, out.Errors, 1)
		assert.Equal(t, "summary.word_wrap", out.Errors[0].Field)
	})

	t.Run("unparseable file", func(t *testing.T) {
		flags := &Flags{ConfigPath: writeFile(t, "config.yaml", "theme: [")}

		res := runApp(t, NewConfigValidateCmd(flags), "config", "validate")
		requireExitCode(t, res.err, 1)
		assert.Contains(t, res.printed, "file: parse config file")
	})
}

func TestApplyCmd_Seed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Prefill = application.Draft{FullName: "Jane", Position: application.PositionDeveloper}

	t.Run("prefill only", func(t *testing.T) {
		cmd := NewApplyCmd(&Flags{})
		seed, err := cmd.seed(&cfg)
		require.NoError(t, err)
		assert.Equal(t, "Jane", seed.FullName)
		assert.Equal(t, application.PositionDeveloper, seed.Position)
	})

	t.Run("position flag wins", func(t *testing.T) {
		cmd := NewApplyCmd(&Flags{})
		cmd.position = "Designer"
		seed, err := cmd.seed(&cfg)
		require.NoError(t, err)
		assert.Equal(t, application.PositionDesigner, seed.Position)
		assert.Equal(t, application.PositionDeveloper, cfg.Prefill.Position, "config is not mutated")
	})

	t.Run("unknown position", func(t *testing.T) {
		cmd := NewApplyCmd(&Flags{})
		cmd.position = "Intern"
		_, err := cmd.seed(&cfg)
		assert.Error(t, err)
	})
}

func TestFlags_LoadConfig(t *testing.T) {
	t.Cleanup(func() {
		palette, _ := styles.GetPalette(styles.DefaultTheme)
		styles.SetTheme(palette)
	})

	flags := &Flags{ConfigPath: writeFile(t, "config.yaml", "theme: gruvbox\ntitle: Careers\n")}

	cfg, err := flags.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Careers", cfg.Title)

	again, err := flags.LoadConfig()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
	assert.Equal(t, "gruvbox", cfg.Theme)

	gruvbox, _ := styles.GetPalette("gruvbox")
	assert.Equal(t, gruvbox, styles.CurrentPalette)

	bad := &Flags{ConfigPath: writeFile(t, "config.yaml", "theme: neon\n")}
	_, err = bad.LoadConfig()
	assert.ErrorContains(t, err, "load config")
}

func TestNewApp(t *testing.T) {
	app := NewApp(&Flags{}, "v1.0.0")

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"apply", "validate", "fields", "config"}, names)
	assert.Equal(t, "v1.0.0", app.Version)

	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := app.Run(context.Background(), []string{"jobform", "bogus"})
	assert.ErrorContains(t, err, `unknown command "bogus"`)
}
