package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

const oceanTheme = `
name = "Ocean"
base = "dark"

[colors]
accent = "#1e90ff"
`

// writeConfig creates a config file with a themes directory holding one
// custom theme and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	themes := filepath.Join(dir, "themes")
	require.NoError(t, os.MkdirAll(themes, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(themes, "ocean.toml"), []byte(oceanTheme), 0o644))

	path := filepath.Join(dir, "config.yaml")
	content := "themes_dir: " + themes + "\n" + body
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestThemesCommandListsCustomThemes(t *testing.T) {
	path := writeConfig(t, "theme: ocean\n")

	output, err := execute(t, "themes", "--config", path)
	require.NoError(t, err)
	require.Contains(t, output, "KEY")
	require.Contains(t, output, "light")
	require.Contains(t, output, "Ocean")
	require.Contains(t, output, "custom")
}

func TestThemesCommandJSON(t *testing.T) {
	path := writeConfig(t, "")

	output, err := execute(t, "themes", "--config", path, "--theme", "dark", "--json")
	require.NoError(t, err)

	var entries []themeEntry
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 3)

	active := map[string]bool{}
	for _, e := range entries {
		active[e.Key] = e.Active
	}
	require.True(t, active["dark"])
	require.False(t, active["light"])
	require.False(t, active["ocean"])
}

func TestThemesCommandUnknownTheme(t *testing.T) {
	path := writeConfig(t, "theme: sunset\n")

	_, err := execute(t, "themes", "--config", path)
	require.Error(t, err)

	var notFound *packdeckerrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "sunset", notFound.Name)
}

func TestPagesCommand(t *testing.T) {
	path := writeConfig(t, "")

	output, err := execute(t, "pages", "--config", path)
	require.NoError(t, err)
	require.Contains(t, output, "file_settings")
	require.Contains(t, output, "File Settings")
	require.Contains(t, output, "global_settings")

	output, err = execute(t, "pages", "--config", path, "--lang", "zh-TW")
	require.NoError(t, err)
	require.Contains(t, output, "首頁")
}

func TestInvalidOverrideIsRejected(t *testing.T) {
	path := writeConfig(t, "")

	_, err := execute(t, "pages", "--config", path, "--page", "Not A Page")
	require.Error(t, err)

	var validation *packdeckerrors.ValidationError
	require.True(t, errors.As(err, &validation))
	require.Equal(t, "initial_page", validation.Field)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := execute(t, "pages", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func() bool { return false }

	_, err := execute(t, "--config", writeConfig(t, ""))
	require.Error(t, err)
	require.ErrorIs(t, err, errNotTerminal)
}

func TestNewAppShowsConfiguredPage(t *testing.T) {
	s, err := newSession(&rootFlags{configPath: writeConfig(t, "initial_page: statistics\n")})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.applyTheme())

	app, err := newApp(s, nil)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	require.Equal(t, "statistics", app.CurrentPage())
}

func TestNewAppUnknownPage(t *testing.T) {
	s, err := newSession(&rootFlags{configPath: writeConfig(t, "initial_page: nowhere\n")})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	_, err = newApp(s, nil)
	require.Error(t, err)
	var notFound *packdeckerrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestLogFileReceivesEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "packdeck.log")
	path := writeConfig(t, "log:\n  file: "+logPath+"\n")

	_, err := execute(t, "pages", "--config", path, "--verbose")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "configuration loaded")
}
