package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full configuration is parsed",
			contents: `theme: dark
language: zh-TW
initial_page: statistics
sidebar_width: 30
themes_dir: /tmp/themes
log:
  level: debug
  file: /tmp/packdeck.log
packaging:
  step_delay: 250ms
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, ThemeDark, cfg.Theme)
				require.Equal(t, "zh-TW", cfg.Language)
				require.Equal(t, "statistics", cfg.InitialPage)
				require.Equal(t, 30, cfg.SidebarWidth)
				require.Equal(t, "/tmp/themes", cfg.ThemesDir)
				require.Equal(t, "debug", cfg.Log.Level)
				require.Equal(t, 250*time.Millisecond, cfg.Packaging.StepDelay)
			},
		},
		{
			name:     "partial configuration keeps defaults",
			contents: "theme: auto\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, ThemeAuto, cfg.Theme)
				require.Equal(t, "en", cfg.Language)
				require.Equal(t, "home", cfg.InitialPage)
				require.Equal(t, 24, cfg.SidebarWidth)
				require.Equal(t, time.Second, cfg.Packaging.StepDelay)
			},
		},
		{
			name:     "invalid yaml reports line",
			contents: "theme: dark\nlanguage: [en\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *packdeckerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "bad log level",
			contents: "log:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *packdeckerrors.ValidationError
				require.True(t, errors.As(err, &valErr))
				require.Equal(t, "log.level", valErr.Field)
			},
		},
		{
			name:     "sidebar too narrow",
			contents: "sidebar_width: 4\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *packdeckerrors.ValidationError
				require.True(t, errors.As(err, &valErr))
				require.Equal(t, "sidebar_width", valErr.Field)
			},
		},
		{
			name:     "bad page name",
			contents: "initial_page: Home Page\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *packdeckerrors.ValidationError
				require.True(t, errors.As(err, &valErr))
				require.Equal(t, "initial_page", valErr.Field)
			},
		},
		{
			name:     "negative delay",
			contents: "packaging:\n  step_delay: -1s\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var valErr *packdeckerrors.ValidationError
				require.True(t, errors.As(err, &valErr))
				require.Equal(t, "packaging.step_delay", valErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *packdeckerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDefaultPathMissingUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadDefaultPathReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	path, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ThemeDark, cfg.Theme)
}

func TestResolvedTheme(t *testing.T) {
	original := hasDarkBackground
	t.Cleanup(func() { hasDarkBackground = original })

	cfg := Default()
	require.Equal(t, ThemeLight, cfg.ResolvedTheme())

	cfg.Theme = ThemeAuto
	hasDarkBackground = func() bool { return true }
	require.Equal(t, ThemeDark, cfg.ResolvedTheme())

	hasDarkBackground = func() bool { return false }
	require.Equal(t, ThemeLight, cfg.ResolvedTheme())

	cfg.Theme = "ocean"
	require.Equal(t, "ocean", cfg.ResolvedTheme())
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}
