package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

const oceanTOML = `
name = "Ocean"
base = "dark"

[colors]
accent = "#00aaff"
brand = "#112233"

[fonts.heading]
family = "Fira Sans"
size = 14
`

func TestLoadTOMLMergesOverBase(t *testing.T) {
	t.Parallel()

	th, err := LoadTOML("ocean.toml", []byte(oceanTOML))
	require.NoError(t, err)

	assert.Equal(t, "Ocean", th.Name())
	assert.Equal(t, KindCustom, th.Kind())
	assert.Equal(t, lipgloss.Color("#00aaff"), th.Color(Accent))
	assert.Equal(t, lipgloss.Color("#112233"), th.Color("brand"))
	assert.Equal(t, lipgloss.Color("#2b2b2b"), th.Color(BackgroundPrimary))
	assert.Equal(t, Font{Family: "Fira Sans", Size: 14, Weight: WeightBold}, th.Font(FontHeading))
	assert.Equal(t, Font{Family: "Consolas", Size: 9}, th.Font(FontCode))
}

func TestLoadTOMLDefaultsToLightBase(t *testing.T) {
	t.Parallel()

	th, err := LoadTOML("mint.toml", []byte(`name = "Mint"`))
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#ffffff"), th.Color(BackgroundPrimary))
}

func TestLoadTOMLRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		data  string
		field string
	}{
		{name: "missing name", data: `base = "light"`, field: "name"},
		{name: "bad base", data: "name = \"x\"\nbase = \"sepia\"", field: "base"},
		{name: "bad hex", data: "name = \"x\"\n[colors]\naccent = \"blue\"", field: "colors.accent"},
		{name: "bad weight", data: "name = \"x\"\n[fonts.small]\nweight = \"heavy\"", field: "fonts.small.weight"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadTOML("bad.toml", []byte(tc.data))
			var valErr *packdeckerrors.ValidationError
			require.True(t, errors.As(err, &valErr), "got %v", err)
			assert.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestLoadTOMLSyntaxErrorCarriesLine(t *testing.T) {
	t.Parallel()

	_, err := LoadTOML("broken.toml", []byte("name = \"x\"\n[colors\n"))
	var parseErr *packdeckerrors.ParseError
	require.True(t, errors.As(err, &parseErr), "got %v", err)
	assert.Equal(t, "broken.toml", parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestLoadDirRegistersByFileName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ocean.toml"), []byte(oceanTOML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	m := NewManager()
	require.NoError(t, m.RegisterDir(dir))
	assert.Equal(t, []string{Dark, Light, "ocean"}, m.Names())

	require.NoError(t, m.SetTheme("ocean"))
	assert.Equal(t, lipgloss.Color("#00aaff"), m.Color(Accent))
}

func TestLoadDirMissingIsEmpty(t *testing.T) {
	t.Parallel()

	loaded, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
