package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

type tomlTheme struct {
	Name   string              `toml:"name"`
	Base   string              `toml:"base"`
	Colors map[string]string   `toml:"colors"`
	Fonts  map[string]tomlFont `toml:"fonts"`
}

type tomlFont struct {
	Family string `toml:"family"`
	Size   int    `toml:"size"`
	Weight string `toml:"weight"`
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadTOML parses a custom theme. Keys the file leaves out are taken from
// the base palette ("light" unless base = "dark").
func LoadTOML(path string, data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return Theme{}, &packdeckerrors.ParseError{Path: path, Line: perr.Position.Line, Message: perr.Message, Err: err}
		}
		return Theme{}, packdeckerrors.NewParseError(path, 0, err)
	}

	if strings.TrimSpace(tt.Name) == "" {
		return Theme{}, &packdeckerrors.ValidationError{Field: "name", Message: "theme name is required"}
	}

	baseKind := KindLight
	switch strings.ToLower(tt.Base) {
	case "", Light:
	case Dark:
		baseKind = KindDark
	default:
		return Theme{}, &packdeckerrors.ValidationError{Field: "base", Message: fmt.Sprintf("unknown base palette %q", tt.Base)}
	}

	colors := defaultColors(baseKind)
	for key, value := range tt.Colors {
		if !hexColorRegex.MatchString(value) {
			return Theme{}, &packdeckerrors.ValidationError{
				Field:   "colors." + key,
				Message: fmt.Sprintf("invalid hex color %q", value),
			}
		}
		colors[ColorKey(key)] = lipgloss.Color(value)
	}

	fonts := defaultFonts()
	for key, tf := range tt.Fonts {
		font, ok := fonts[FontKey(key)]
		if !ok {
			font = FallbackFont
		}
		if tf.Family != "" {
			font.Family = tf.Family
		}
		if tf.Size < 0 {
			return Theme{}, &packdeckerrors.ValidationError{Field: "fonts." + key + ".size", Message: "size must be positive"}
		}
		if tf.Size > 0 {
			font.Size = tf.Size
		}
		switch strings.ToLower(tf.Weight) {
		case "":
		case "normal":
			font.Weight = WeightNormal
		case "bold":
			font.Weight = WeightBold
		default:
			return Theme{}, &packdeckerrors.ValidationError{
				Field:   "fonts." + key + ".weight",
				Message: fmt.Sprintf("unknown weight %q", tf.Weight),
			}
		}
		fonts[FontKey(key)] = font
	}

	return New(tt.Name, KindCustom, colors, fonts), nil
}

// LoadedTheme pairs a parsed theme with the key it registers under, which is
// the file name without its extension.
type LoadedTheme struct {
	Key   string
	Theme Theme
}

// LoadDir parses every *.toml file in dir in name order. A missing directory
// yields no themes. The first bad file aborts the load.
func LoadDir(dir string) ([]LoadedTheme, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read theme directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	loaded := make([]LoadedTheme, 0, len(files))
	for _, name := range files {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read theme %s: %w", path, err)
		}
		t, err := LoadTOML(path, data)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, LoadedTheme{Key: strings.TrimSuffix(name, ".toml"), Theme: t})
	}
	return loaded, nil
}

// RegisterDir loads dir and registers each theme on m.
func (m *Manager) RegisterDir(dir string) error {
	loaded, err := LoadDir(dir)
	if err != nil {
		return err
	}
	for _, lt := range loaded {
		m.RegisterTheme(lt.Key, lt.Theme)
		m.log.WithFields(map[string]any{"theme": lt.Key, "dir": dir}).Debug("custom theme registered")
	}
	return nil
}
