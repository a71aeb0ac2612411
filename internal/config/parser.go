package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	packdeckerrors "github.com/alexisbeaulieu97/packdeck/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// hasDarkBackground is replaced in tests.
var hasDarkBackground = termenv.HasDarkBackground

// DefaultPath returns the configuration file location under the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "packdeck", "config.yaml"), nil
}

// Load reads path over the defaults. An empty path means DefaultPath, which
// may be absent; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	cfg, err := ParseConfig(path)
	if err != nil {
		var parseErr *packdeckerrors.ParseError
		if !explicit && errors.As(err, &parseErr) && errors.Is(parseErr.Err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, packdeckerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, packdeckerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolvedTheme maps ThemeAuto to light or dark from the terminal
// background. Other names are returned unchanged.
func (c *Config) ResolvedTheme() string {
	if c.Theme != ThemeAuto {
		return c.Theme
	}
	if hasDarkBackground() {
		return ThemeDark
	}
	return ThemeLight
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
