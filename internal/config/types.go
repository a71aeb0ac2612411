package config

import "time"

// Theme selections with special meaning.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Config represents the user configuration file.
type Config struct {
	Theme        string          `yaml:"theme" validate:"required,theme_name"`
	Language     string          `yaml:"language" validate:"required,language_code"`
	InitialPage  string          `yaml:"initial_page" validate:"required,page_name"`
	SidebarWidth int             `yaml:"sidebar_width" validate:"min=16,max=60"`
	ThemesDir    string          `yaml:"themes_dir"`
	CatalogDir   string          `yaml:"catalog_dir"`
	Log          LogConfig       `yaml:"log"`
	Packaging    PackagingConfig `yaml:"packaging"`
}

// LogConfig controls the log file. An empty File discards log output.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	File  string `yaml:"file"`
}

// PackagingConfig tunes the simulated packaging run.
type PackagingConfig struct {
	StepDelay time.Duration `yaml:"step_delay"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:        ThemeLight,
		Language:     "en",
		InitialPage:  "home",
		SidebarWidth: 24,
		Log: LogConfig{
			Level: "info",
		},
		Packaging: PackagingConfig{
			StepDelay: time.Second,
		},
	}
}
