package main

import (
	"io"
	"strings"

	"github.com/alexisbeaulieu97/packdeck/internal/config"
	"github.com/alexisbeaulieu97/packdeck/internal/i18n"
	"github.com/alexisbeaulieu97/packdeck/internal/logger"
	"github.com/alexisbeaulieu97/packdeck/internal/theme"
)

// session bundles the services every command builds from the configuration.
type session struct {
	cfg     *config.Config
	log     *logger.Logger
	logFile io.Closer
	themes  *theme.Manager
	catalog *i18n.Catalog
}

// newSession loads the configuration, applies flag overrides and builds the
// logger, theme manager and catalog.
func newSession(flags *rootFlags) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", "reading the configuration file", err,
			"Check the file with 'packdeck --config <path>' or remove it to use defaults.")
	}

	if v := strings.TrimSpace(flags.theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(flags.language); v != "" {
		cfg.Language = v
	}
	if v := strings.TrimSpace(flags.page); v != "" {
		cfg.InitialPage = v
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError("load configuration", "validating flag overrides", err,
			"Run 'packdeck themes' and 'packdeck pages' to see accepted values.")
	}

	s := &session{cfg: cfg, log: logger.Nop()}
	if cfg.Log.File != "" {
		log, closer, err := logger.NewFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, newCommandError("open log file", cfg.Log.File, err,
				"Point log.file at a writable location or remove it.")
		}
		s.log, s.logFile = log, closer
	}

	s.themes = theme.NewManager(theme.WithLogger(s.log))
	if cfg.ThemesDir != "" {
		if err := s.themes.RegisterDir(cfg.ThemesDir); err != nil {
			s.Close()
			return nil, newCommandError("load themes", cfg.ThemesDir, err,
				"Fix or remove the theme file named in the error.")
		}
	}

	s.catalog = i18n.New(cfg.Language, i18n.WithDir(cfg.CatalogDir), i18n.WithLogger(s.log))
	s.log.WithFields(map[string]any{
		"theme":    cfg.Theme,
		"language": s.catalog.Language(),
		"page":     cfg.InitialPage,
	}).Debug("configuration loaded")
	return s, nil
}

// applyTheme activates the configured theme, resolving "auto".
func (s *session) applyTheme() error {
	if err := s.themes.SetTheme(s.cfg.ResolvedTheme()); err != nil {
		return newCommandError("apply theme", s.cfg.Theme, err,
			"Run 'packdeck themes' to list available themes.")
	}
	return nil
}

// resolveAuto reports which built-in theme "auto" stands for.
func (s *session) resolveAuto() string {
	probe := *s.cfg
	probe.Theme = config.ThemeAuto
	return probe.ResolvedTheme()
}

func (s *session) Close() {
	if s.logFile != nil {
		_ = s.logFile.Close()
		s.logFile = nil
	}
}
