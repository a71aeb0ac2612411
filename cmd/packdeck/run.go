package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/packdeck/internal/packaging"
	"github.com/alexisbeaulieu97/packdeck/internal/project"
	"github.com/alexisbeaulieu97/packdeck/internal/state"
	"github.com/alexisbeaulieu97/packdeck/internal/tui"
	"github.com/alexisbeaulieu97/packdeck/internal/tui/pages"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runUI(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal() {
		return newCommandError("start the interface", "checking the terminal", errNotTerminal,
			"Run packdeck from an interactive terminal.")
	}

	s, err := newSession(flags)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.applyTheme(); err != nil {
		return err
	}

	zones := zone.New()
	defer zones.Close()

	app, err := newApp(s, zones)
	if err != nil {
		return err
	}

	s.log.Info("interface started")
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := program.Run()
	if done, ok := final.(tui.App); ok {
		done.Close()
	} else {
		app.Close()
	}
	if err != nil {
		s.log.Error(err, "interface failed")
		return fmt.Errorf("run interface: %w", err)
	}
	s.log.Info("interface closed")
	return nil
}

func newApp(s *session, zones *zone.Manager) (tui.App, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	prefs := pages.DefaultPreferences(home, os.TempDir())
	prefs.Theme = s.cfg.Theme
	prefs.Language = s.catalog.Language()

	env := &pages.Env{
		Themes:   s.themes,
		Store:    state.New(),
		Catalog:  s.catalog,
		Settings: project.DefaultSettings(),
		Prefs:    prefs,
		Zones:    zones,
		Log:      s.log,
		Version:  version,
	}

	app, err := tui.New(tui.Options{
		Env:          env,
		InitialPage:  s.cfg.InitialPage,
		SidebarWidth: s.cfg.SidebarWidth,
		Simulator: packaging.New(
			packaging.WithStepDelay(s.cfg.Packaging.StepDelay),
			packaging.WithLogger(s.log),
		),
		ResolveAuto: s.resolveAuto,
	})
	if err != nil {
		return tui.App{}, newCommandError("start the interface", "showing page "+s.cfg.InitialPage, err,
			"Run 'packdeck pages' to list page names.")
	}
	return app, nil
}
