package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	theme      string
	language   string
	page       string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "packdeck",
		Short:         "packdeck turns Python scripts into standalone executables",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme to start with (light, dark, auto or a custom theme)")
	cmd.PersistentFlags().StringVar(&flags.language, "lang", "", "Interface language")
	cmd.PersistentFlags().StringVar(&flags.page, "page", "", "Page shown at startup")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.SetVersionTemplate(buildInfo())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newPagesCmd(flags))

	return cmd
}
