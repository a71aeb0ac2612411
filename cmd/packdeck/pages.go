package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/packdeck/internal/tui/pages"
)

func newPagesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pages",
		Short: "List the pages accepted by --page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "KEY\tNAME\tTITLE")
			for i, spec := range pages.Registry() {
				fmt.Fprintf(writer, "%d\t%s\t%s\n", i+1, spec.Name, s.catalog.Text(spec.LabelKey))
			}
			return writer.Flush()
		},
	}

	return cmd
}
