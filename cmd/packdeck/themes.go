package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type themesOptions struct {
	jsonOutput bool
}

type themeEntry struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Active bool   `json:"active"`
}

func newThemesCmd(flags *rootFlags) *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes and those found in the themes directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemes(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runThemes(cmd *cobra.Command, flags *rootFlags, opts *themesOptions) error {
	s, err := newSession(flags)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.applyTheme(); err != nil {
		return err
	}

	entries := make([]themeEntry, 0)
	for _, key := range s.themes.Names() {
		t, _ := s.themes.Get(key)
		entries = append(entries, themeEntry{
			Key:    key,
			Name:   t.Name(),
			Kind:   t.Kind().String(),
			Active: key == s.themes.ActiveName(),
		})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "KEY\tNAME\tKIND\tACTIVE")
	for _, e := range entries {
		active := ""
		if e.Active {
			active = "*"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", e.Key, e.Name, e.Kind, active)
	}
	return writer.Flush()
}
