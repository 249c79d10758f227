package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"codesnap/pkg/config"
	"codesnap/pkg/highlight"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "codesnap %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			return nil
		},
	}
}

func newThemesCmd() *cobra.Command {
	var folders []string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available syntax themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := highlight.NewHighlighter(folders...)
			if err != nil {
				return err
			}
			names := h.ThemeNames()
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&folders, "themes-folder", nil, "Extra folder of chroma XML themes (repeatable)")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the preset backgrounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.PresetNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default snapshot configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
