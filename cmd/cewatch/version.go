package main

import (
	"fmt"

	"github.com/justinpbarnett/cewatch/internal/ui/panels"
	"github.com/justinpbarnett/cewatch/internal/update"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cewatch version %s\n", panels.Version)
			if update.IsDevBuild(panels.Version) {
				fmt.Fprintln(out, "Development build, update check skipped.")
				return nil
			}
			rel, err := update.New(update.Repo).Check(cmd.Context(), panels.Version)
			if err != nil {
				fmt.Fprintf(out, "Update check failed: %v\n", err)
				return nil
			}
			if rel != nil {
				fmt.Fprintf(out, "Update available: v%s. Run \"cewatch update\" to install.\n", rel.Version)
				return nil
			}
			fmt.Fprintln(out, "You are up to date.")
			return nil
		},
	}
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Replace this binary with the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rel, err := update.New(update.Repo).Apply(cmd.Context(), panels.Version)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated to v%s\n", rel.Version)
			return nil
		},
	}
}
