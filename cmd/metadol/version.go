package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/univrs/metadol/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the metadol version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "metadol %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
		}
	},
}
