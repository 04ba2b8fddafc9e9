package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eddy/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show eddy build information",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "eddy %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(w, "commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(w, "built:  %s\n", version.BuildDate)
		}
	},
}
