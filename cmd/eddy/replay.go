package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"eddy/journal"
)

var replayCmd = &cobra.Command{
	Use:   "replay <journal>",
	Short: "Print a saved diagnostics journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := journal.Load(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, e := range j.Entries() {
			fmt.Fprintf(w, "%s %-8s %s:%d %s: %s\n",
				e.Time.Format(time.RFC3339), e.Severity, e.File, e.Line,
				e.Function, strings.TrimSpace(e.Body))
		}

		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			return nil
		}
		tally := j.Tally()
		labels := make([]string, 0, len(tally))
		for label := range tally {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		fmt.Fprintf(w, "%d entries", j.Len())
		for _, label := range labels {
			fmt.Fprintf(w, ", %d %s", tally[label], strings.ToLower(label))
		}
		fmt.Fprintln(w)
		return nil
	},
}
