package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"eddy/config"
	"eddy/msg"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)

	severityStyles = map[msg.Severity]lipgloss.Style{
		msg.SevInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		msg.SevWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		msg.SevSerious: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		msg.SevFatal:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

var checkCmd = &cobra.Command{
	Use:   "check <config.toml>",
	Short: "Validate a diagnostics configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		channels, err := cfg.Build()
		if err != nil {
			return err
		}

		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			return nil
		}
		renderSummary(cmd.OutOrStdout(), cfg, channels, colorEnabled(cmd))
		return nil
	},
}

func renderSummary(w io.Writer, cfg *config.Config, channels map[string]*msg.Channel, color bool) {
	heading := "diagnostic channels"
	if color {
		heading = summaryTitleStyle.Render(heading)
	}
	fmt.Fprintf(w, "%s\n", heading)
	fmt.Fprintf(w, "debug level: %d\n", cfg.Level)

	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ch := channels[name]
		// pad before styling so ANSI codes do not break alignment
		label := fmt.Sprintf("%-8s", ch.Severity())
		if color {
			label = severityStyles[ch.Severity()].Render(label)
		}
		limit := "unlimited"
		if ch.MaxErrors() > 0 {
			limit = strconv.Itoa(ch.MaxErrors())
		}
		fmt.Fprintf(w, "  %-12s %-18s %s max errors: %s\n", name, ch.Title(), label, limit)
	}
}
