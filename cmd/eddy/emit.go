package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"eddy/journal"
	"eddy/msg"
	"eddy/par"
)

var (
	emitWorkers   int
	emitCount     int
	emitMaxErrors int
	emitSeverity  string
	emitMessage   string
	emitJournal   string
)

func init() {
	emitCmd.Flags().IntVar(&emitWorkers, "workers", 1, "concurrent emitters")
	emitCmd.Flags().IntVar(&emitCount, "count", 1, "messages per worker")
	emitCmd.Flags().IntVar(&emitMaxErrors, "max-errors", 0, "abort after this many messages (0 = never)")
	emitCmd.Flags().StringVar(&emitSeverity, "severity", "warning", "channel severity (info|warning|serious|fatal)")
	emitCmd.Flags().StringVar(&emitMessage, "message", "smoke test message", "message body to append")
	emitCmd.Flags().StringVar(&emitJournal, "journal", "", "record finalized messages to this journal file")
}

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Drive a diagnostic channel for smoke tests",
	Long: `emit constructs a throwaway channel and pushes messages through it,
optionally from several goroutines at once. A fatal severity or a
reached --max-errors threshold aborts the run exactly as it would in a
real deployment; with --journal every finalized message survives the
abort on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sev, err := msg.ParseSeverity(emitSeverity)
		if err != nil {
			return err
		}
		if emitWorkers < 1 || emitCount < 1 {
			return fmt.Errorf("workers and count must be >= 1")
		}

		ch := msg.New("Smoke "+sev.String(), sev, emitMaxErrors)
		ch.SetOutput(cmd.OutOrStdout())
		if emitJournal != "" {
			ch.SetRecorder(autosave{j: journal.New(), path: emitJournal})
		}

		g := new(errgroup.Group)
		for w := 0; w < emitWorkers; w++ {
			worker := w
			g.Go(func() error {
				for i := 0; i < emitCount; i++ {
					ch.Here().Printf("%s (worker %d, message %d)", emitMessage, worker, i).Done()
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		// one summary per cooperative run, not one per rank
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet && par.World().IsMaster() {
			fmt.Fprintf(cmd.OutOrStdout(), "emitted %d messages\n", ch.ErrorCount())
		}
		return nil
	},
}

// autosave persists the journal after every record, so entries written
// before a threshold or fatal abort are not lost.
type autosave struct {
	j    *journal.Journal
	path string
}

func (a autosave) Record(sev msg.Severity, title, function, file string, line int, body string) {
	a.j.Record(sev, title, function, file, line, body)
	if err := a.j.Save(a.path); err != nil {
		msg.SeriousErrorIn().Printf("saving journal %s: %v", a.path, err).Done()
	}
}
