package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"drone-dataset/internal/logging"
	"drone-dataset/internal/report"
)

var (
	replayInput     string
	replayPrintOnly bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a stats report file",
	Long:  "replay feeds stats rows from a JSONL report back into GreptimeDB or STDOUT.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		writer, cleanup, err := newStatsWriter(cfg, replayPrintOnly, "")
		if err != nil {
			return err
		}
		defer cleanup()
		n, err := report.ReplayFile(replayInput, writer)
		if err != nil {
			return err
		}
		logging.FromContext(cmd.Context()).Info("replayed stats rows", "count", n, "input", replayInput)
		return nil
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to stats report file")
	replayCmd.Flags().BoolVar(&replayPrintOnly, "print-only", false, "Print stats to STDOUT instead of writing to DB")
	replayCmd.MarkFlagRequired("input")
}
