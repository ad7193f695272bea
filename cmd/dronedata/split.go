package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"drone-dataset/internal/logging"
	"drone-dataset/internal/quadrant"
	"drone-dataset/internal/report"
)

var (
	splitOutDir     string
	splitThreshold  float64
	splitPrintOnly  bool
	splitReportFile string
)

var splitCmd = &cobra.Command{
	Use:   "split <label file or dir>...",
	Short: "Split YOLO label files into four overlapping quadrant label sets",
	Long: "split writes, for every label file, four label files (top_left, top_right, bottom_left, " +
		"bottom_right) re-normalized to the quadrant crops. A box is kept in a quadrant when it lies " +
		"fully inside it after clipping and keeps more than --threshold of its area.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logging.FromContext(ctx)

		s := cfg.Splitter()
		if cmd.Flags().Changed("threshold") {
			s.Threshold = splitThreshold
		}
		if s.Threshold < 0 || s.Threshold >= 1 {
			return fmt.Errorf("threshold must be in [0, 1), got %v", s.Threshold)
		}
		outDir := splitOutDir
		if outDir == "" {
			outDir = filepath.Join(cfg.Output.Dir, "quadrants")
		}

		writer, cleanup, err := newStatsWriter(cfg, splitPrintOnly, reportFile(splitReportFile))
		if err != nil {
			return err
		}
		defer cleanup()

		var paths []string
		for _, path := range args {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				paths = append(paths, path)
				continue
			}
			files, err := quadrant.LabelFiles(path)
			if err != nil {
				return err
			}
			paths = append(paths, files...)
		}
		results, err := s.SplitFiles(ctx, paths, outDir)
		if err != nil {
			return err
		}

		run := report.NewRun(cfg.Report.Dataset)
		rows := make([]report.StatsRow, 0, len(results))
		for _, r := range results {
			row := run.Row(report.StageSplit, r.File)
			row.Frames = 1
			row.Boxes = r.Boxes
			row.SetCounts(r.Counts)
			rows = append(rows, row)
		}
		if err := report.WriteAll(writer, rows); err != nil {
			log.Warn("stats write failed", "err", err)
		}
		return nil
	},
}

func init() {
	splitCmd.Flags().StringVar(&splitOutDir, "out", "", "Output directory for quadrant label files")
	splitCmd.Flags().Float64Var(&splitThreshold, "threshold", quadrant.DefaultThreshold, "Minimum retained area fraction (exclusive)")
	splitCmd.Flags().BoolVar(&splitPrintOnly, "print-only", false, "Print stats to STDOUT instead of writing to DB")
	splitCmd.Flags().StringVar(&splitReportFile, "report", "", "Path to export per-file stats (JSONL)")
}
