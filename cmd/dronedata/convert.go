package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"drone-dataset/internal/annotation"
	"drone-dataset/internal/logging"
	"drone-dataset/internal/media"
	"drone-dataset/internal/report"
)

var (
	convOutDir      string
	convWidth       int
	convHeight      int
	convVideoDir    string
	convAnnotations string
	convPrintOnly   bool
	convReportFile  string
)

var convertCmd = &cobra.Command{
	Use:   "convert [annotation files...]",
	Short: "Convert video annotations to per-frame YOLO label files",
	Long: "convert reads annotation files with one 'frame count [x y w h class]*' line per frame " +
		"and writes one normalized YOLO label file per frame. With --videos, the annotation file " +
		"of every video in that directory is converted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logging.FromContext(ctx)

		width, height := cfg.Frame.Width, cfg.Frame.Height
		if cmd.Flags().Changed("width") {
			width = convWidth
		}
		if cmd.Flags().Changed("height") {
			height = convHeight
		}
		outDir := convOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}

		inputs := args
		if convVideoDir != "" {
			videos, err := media.ListVideos(convVideoDir)
			if err != nil {
				return err
			}
			annDir := convAnnotations
			if annDir == "" {
				annDir = convVideoDir
			}
			for _, v := range videos {
				inputs = append(inputs, annotation.AnnotationPath(annDir, v))
			}
		}
		if len(inputs) == 0 {
			return fmt.Errorf("no annotation files given")
		}

		writer, cleanup, err := newStatsWriter(cfg, convPrintOnly, reportFile(convReportFile))
		if err != nil {
			return err
		}
		defer cleanup()

		conv := annotation.NewConverter(width, height)
		conv.Mapper = cfg.ClassMap()
		run := report.NewRun(cfg.Report.Dataset)
		for _, in := range inputs {
			res, err := conv.ConvertFile(ctx, in, outDir)
			if err != nil {
				return fmt.Errorf("convert %s: %w", in, err)
			}
			row := run.Row(report.StageConvert, media.Stem(in)+".txt")
			row.Frames = res.Frames
			row.Boxes = res.Objects
			if err := writer.Write(row); err != nil {
				log.Warn("stats write failed", "file", in, "err", err)
			}
		}
		return nil
	},
}

// reportFile falls back to the configured JSONL report path.
func reportFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Report.File
}

func init() {
	convertCmd.Flags().StringVar(&convOutDir, "out", "", "Output directory for label files (config output.dir when empty)")
	convertCmd.Flags().IntVar(&convWidth, "width", 1920, "Frame width in pixels")
	convertCmd.Flags().IntVar(&convHeight, "height", 1080, "Frame height in pixels")
	convertCmd.Flags().StringVar(&convVideoDir, "videos", "", "Convert the annotation file of every video in this directory")
	convertCmd.Flags().StringVar(&convAnnotations, "annotations", "", "Directory holding the per-video annotation files (defaults to --videos)")
	convertCmd.Flags().BoolVar(&convPrintOnly, "print-only", false, "Print stats to STDOUT instead of writing to DB")
	convertCmd.Flags().StringVar(&convReportFile, "report", "", "Path to export per-file stats (JSONL)")
}
