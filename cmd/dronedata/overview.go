package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"drone-dataset/internal/annotation"
	"drone-dataset/internal/inspect"
)

var overviewTUI bool

var overviewCmd = &cobra.Command{
	Use:   "overview <annotation dir>",
	Short: "Count frames and empty frames per annotation file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := annotation.Overview(args[0])
		if err != nil {
			return err
		}
		if overviewTUI {
			return inspect.Run(args[0], stats)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "FILE\tFRAMES\tEMPTY\n")
		for _, s := range stats {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", s.File, s.Frames, s.Empty)
		}
		return tw.Flush()
	},
}

func init() {
	overviewCmd.Flags().BoolVar(&overviewTUI, "tui", false, "Browse the overview in an interactive table")
}
