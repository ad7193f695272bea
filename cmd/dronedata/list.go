package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"drone-dataset/internal/media"
)

var listImages bool

var listCmd = &cobra.Command{
	Use:   "list <dir>",
	Short: "List the videos (or images) of a dataset directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := media.ListVideos
		if listImages {
			list = media.ListImages
		}
		names, err := list(args[0])
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listImages, "images", false, "List image paths instead of video names")
}
