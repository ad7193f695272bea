package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drone-dataset/internal/config"
	"drone-dataset/internal/logging"
)

var (
	configPath string
	schemaPath string
	logLevel   string

	// cfg is loaded before every subcommand runs.
	cfg *config.DatasetConfig
)

var rootCmd = &cobra.Command{
	Use:   "dronedata",
	Short: "Drone detection dataset toolkit",
	Long:  "dronedata prepares drone-detection training data: annotation conversion, quadrant label splitting and dataset overviews.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(logging.ParseLevel(logLevel))
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(logging.NewContext(ctx, logger))

		if configPath == "" {
			cfg = config.Default()
			return nil
		}
		loaded, err := config.Load(configPath, schemaPath)
		if err != nil {
			return fmt.Errorf("config load failed: %w", err)
		}
		cfg = loaded
		logger.Debug("loaded configuration", "path", configPath, "config", fmt.Sprintf("%+v", *cfg))
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to dataset configuration YAML")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "Path to CUE schema file (built-in schema when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(replayCmd)
}
