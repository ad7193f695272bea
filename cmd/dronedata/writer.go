package main

import (
	"os"

	"golang.org/x/term"

	"drone-dataset/internal/config"
	"drone-dataset/internal/report"
)

// newStatsWriter sets up the stats writer based on flags, config and env vars.
// It returns the writer and a cleanup function to close any resources.
func newStatsWriter(c *config.DatasetConfig, printOnly bool, logFile string) (report.Writer, func(), error) {
	cleanup := func() {}

	writer, err := baseWriter(c, printOnly)
	if err != nil {
		return nil, nil, err
	}
	if logFile == "" {
		return writer, cleanup, nil
	}

	fw, err := report.NewFileWriter(logFile)
	if err != nil {
		return nil, nil, err
	}
	cleanup = func() { fw.Close() }
	return report.NewMultiWriter(writer, fw), cleanup, nil
}

// baseWriter chooses GreptimeDB when an endpoint is configured, STDOUT otherwise.
func baseWriter(c *config.DatasetConfig, printOnly bool) (report.Writer, error) {
	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	if printOnly || c.Report.PrintOnly || endpoint == "" {
		return stdoutWriter(term.IsTerminal(int(os.Stdout.Fd()))), nil
	}

	database := os.Getenv("GREPTIMEDB_DATABASE")
	if database == "" {
		database = "public"
	}
	table := os.Getenv("DATASET_STATS_TABLE")
	if table == "" {
		table = c.Report.Table
	}
	return report.NewGreptimeDBWriter(endpoint, database, table)
}

// stdoutWriter prints colorized rows on a terminal and JSON lines otherwise.
func stdoutWriter(tty bool) report.Writer {
	if tty {
		return report.NewColorStdoutWriter()
	}
	return report.NewJSONStdoutWriter()
}
