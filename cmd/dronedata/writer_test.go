package main

import (
	"os"
	"path/filepath"
	"testing"

	"drone-dataset/internal/config"
	"drone-dataset/internal/report"
)

func TestStdoutWriterSelection(t *testing.T) {
	if _, ok := stdoutWriter(true).(*report.ColorStdoutWriter); !ok {
		t.Fatalf("expected color writer on a terminal")
	}
	if _, ok := stdoutWriter(false).(*report.JSONStdoutWriter); !ok {
		t.Fatalf("expected JSON writer when piped")
	}
}

func TestNewStatsWriterGreptimeFallback(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	w, cleanup, err := newStatsWriter(config.Default(), false, "")
	if err != nil {
		t.Fatalf("newStatsWriter returned error: %v", err)
	}
	cleanup()
	switch w.(type) {
	case *report.JSONStdoutWriter, *report.ColorStdoutWriter:
	default:
		t.Fatalf("expected a stdout writer, got %T", w)
	}
}

func TestNewStatsWriterLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.jsonl")
	w, cleanup, err := newStatsWriter(config.Default(), true, path)
	if err != nil {
		t.Fatalf("newStatsWriter returned error: %v", err)
	}
	defer cleanup()
	if _, ok := w.(*report.MultiWriter); !ok {
		t.Fatalf("expected *report.MultiWriter, got %T", w)
	}
	if err := w.Write(report.NewRun("test").Row(report.StageSplit, "a.txt")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected log file to be non-empty")
	}
}
