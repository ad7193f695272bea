package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drone-dataset/internal/bbox"
	"drone-dataset/internal/quadrant"
	"drone-dataset/internal/report"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dronedata %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestConvertThenSplit(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	dir := t.TempDir()
	ann := filepath.Join(dir, "clip.txt")
	if err := os.WriteFile(ann, []byte("0 1 100 100 200 200 drone\n1 0\n"), 0o644); err != nil {
		t.Fatalf("write annotations: %v", err)
	}
	labels := filepath.Join(dir, "labels")
	stats := filepath.Join(dir, "convert.jsonl")
	runCLI(t, "convert", ann, "--out", labels, "--width", "1000", "--height", "1000", "--print-only", "--report", stats)

	boxes, err := bbox.ReadFile(filepath.Join(labels, "clip_frame_0000.txt"))
	if err != nil {
		t.Fatalf("read converted labels: %v", err)
	}
	want := bbox.BoundingBox{ClassID: 0, XCenter: 0.2, YCenter: 0.2, Width: 0.2, Height: 0.2}
	if len(boxes) != 1 || boxes[0] != want {
		t.Fatalf("converted boxes = %+v", boxes)
	}

	quads := filepath.Join(dir, "quadrants")
	splitStats := filepath.Join(dir, "split.jsonl")
	runCLI(t, "split", labels, "--out", quads, "--print-only", "--report", splitStats)
	entries, err := os.ReadDir(quads)
	if err != nil {
		t.Fatalf("read quadrants: %v", err)
	}
	if len(entries) != 8 {
		t.Fatalf("expected 8 quadrant files, got %d", len(entries))
	}

	var rows collectRows
	if _, err := report.ReplayFile(splitStats, &rows); err != nil {
		t.Fatalf("replay split stats: %v", err)
	}
	if len(rows) != 2 || rows[0].File != "clip_frame_0000.txt" || rows[0].TopLeft != 1 {
		t.Fatalf("unexpected split stats: %+v", rows)
	}
}

func TestOverviewAndList(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{"a.txt": "0 0\n1 0\n2 1 0 0 1 1 drone\n", "a.mp4": ""} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	out := runCLI(t, "overview", dir)
	if !strings.Contains(out, "a.txt") || !strings.Contains(out, "3") {
		t.Fatalf("unexpected overview output: %q", out)
	}
	out = runCLI(t, "list", dir)
	if strings.TrimSpace(out) != "a" {
		t.Fatalf("unexpected list output: %q", out)
	}
}

type collectRows []report.StatsRow

func (c *collectRows) Write(r report.StatsRow) error {
	*c = append(*c, r)
	return nil
}

func TestSplitRejectsDuplicateStems(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	dir := t.TempDir()
	for _, sub := range []string{"day", "night"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, sub, "clip_frame_0000.txt"), []byte("0 0.2 0.2 0.1 0.1\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"split", filepath.Join(dir, "day"), filepath.Join(dir, "night"),
		"--out", filepath.Join(dir, "quadrants"), "--print-only", "--report", filepath.Join(dir, "split.jsonl")})
	err := rootCmd.Execute()
	if !errors.Is(err, quadrant.ErrDuplicateStem) {
		t.Fatalf("expected ErrDuplicateStem, got %v", err)
	}
}
