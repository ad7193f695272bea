// Package report emits per-file statistics rows for dataset runs.
package report

import (
	"time"

	"github.com/google/uuid"

	"drone-dataset/internal/quadrant"
)

// Stage names the tool that produced a row.
const (
	StageConvert = "convert"
	StageSplit   = "split"
)

// StatsRow describes one processed label file.
type StatsRow struct {
	RunID       string    `json:"run_id"`  // TAG
	Dataset     string    `json:"dataset"` // TAG
	Stage       string    `json:"stage"`   // TAG
	File        string    `json:"file"`
	Frames      int       `json:"frames"`
	Boxes       int       `json:"boxes"`
	TopLeft     int       `json:"top_left"`
	TopRight    int       `json:"top_right"`
	BottomLeft  int       `json:"bottom_left"`
	BottomRight int       `json:"bottom_right"`
	Timestamp   time.Time `json:"ts"` // TIME INDEX
}

// SetCounts copies per-quadrant counts, indexed like quadrant.All, into the row.
func (r *StatsRow) SetCounts(counts [4]int) {
	r.TopLeft = counts[quadrant.TopLeft]
	r.TopRight = counts[quadrant.TopRight]
	r.BottomLeft = counts[quadrant.BottomLeft]
	r.BottomRight = counts[quadrant.BottomRight]
}

// Writer is an interface to support different output writers.
type Writer interface {
	Write(StatsRow) error
}

type batchWriter interface {
	WriteBatch([]StatsRow) error
}

// Run stamps rows of one tool invocation with a shared run id.
type Run struct {
	ID      string
	Dataset string
	now     func() time.Time
}

// NewRun starts a run with a fresh id.
func NewRun(dataset string) *Run {
	return &Run{ID: uuid.New().String(), Dataset: dataset, now: time.Now}
}

// Row returns a row for file with run id, dataset, stage and timestamp set.
func (r *Run) Row(stage, file string) StatsRow {
	return StatsRow{
		RunID:     r.ID,
		Dataset:   r.Dataset,
		Stage:     stage,
		File:      file,
		Timestamp: r.now().UTC(),
	}
}
