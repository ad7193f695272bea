package report

import (
	"context"
	"errors"
	"testing"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
)

type mockGreptimeClient struct {
	table *table.Table
	calls int
	err   error
}

func (m *mockGreptimeClient) Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error) {
	m.calls++
	if len(tables) > 0 {
		m.table = tables[0]
	}
	return &gpb.GreptimeResponse{}, m.err
}

func TestGreptimeWriterStats(t *testing.T) {
	row := StatsRow{
		RunID:     "r1",
		Dataset:   "anti-uav",
		Stage:     StageSplit,
		File:      "clip_frame_0001.txt",
		Frames:    1,
		Boxes:     3,
		TopLeft:   2,
		Timestamp: time.Unix(0, 0).UTC(),
	}

	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, table: "dataset_label_stats"}

	if err := w.WriteBatch([]StatsRow{row, row}); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if m.calls != 1 || m.table == nil {
		t.Fatalf("expected one batched write, got %d", m.calls)
	}

	rows := m.table.GetRows()
	if len(rows.Schema) != 11 {
		t.Fatalf("unexpected schema length: %d", len(rows.Schema))
	}
	if rows.Schema[0].SemanticType != gpb.SemanticType_TAG || rows.Schema[3].SemanticType != gpb.SemanticType_FIELD {
		t.Fatalf("unexpected semantic types: %v %v", rows.Schema[0].SemanticType, rows.Schema[3].SemanticType)
	}
	if rows.Schema[10].SemanticType != gpb.SemanticType_TIMESTAMP {
		t.Fatalf("last column should be the time index")
	}
	if len(rows.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows.Rows))
	}
	if got := rows.Rows[0].Values[1].GetStringValue(); got != "anti-uav" {
		t.Fatalf("dataset = %s, want anti-uav", got)
	}
	if got := rows.Rows[0].Values[6].GetI64Value(); got != 2 {
		t.Fatalf("top_left = %d, want 2", got)
	}
}

func TestGreptimeWriterEmptyAndError(t *testing.T) {
	m := &mockGreptimeClient{}
	w := &GreptimeDBWriter{client: m, table: "t"}
	if err := w.WriteBatch(nil); err != nil || m.calls != 0 {
		t.Fatalf("empty batch should be a no-op")
	}
	m.err = errors.New("unavailable")
	if err := w.Write(StatsRow{Timestamp: time.Unix(0, 0)}); err == nil {
		t.Fatalf("expected client error")
	}
}

func TestSplitEndpoint(t *testing.T) {
	cases := []struct {
		in   string
		host string
		port int
	}{
		{"127.0.0.1:4001", "127.0.0.1", 4001},
		{"greptime:5001", "greptime", 5001},
		{"greptime", "greptime", DefaultGreptimePort},
	}
	for _, tc := range cases {
		host, port, err := splitEndpoint(tc.in)
		if err != nil || host != tc.host || port != tc.port {
			t.Fatalf("splitEndpoint(%q) = %s, %d, %v", tc.in, host, port, err)
		}
	}
	if _, _, err := splitEndpoint("host:abc"); err == nil {
		t.Fatalf("expected error for bad port")
	}
}
