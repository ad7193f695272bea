package report

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// DefaultGreptimePort is the gRPC port of GreptimeDB.
const DefaultGreptimePort = 4001

type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter writes stats rows to GreptimeDB via the ingester client.
type GreptimeDBWriter struct {
	client greptimeClient
	table  string
	log    *slog.Logger
}

// NewGreptimeDBWriter connects to endpoint ("host" or "host:port").
// The table is created on first write.
func NewGreptimeDBWriter(endpoint, database, tableName string) (*GreptimeDBWriter, error) {
	host, port, err := splitEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("greptime client: %w", err)
	}
	return &GreptimeDBWriter{client: client, table: tableName, log: slog.Default()}, nil
}

func splitEndpoint(endpoint string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		// no port given
		return endpoint, DefaultGreptimePort, nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid greptime endpoint %q: %w", endpoint, err)
	}
	return host, port, nil
}

// Write inserts a single stats row.
func (w *GreptimeDBWriter) Write(row StatsRow) error {
	return w.WriteBatch([]StatsRow{row})
}

// WriteBatch inserts multiple stats rows in one request.
func (w *GreptimeDBWriter) WriteBatch(rows []StatsRow) error {
	if len(rows) == 0 {
		return nil
	}
	tbl, err := w.buildTable(rows)
	if err != nil {
		return err
	}
	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		w.logger().Error("greptime write failed", "table", w.table, "err", err)
		return err
	}
	w.logger().Debug("greptime write", "table", w.table, "rows", len(rows))
	return nil
}

func (w *GreptimeDBWriter) logger() *slog.Logger {
	if w.log != nil {
		return w.log
	}
	return slog.Default()
}

func (w *GreptimeDBWriter) buildTable(rows []StatsRow) (*table.Table, error) {
	tbl, err := table.New(w.table)
	if err != nil {
		return nil, err
	}
	cols := []struct {
		name string
		tag  bool
		typ  types.ColumnType
	}{
		{"run_id", true, types.STRING},
		{"dataset", true, types.STRING},
		{"stage", true, types.STRING},
		{"file", false, types.STRING},
		{"frames", false, types.INT64},
		{"boxes", false, types.INT64},
		{"top_left", false, types.INT64},
		{"top_right", false, types.INT64},
		{"bottom_left", false, types.INT64},
		{"bottom_right", false, types.INT64},
	}
	for _, c := range cols {
		if c.tag {
			err = tbl.AddTagColumn(c.name, c.typ)
		} else {
			err = tbl.AddFieldColumn(c.name, c.typ)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return nil, err
	}

	for _, r := range rows {
		err := tbl.AddRow(
			r.RunID, r.Dataset, r.Stage, r.File,
			int64(r.Frames), int64(r.Boxes),
			int64(r.TopLeft), int64(r.TopRight), int64(r.BottomLeft), int64(r.BottomRight),
			r.Timestamp,
		)
		if err != nil {
			return nil, err
		}
	}
	return tbl, nil
}
