package report

import (
	"encoding/json"
	"errors"
	"io"
	"os"
)

// Replay decodes JSONL stats rows from r and writes them to writer, in order.
// It returns the number of rows written.
func Replay(r io.Reader, writer Writer) (int, error) {
	dec := json.NewDecoder(r)
	n := 0
	for {
		var row StatsRow
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		if err := writer.Write(row); err != nil {
			return n, err
		}
		n++
	}
}

// ReplayFile opens a JSONL report and replays its rows.
func ReplayFile(path string, writer Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Replay(f, writer)
}
