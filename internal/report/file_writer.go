package report

import (
	"encoding/json"
	"os"
)

// FileWriter writes stats rows to a JSONL file.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates (or truncates) the JSONL file at path.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write logs a single stats row.
func (f *FileWriter) Write(row StatsRow) error {
	return f.enc.Encode(row)
}

// WriteBatch logs multiple stats rows.
func (f *FileWriter) WriteBatch(rows []StatsRow) error {
	for _, r := range rows {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}
