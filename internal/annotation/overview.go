package annotation

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FrameStat describes one annotation file: how many frame lines it has and
// how many of them declare zero objects.
type FrameStat struct {
	File   string `json:"file"`
	Frames int    `json:"frames"`
	Empty  int    `json:"empty"`
}

// Overview scans the .txt annotation files in dir, sorted by file name.
func Overview(dir string) ([]FrameStat, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read annotation dir: %w", err)
	}
	var stats []FrameStat
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		st, err := overviewFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return stats, err
		}
		stats = append(stats, st)
	}
	return stats, nil
}

func overviewFile(path string) (FrameStat, error) {
	f, err := os.Open(path)
	if err != nil {
		return FrameStat{}, err
	}
	defer f.Close()

	st := FrameStat{File: filepath.Base(path)}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		st.Frames++
		parts := strings.Fields(sc.Text())
		if len(parts) > 1 && parts[1] == "0" {
			st.Empty++
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}
