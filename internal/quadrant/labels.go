package quadrant

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"drone-dataset/internal/bbox"
	"drone-dataset/internal/logging"
)

// LabelName returns the label file name for quadrant q of the frame stem.
func LabelName(stem string, q Quadrant) string {
	return fmt.Sprintf("%s_%s.txt", stem, q)
}

// WriteLabels writes one YOLO label file per quadrant into dir, replacing
// existing files. Quadrants without boxes get an empty file so every crop
// has a label file.
func WriteLabels(dir, stem string, set QuadrantBoxSet) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create label dir: %w", err)
	}
	paths := make([]string, 0, len(All))
	for _, q := range All {
		path := filepath.Join(dir, LabelName(stem, q))
		f, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		if err := bbox.Write(f, set.Boxes(q)); err != nil {
			f.Close()
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// FileResult summarises the split of one label file.
type FileResult struct {
	File   string
	Boxes  int
	Counts [4]int
}

// SplitFile splits the boxes of one label file and writes the quadrant label files.
func (s Splitter) SplitFile(path, outDir string) (FileResult, error) {
	boxes, err := bbox.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}
	set := s.Split(boxes)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if _, err := WriteLabels(outDir, stem, set); err != nil {
		return FileResult{}, err
	}
	return FileResult{File: filepath.Base(path), Boxes: len(boxes), Counts: set.Counts()}, nil
}

// ErrDuplicateStem is returned when two input label files would write the
// same quadrant label files.
var ErrDuplicateStem = errors.New("label files share a stem")

// IsQuadrantLabel reports whether name is a quadrant label file written by
// WriteLabels, such as "clip_frame_0001_top_left.txt".
func IsQuadrantLabel(name string) bool {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	for _, q := range All {
		if strings.HasSuffix(stem, "_"+q.String()) {
			return true
		}
	}
	return false
}

// LabelFiles lists the .txt label files in dir in name order, leaving out
// quadrant label files from an earlier split.
func LabelFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read label dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" || IsQuadrantLabel(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// SplitFiles splits each label file into outDir. Nothing is written when two
// paths share a stem.
func (s Splitter) SplitFiles(ctx context.Context, paths []string, outDir string) ([]FileResult, error) {
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		if prev, ok := seen[stem]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateStem, prev, p)
		}
		seen[stem] = p
	}

	results := make([]FileResult, 0, len(paths))
	for _, p := range paths {
		res, err := s.SplitFile(p, outDir)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	logging.FromContext(ctx).Info("split label files", "count", len(results), "dir", outDir, "threshold", s.Threshold)
	return results, nil
}

// SplitDir splits every label file in inDir into outDir.
func (s Splitter) SplitDir(ctx context.Context, inDir, outDir string) ([]FileResult, error) {
	paths, err := LabelFiles(inDir)
	if err != nil {
		return nil, err
	}
	return s.SplitFiles(ctx, paths, outDir)
}
