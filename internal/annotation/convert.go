package annotation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"drone-dataset/internal/bbox"
	"drone-dataset/internal/logging"
	"drone-dataset/internal/media"
)

// ErrFrameSize is returned when the converter has no usable frame size.
var ErrFrameSize = errors.New("frame width and height must be positive")

// Converter turns a video annotation file into per-frame label files.
// Output files are appended to, so callers must not run two converters
// against the same output directory at once.
type Converter struct {
	Width  float64
	Height float64
	Mapper ClassMapper
	Logger *slog.Logger
}

// NewConverter returns a Converter using DefaultClassMap.
func NewConverter(width, height int) *Converter {
	return &Converter{Width: float64(width), Height: float64(height), Mapper: DefaultClassMap}
}

// Result summarises one conversion.
type Result struct {
	Frames  int
	Objects int
	Files   []string
}

func (c *Converter) logger(ctx context.Context) *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.FromContext(ctx)
}

// AnnotationPath returns the annotation file of a video: the video's stem
// with a .txt extension inside dir.
func AnnotationPath(dir, video string) string {
	return filepath.Join(dir, media.Stem(video)+".txt")
}

// ConvertVideo converts the annotation file belonging to video.
func (c *Converter) ConvertVideo(ctx context.Context, video, inputDir, outDir string) (Result, error) {
	return c.ConvertFile(ctx, AnnotationPath(inputDir, video), outDir)
}

// ConvertFile converts the annotation file at path. Output files are named
// after the input file's stem.
func (c *Converter) ConvertFile(ctx context.Context, path, outDir string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open annotations: %w", err)
	}
	defer f.Close()
	return c.Convert(ctx, f, media.Stem(path), outDir)
}

// Convert reads annotation lines from r and writes one label file per frame
// into outDir. Blank lines are skipped; a malformed line stops the conversion
// with a *bbox.FormatError carrying its line number.
func (c *Converter) Convert(ctx context.Context, r io.Reader, stem, outDir string) (Result, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return Result{}, ErrFrameSize
	}
	mapper := c.Mapper
	if mapper == nil {
		mapper = DefaultClassMap
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	var res Result
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		frame, err := ParseFrame(line, c.Width, c.Height, mapper)
		if err != nil {
			var fe *bbox.FormatError
			if errors.As(err, &fe) {
				fe.Line = n
			}
			return res, err
		}
		path := filepath.Join(outDir, media.FrameLabelName(stem, frame.Index))
		if err := appendLabels(path, frame.Boxes); err != nil {
			return res, err
		}
		res.Frames++
		res.Objects += len(frame.Boxes)
		res.Files = append(res.Files, path)
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read annotations: %w", err)
	}

	c.logger(ctx).Info("wrote annotation files", "count", res.Frames, "objects", res.Objects, "dir", outDir)
	return res, nil
}

func appendLabels(path string, boxes []bbox.BoundingBox) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := bbox.Write(f, boxes); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
