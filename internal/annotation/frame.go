// Package annotation converts per-video annotation files, one line per frame
// with several objects each, into per-frame YOLO label files.
package annotation

import (
	"errors"
	"fmt"
	"strings"

	"drone-dataset/internal/bbox"
)

// TokensPerObject is the number of tokens describing one object: x y w h class.
const TokensPerObject = 5

// ErrShortRecord is reported when a line declares more objects than it holds.
var ErrShortRecord = errors.New("record declares more objects than it contains")

// ClassMapper maps an annotation label to a class id.
type ClassMapper interface {
	ClassID(label string) int
}

// ClassMapperFunc adapts a function to ClassMapper.
type ClassMapperFunc func(label string) int

func (f ClassMapperFunc) ClassID(label string) int { return f(label) }

// ClassMap looks labels up in IDs and falls back to Default.
type ClassMap struct {
	IDs     map[string]int
	Default int
}

func (m ClassMap) ClassID(label string) int {
	if id, ok := m.IDs[label]; ok {
		return id
	}
	return m.Default
}

// DefaultClassMap labels "drone" as 0 and everything else as 1.
var DefaultClassMap = ClassMap{IDs: map[string]int{"drone": bbox.DroneClassID}, Default: 1}

// Frame is one converted annotation line.
type Frame struct {
	Index int
	Boxes []bbox.BoundingBox
}

// ParseFrame parses "frame_index num_objects [x y w h class]*", where x, y is
// the top-left corner in pixels, and normalizes each object by the frame size.
// Tokens after the declared objects are ignored.
func ParseFrame(line string, width, height float64, mapper ClassMapper) (Frame, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return Frame{}, &bbox.FormatError{Token: line, Err: ErrShortRecord}
	}
	idx, err := bbox.ParseInt(parts[0])
	if err != nil {
		return Frame{}, err
	}
	n, err := bbox.ParseInt(parts[1])
	if err != nil {
		return Frame{}, err
	}
	if n < 0 {
		return Frame{}, &bbox.FormatError{Token: parts[1], Err: errors.New("negative object count")}
	}
	objs := parts[2:]
	if len(objs) < n*TokensPerObject {
		return Frame{}, &bbox.FormatError{Token: parts[1], Err: fmt.Errorf("%w: want %d tokens, have %d", ErrShortRecord, n*TokensPerObject, len(objs))}
	}

	f := Frame{Index: idx, Boxes: make([]bbox.BoundingBox, 0, n)}
	for i := 0; i < n; i++ {
		o := objs[i*TokensPerObject : (i+1)*TokensPerObject]
		var px [4]float64
		for j := range px {
			if px[j], err = bbox.ParseFloat(o[j]); err != nil {
				return Frame{}, err
			}
		}
		x, y, w, h := px[0], px[1], px[2], px[3]
		f.Boxes = append(f.Boxes, bbox.BoundingBox{
			ClassID: mapper.ClassID(o[4]),
			XCenter: (x + w/2) / width,
			YCenter: (y + h/2) / height,
			Width:   w / width,
			Height:  h / height,
		})
	}
	return f, nil
}
