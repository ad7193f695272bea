// Package quadrant splits normalized bounding boxes across four overlapping
// image quadrants, producing a re-normalized label set for each quadrant crop.
package quadrant

import (
	"fmt"
	"math"

	"drone-dataset/internal/bbox"
)

const (
	// Size is the fraction of each axis covered by one quadrant.
	Size = 0.55
	// Offset is where the second quadrant starts on each axis.
	Offset = 0.45
	// DefaultThreshold is the minimum retained area fraction, exclusive.
	DefaultThreshold = 0.1

	// retentionTolerance absorbs the rounding of decimal box edges, so a box
	// keeping exactly the threshold fraction is not accepted.
	retentionTolerance = 1e-9
)

// Quadrant names one of the four fixed regions of a frame.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// All lists the quadrants in output order.
var All = [4]Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

var names = [4]string{"top_left", "top_right", "bottom_left", "bottom_right"}

func (q Quadrant) String() string {
	if q < TopLeft || q > BottomRight {
		return fmt.Sprintf("quadrant(%d)", int(q))
	}
	return names[q]
}

// Parse returns the quadrant with the given name.
func Parse(name string) (Quadrant, error) {
	for i, n := range names {
		if n == name {
			return Quadrant(i), nil
		}
	}
	return 0, fmt.Errorf("unknown quadrant %q", name)
}

// Origin returns the quadrant's top-left corner in source-frame units.
func (q Quadrant) Origin() (ax, ay float64) {
	if q == TopRight || q == BottomRight {
		ax = Offset
	}
	if q == BottomLeft || q == BottomRight {
		ay = Offset
	}
	return ax, ay
}

// Remap clips c to the quadrant's footprint and rescales it to the
// quadrant's local [0, 1] space. A box lying outside the footprint yields
// coordinates outside [0, 1].
func Remap(c bbox.Corners, q Quadrant) bbox.Corners {
	ax, ay := q.Origin()
	return bbox.Corners{
		X1: (math.Max(c.X1, ax) - ax) / Size,
		Y1: (math.Max(c.Y1, ay) - ay) / Size,
		X2: (math.Min(c.X2, ax+Size) - ax) / Size,
		Y2: (math.Min(c.Y2, ay+Size) - ay) / Size,
	}
}

// retention converts the local box area back to source-frame units and
// divides by the original area.
func retention(local bbox.Corners, originalArea float64) float64 {
	if originalArea <= 0 {
		return 0
	}
	return local.Area() * Size * Size / originalArea
}

// Retention returns the fraction of b's area kept inside quadrant q.
// Zero-area boxes retain nothing.
func Retention(b bbox.BoundingBox, q Quadrant) float64 {
	return retention(Remap(bbox.ToCorners(b), q), bbox.Area(b))
}
