package quadrant

import "drone-dataset/internal/bbox"

// QuadrantBoxSet holds the accepted local boxes of one split, per quadrant,
// in input order.
type QuadrantBoxSet struct {
	TopLeft     []bbox.Corners `json:"top_left"`
	TopRight    []bbox.Corners `json:"top_right"`
	BottomLeft  []bbox.Corners `json:"bottom_left"`
	BottomRight []bbox.Corners `json:"bottom_right"`
}

func (s *QuadrantBoxSet) slot(q Quadrant) *[]bbox.Corners {
	switch q {
	case TopRight:
		return &s.TopRight
	case BottomLeft:
		return &s.BottomLeft
	case BottomRight:
		return &s.BottomRight
	default:
		return &s.TopLeft
	}
}

// Get returns the local boxes accepted into q.
func (s *QuadrantBoxSet) Get(q Quadrant) []bbox.Corners {
	return *s.slot(q)
}

// Boxes returns the local boxes of q in YOLO form.
func (s *QuadrantBoxSet) Boxes(q Quadrant) []bbox.BoundingBox {
	cs := s.Get(q)
	out := make([]bbox.BoundingBox, 0, len(cs))
	for _, c := range cs {
		out = append(out, bbox.FromCorners(c))
	}
	return out
}

// Counts returns the number of boxes per quadrant, indexed like All.
func (s *QuadrantBoxSet) Counts() [4]int {
	var n [4]int
	for i, q := range All {
		n[i] = len(s.Get(q))
	}
	return n
}

// Splitter assigns boxes to quadrants. A quadrant receives a box only if the
// remapped box lies fully inside [0, 1] and its retained area fraction is
// strictly greater than Threshold, ignoring differences below 1e-9.
type Splitter struct {
	Threshold float64
}

// NewSplitter returns a Splitter using DefaultThreshold.
func NewSplitter() Splitter {
	return Splitter{Threshold: DefaultThreshold}
}

// Accepts reports whether q would receive b, returning the local box too.
func (s Splitter) Accepts(b bbox.BoundingBox, q Quadrant) (bbox.Corners, bool) {
	local := Remap(bbox.ToCorners(b), q)
	ok := local.Within(0, 1) && retention(local, bbox.Area(b))-s.Threshold > retentionTolerance
	return local, ok
}

// Split computes the quadrant box set for boxes. A box may land in zero to
// four quadrants; each accepted quadrant gets its own clipped copy.
func (s Splitter) Split(boxes []bbox.BoundingBox) QuadrantBoxSet {
	var set QuadrantBoxSet
	for _, b := range boxes {
		for _, q := range All {
			if local, ok := s.Accepts(b, q); ok {
				p := set.slot(q)
				*p = append(*p, local)
			}
		}
	}
	return set
}
