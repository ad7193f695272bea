// Package bbox holds the YOLO bounding-box type and its format conversions.
package bbox

// DroneClassID is the class id used for drones in single-class label files.
const DroneClassID = 0

// BoundingBox is a YOLO-format box. Geometry is normalized to [0, 1]
// relative to the source frame's width and height.
type BoundingBox struct {
	ClassID int     `json:"class_id"`
	XCenter float64 `json:"x_center"`
	YCenter float64 `json:"y_center"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Corners is a box given by its top-left (X1, Y1) and bottom-right (X2, Y2) corners.
type Corners struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Area returns the corner-form area. It is not clamped, so a box with
// swapped corners on one axis yields a negative value.
func (c Corners) Area() float64 {
	return (c.X2 - c.X1) * (c.Y2 - c.Y1)
}

// Within reports whether all four coordinates lie in [lo, hi] inclusive.
func (c Corners) Within(lo, hi float64) bool {
	for _, v := range [4]float64{c.X1, c.Y1, c.X2, c.Y2} {
		if v < lo || v > hi {
			return false
		}
	}
	return true
}

// ToCorners converts a YOLO box to corner form.
func ToCorners(b BoundingBox) Corners {
	return Corners{
		X1: b.XCenter - b.Width/2,
		Y1: b.YCenter - b.Height/2,
		X2: b.XCenter + b.Width/2,
		Y2: b.YCenter + b.Height/2,
	}
}

// FromCorners converts a corner-form box back to YOLO form.
// The class is always DroneClassID; callers labelling other classes set it afterwards.
func FromCorners(c Corners) BoundingBox {
	return BoundingBox{
		ClassID: DroneClassID,
		XCenter: (c.X1 + c.X2) / 2,
		YCenter: (c.Y1 + c.Y2) / 2,
		Width:   c.X2 - c.X1,
		Height:  c.Y2 - c.Y1,
	}
}

// Area returns width*height in normalized units.
func Area(b BoundingBox) float64 {
	return b.Width * b.Height
}

// BoxInfo summarises a box for reports.
type BoxInfo struct {
	ClassID int     `json:"class_id"`
	XCenter float64 `json:"x_center"`
	YCenter float64 `json:"y_center"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Area    float64 `json:"area"`
}

// Info returns the box fields together with its area.
func Info(b BoundingBox) BoxInfo {
	return BoxInfo{
		ClassID: b.ClassID,
		XCenter: b.XCenter,
		YCenter: b.YCenter,
		Width:   b.Width,
		Height:  b.Height,
		Area:    Area(b),
	}
}
