package bbox

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestCornerRoundTrip(t *testing.T) {
	boxes := []BoundingBox{
		{XCenter: 0.5, YCenter: 0.5, Width: 1, Height: 1},
		{XCenter: 0.123, YCenter: 0.987, Width: 0.01, Height: 0.02},
		{XCenter: 0.3, YCenter: 0.7, Width: 0.25, Height: 0.4},
	}
	for _, b := range boxes {
		got := FromCorners(ToCorners(b))
		if got.ClassID != 0 || !near(got.XCenter, b.XCenter) || !near(got.YCenter, b.YCenter) ||
			!near(got.Width, b.Width) || !near(got.Height, b.Height) {
			t.Fatalf("round trip %+v -> %+v", b, got)
		}
	}

	c := Corners{X1: 0.1, Y1: 0.2, X2: 0.4, Y2: 0.9}
	back := ToCorners(FromCorners(c))
	if !near(back.X1, c.X1) || !near(back.Y1, c.Y1) || !near(back.X2, c.X2) || !near(back.Y2, c.Y2) {
		t.Fatalf("corner round trip %+v -> %+v", c, back)
	}
}

func TestFromCornersForcesDroneClass(t *testing.T) {
	b := BoundingBox{ClassID: 3, XCenter: 0.5, YCenter: 0.5, Width: 0.2, Height: 0.2}
	if got := FromCorners(ToCorners(b)); got.ClassID != DroneClassID {
		t.Fatalf("class = %d, want %d", got.ClassID, DroneClassID)
	}
}

func TestArea(t *testing.T) {
	if a := Area(BoundingBox{Width: 0.5, Height: 0.2}); !near(a, 0.1) {
		t.Fatalf("area = %v", a)
	}
	if a := Area(BoundingBox{XCenter: 0.4, YCenter: 0.4, Width: 0, Height: 0.3}); a != 0 {
		t.Fatalf("degenerate area = %v", a)
	}
	info := Info(BoundingBox{ClassID: 1, Width: 0.5, Height: 0.5})
	if info.ClassID != 1 || !near(info.Area, 0.25) {
		t.Fatalf("info = %+v", info)
	}
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		ok   bool
		want BoundingBox
	}{
		{"valid", "0 0.5 0.25 0.1 0.2", true, BoundingBox{0, 0.5, 0.25, 0.1, 0.2}},
		{"float class", "1.0 0.5 0.5 0.1 0.1", true, BoundingBox{1, 0.5, 0.5, 0.1, 0.1}},
		{"extra whitespace", "  0\t0.1  0.2 0.3   0.4 ", true, BoundingBox{0, 0.1, 0.2, 0.3, 0.4}},
		{"four tokens", "0 0.5 0.5 0.1", false, BoundingBox{}},
		{"six tokens", "0 0.5 0.5 0.1 0.1 0.9", false, BoundingBox{}},
		{"empty", "", false, BoundingBox{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := ParseLine(tc.line)
			if err != nil {
				t.Fatalf("ParseLine: %v", err)
			}
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("box = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseLineFormatError(t *testing.T) {
	for _, line := range []string{"0 0.5 abc 0.1 0.1", "drone 0.5 0.5 0.1 0.1", "-1 0.5 0.5 0.1 0.1", "0.5 0.5 0.5 0.1 0.1"} {
		_, ok, err := ParseLine(line)
		var fe *FormatError
		if ok || !errors.As(err, &fe) {
			t.Fatalf("%q: expected FormatError, got ok=%v err=%v", line, ok, err)
		}
	}
}

func TestReadSkipsMalformedLines(t *testing.T) {
	in := "0 0.5 0.5 0.1 0.1\n0 0.5 0.5\n\n1 0.2 0.2 0.05 0.05 extra\n0 0.3 0.3 0.2 0.2\n"
	boxes, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}
	if boxes[1].XCenter != 0.3 {
		t.Fatalf("order not preserved: %+v", boxes)
	}
}

func TestReadReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("0 0.5 0.5 0.1 0.1\n0 x 0.5 0.1 0.1\n"))
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if fe.Line != 2 || fe.Token != "x" {
		t.Fatalf("unexpected error detail: %+v", fe)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFormatAndWrite(t *testing.T) {
	if got := Format(BoundingBox{ClassID: 0, XCenter: 0.2, YCenter: 1, Width: 0.05, Height: 0}); got != "0 0.2 1.0 0.05 0.0" {
		t.Fatalf("Format = %q", got)
	}
	var buf bytes.Buffer
	boxes := []BoundingBox{{0, 0.5, 0.5, 0.1, 0.1}, {1, 0.25, 0.75, 0.2, 0.3}}
	if err := Write(&buf, boxes); err != nil {
		t.Fatalf("Write: %v", err)
	}
	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(back) != 2 || back[0] != boxes[0] || back[1] != boxes[1] {
		t.Fatalf("write/read mismatch: %+v", back)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.2, "0.2"},
		{0.0001, "0.0001"},
		{2.604166666666667e-05, "2.604166666666667e-05"},
		{1e-05, "1e-05"},
		{-3.5e-07, "-3.5e-07"},
		{1e16, "1e+16"},
		{123456789.0, "123456789.0"},
	}
	for _, c := range cases {
		got := FormatFloat(c.in)
		if got != c.want {
			t.Fatalf("FormatFloat(%v) = %q, want %q", c.in, got, c.want)
		}
		back, err := ParseFloat(got)
		if err != nil || back != c.in {
			t.Fatalf("ParseFloat(%q) = %v, %v", got, back, err)
		}
	}
}
