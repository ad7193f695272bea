package bbox

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// FieldsPerLine is the number of tokens in a YOLO label line.
const FieldsPerLine = 5

// ErrNegativeClass is reported for class tokens below zero.
var ErrNegativeClass = errors.New("class id must be non-negative")

// FormatError reports a token that could not be parsed. Line is 1-based and
// zero when the error was raised outside of a file reader.
type FormatError struct {
	Line  int
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: bad token %q: %v", e.Line, e.Token, e.Err)
	}
	return fmt.Sprintf("bad token %q: %v", e.Token, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseFloat parses a float token, wrapping failures in a FormatError.
func ParseFloat(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &FormatError{Token: tok, Err: err}
	}
	return v, nil
}

// ParseInt parses an integer token, wrapping failures in a FormatError.
func ParseInt(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &FormatError{Token: tok, Err: err}
	}
	return v, nil
}

// parseClass accepts "0" as well as "0.0", which some exporters write.
func parseClass(tok string) (int, error) {
	if id, err := strconv.Atoi(tok); err == nil {
		if id < 0 {
			return 0, &FormatError{Token: tok, Err: ErrNegativeClass}
		}
		return id, nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &FormatError{Token: tok, Err: err}
	}
	if f != math.Trunc(f) {
		return 0, &FormatError{Token: tok, Err: errors.New("class id is not an integer")}
	}
	if f < 0 {
		return 0, &FormatError{Token: tok, Err: ErrNegativeClass}
	}
	return int(f), nil
}

// ParseLine parses "class x_center y_center width height". ok is false when the
// line does not have exactly five tokens; such lines are not boxes and carry
// no error. A five-token line with a non-numeric token returns a *FormatError.
func ParseLine(line string) (b BoundingBox, ok bool, err error) {
	parts := strings.Fields(line)
	if len(parts) != FieldsPerLine {
		return BoundingBox{}, false, nil
	}
	if b.ClassID, err = parseClass(parts[0]); err != nil {
		return BoundingBox{}, false, err
	}
	dst := [4]*float64{&b.XCenter, &b.YCenter, &b.Width, &b.Height}
	for i, p := range dst {
		if *p, err = ParseFloat(parts[i+1]); err != nil {
			return BoundingBox{}, false, err
		}
	}
	return b, true, nil
}

// Read collects every box line from r, skipping lines that are not boxes.
func Read(r io.Reader) ([]BoundingBox, error) {
	var boxes []BoundingBox
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		b, ok, err := ParseLine(sc.Text())
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = n
			}
			return nil, err
		}
		if ok {
			boxes = append(boxes, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read boxes: %w", err)
	}
	return boxes, nil
}

// ReadFile reads the boxes of a YOLO label file.
func ReadFile(path string) ([]BoundingBox, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open label file: %w", err)
	}
	defer f.Close()
	boxes, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return boxes, nil
}

// FormatFloat prints v with the shortest representation that round-trips,
// always keeping a decimal point ("1.0", "0.2"). Magnitudes below 1e-4 or
// from 1e16 up switch to exponent form ("2.604166666666667e-05").
func FormatFloat(v float64) string {
	if abs := math.Abs(v); v != 0 && (abs < 1e-4 || abs >= 1e16) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Format renders b as a label line without the trailing newline.
func Format(b BoundingBox) string {
	return fmt.Sprintf("%d %s %s %s %s", b.ClassID,
		FormatFloat(b.XCenter), FormatFloat(b.YCenter),
		FormatFloat(b.Width), FormatFloat(b.Height))
}

// Write writes one label line per box.
func Write(w io.Writer, boxes []BoundingBox) error {
	bw := bufio.NewWriter(w)
	for _, b := range boxes {
		if _, err := bw.WriteString(Format(b) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
