package roadbuffer

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrDegeneratePolyline is returned for polylines with less than two points
var ErrDegeneratePolyline = errors.New("polyline must contain at least two points")

// Polyline is ordered sequence of points. No closure assumed
type Polyline []GeoPoint

// Validate checks that polyline has at least two points
func (line Polyline) Validate() error {
	if len(line) < 2 {
		return ErrDegeneratePolyline
	}
	return nil
}

// LineString returns orb representation of polyline
func (line Polyline) LineString() orb.LineString {
	ls := make(orb.LineString, len(line))
	for i := range line {
		ls[i] = line[i].orbPoint()
	}
	return ls
}

// copyLine returns copy of given line
func copyLine(pts Polyline) Polyline {
	output := make(Polyline, len(pts))
	copy(output, pts)
	return output
}

// PolylineCollection is read-only set of polylines of single road class.
//
// Collections are built once (usually at startup) and never mutated afterwards,
// so they could be shared between goroutines without synchronization
type PolylineCollection struct {
	lines []Polyline
}

// NewPolylineCollection creates collection from given polylines. Every polyline is copied and validated
func NewPolylineCollection(lines ...Polyline) (*PolylineCollection, error) {
	collection := &PolylineCollection{
		lines: make([]Polyline, 0, len(lines)),
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, errors.Wrapf(err, "polyline #%d", i)
		}
		collection.lines = append(collection.lines, copyLine(line))
	}
	return collection, nil
}

// Len returns number of polylines. Nil collection is empty
func (collection *PolylineCollection) Len() int {
	if collection == nil {
		return 0
	}
	return len(collection.lines)
}

// Polyline returns copy of i-th polyline
func (collection *PolylineCollection) Polyline(i int) Polyline {
	return copyLine(collection.lines[i])
}

// Each iterates over polylines until fn returns false. Polylines must not be modified by fn
func (collection *PolylineCollection) Each(fn func(i int, line Polyline) bool) {
	if collection == nil {
		return
	}
	for i, line := range collection.lines {
		if !fn(i, line) {
			return
		}
	}
}

// TotalLength returns sum of polylines lengths (degrees)
func (collection *PolylineCollection) TotalLength() float64 {
	total := 0.0
	collection.Each(func(_ int, line Polyline) bool {
		total += getLength(line)
		return true
	})
	return total
}
