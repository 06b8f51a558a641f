package roadbuffer

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	pi180    = math.Pi / 180.0
	pi180Rev = 180.0 / math.Pi
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// orbPoint converts GeoPoint to orb.Point (X == Lon, Y == Lat)
func (gp GeoPoint) orbPoint() orb.Point {
	return orb.Point{gp.Lon, gp.Lat}
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg  * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// findDistance returns distance between two points (assuming they are Euclidean: Lon == X, Lat == Y)
func findDistance(p, q GeoPoint) float64 {
	xdistance := p.Lon - q.Lon
	ydistance := p.Lat - q.Lat
	return math.Sqrt(xdistance*xdistance + ydistance*ydistance)
}

// distanceToSegment returns planar distance from pt to segment [p, q] (degrees)
func distanceToSegment(p, q, pt GeoPoint) float64 {
	if p == q {
		return findDistance(p, pt)
	}
	return planar.DistanceFromSegment(p.orbPoint(), q.orbPoint(), pt.orbPoint())
}

// distanceToLine returns minimum planar distance from pt to any segment of line (degrees)
//
// Note: line must contain at least two points, otherwise +Inf is returned
func distanceToLine(line Polyline, pt GeoPoint) float64 {
	shortest := math.Inf(1)
	for i := 1; i < len(line); i++ {
		d := distanceToSegment(line[i-1], line[i], pt)
		if d < shortest {
			shortest = d
		}
		if shortest == 0 {
			break
		}
	}
	return shortest
}

// getLength returns length for given line  (assuming points of the line are Euclidean: Lon == X, Lat == Y)
func getLength(line []GeoPoint) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += findDistance(line[i-1], line[i])
	}
	return totalLength
}
