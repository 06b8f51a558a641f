package roadbuffer

import (
	"math"

	"github.com/rs/zerolog/log"
)

const (
	// MinDistanceHighwayMeters is default minimum distance to the closest highway
	MinDistanceHighwayMeters = 210.0
	// MinDistanceArterialMeters is default minimum distance to the closest arterial
	MinDistanceArterialMeters = 30.0
)

// ClassConfig binds road class, its threshold and loaded geometry
type ClassConfig struct {
	Class             RoadClass
	Name              string // Used in messages. Defaults to Class.String()
	MinDistanceMeters float64
	Roads             *PolylineCollection
}

func (cfg ClassConfig) name() string {
	if cfg.Name != "" {
		return cfg.Name
	}
	if cfg.Class != 0 {
		return cfg.Class.String()
	}
	return "road"
}

// DistanceResult is outcome of proximity check for single road class
type DistanceResult struct {
	Class        RoadClass
	Name         string
	Degrees      float64 // Planar distance to the closest polyline. +Inf when collection is empty
	Meters       float64 // Degrees converted at query point latitude. +Inf when collection is empty
	Threshold    float64
	NearestIndex int  // Index of the closest polyline in collection. -1 when collection is empty
	Vacuous      bool // No roads of class were loaded, so there is nothing to be close to
	Passed       bool
}

// MinimumDistanceDegrees returns planar distance from pt to the closest polyline of collection
//
// Result is +Inf for empty collection: callers must treat it as "no constraint"
func MinimumDistanceDegrees(collection *PolylineCollection, pt GeoPoint) float64 {
	_, shortest := NearestPolyline(collection, pt)
	return shortest
}

// NearestPolyline returns index of the closest polyline and distance to it (degrees). Index is -1 for empty collection
func NearestPolyline(collection *PolylineCollection, pt GeoPoint) (int, float64) {
	idx := -1
	shortest := math.Inf(1)
	collection.Each(func(i int, line Polyline) bool {
		d := distanceToLine(line, pt)
		if d < shortest {
			shortest = d
			idx = i
		}
		return shortest > 0
	})
	return idx, shortest
}

// Checker validates point against road classes. Zero value uses DefaultConversionParams
type Checker struct {
	Params ConversionParams
}

// Measure computes distance from pt to the closest road of single class
func (checker *Checker) Measure(pt GeoPoint, cfg ClassConfig) DistanceResult {
	idx, degrees := NearestPolyline(cfg.Roads, pt)
	result := DistanceResult{
		Class:        cfg.Class,
		Name:         cfg.name(),
		Degrees:      degrees,
		Meters:       ToMeters(degrees, pt.Lat, checker.Params),
		Threshold:    cfg.MinDistanceMeters,
		NearestIndex: idx,
		Vacuous:      idx < 0,
	}
	result.Passed = result.Meters > result.Threshold
	return result
}

// Check measures every class in given order. Report.Violation holds the first class which distance does not exceed its threshold
func (checker *Checker) Check(pt GeoPoint, classes []ClassConfig) Report {
	report := Report{
		Point:   pt,
		Results: make([]DistanceResult, 0, len(classes)),
	}
	for _, cfg := range classes {
		result := checker.Measure(pt, cfg)
		if result.Vacuous {
			log.Warn().
				Str("class", result.Name).
				Str("point", pt.String()).
				Msg("No roads loaded for class, check passes without constraint")
		}
		if !result.Passed && report.Violation == nil {
			report.Violation = &TooCloseError{
				Class:          result.Class,
				Name:           result.Name,
				DistanceMeters: result.Meters,
				MinimumMeters:  result.Threshold,
			}
		}
		report.Results = append(report.Results, result)
	}
	return report
}

// Check validates pt with default conversion params
func Check(pt GeoPoint, classes []ClassConfig) Report {
	checker := Checker{Params: DefaultConversionParams()}
	return checker.Check(pt, classes)
}

// Report is result of Check: either success or violation with details
type Report struct {
	Point     GeoPoint
	Results   []DistanceResult
	Violation *TooCloseError
}

// Passed reports whether every class passed
func (report Report) Passed() bool {
	return report.Violation == nil
}

// Err returns violation as error (nil when every class passed)
func (report Report) Err() error {
	if report.Violation == nil {
		return nil
	}
	return report.Violation
}

// ViolationIndex returns position of violated class in Results. -1 when every class passed
func (report Report) ViolationIndex() int {
	if report.Violation == nil {
		return -1
	}
	for i := range report.Results {
		if !report.Results[i].Passed {
			return i
		}
	}
	return -1
}
