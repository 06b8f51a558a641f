package roadbuffer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCollection(t *testing.T, lines ...Polyline) *PolylineCollection {
	t.Helper()
	collection, err := NewPolylineCollection(lines...)
	require.NoError(t, err)
	return collection
}

// verticalLine returns line parallel to meridian which is given amount of meters away (east) from pt
func verticalLine(pt GeoPoint, meters float64) Polyline {
	lon := pt.Lon + ToDegrees(meters, pt.Lat, DefaultConversionParams())
	return Polyline{
		{Lon: lon, Lat: pt.Lat - 1},
		{Lon: lon, Lat: pt.Lat + 1},
	}
}

func TestMinimumDistanceDegreesOnLine(t *testing.T) {
	collection := mustCollection(t, Polyline{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}})
	assert.Equal(t, 0.0, MinimumDistanceDegrees(collection, GeoPoint{Lon: 0, Lat: 0.5}))
}

func TestMinimumDistanceDegreesPerpendicular(t *testing.T) {
	collection := mustCollection(t, Polyline{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}})
	assert.Equal(t, 1.0, MinimumDistanceDegrees(collection, GeoPoint{Lon: 0.5, Lat: 1}))
}

func TestMinimumDistanceDegreesZeroIffOnSegment(t *testing.T) {
	collection := mustCollection(t,
		Polyline{{Lon: 0, Lat: 0}, {Lon: 2, Lat: 2}},
		Polyline{{Lon: 10, Lat: 10}, {Lon: 12, Lat: 10}, {Lon: 12, Lat: 14}},
	)
	onSegments := []GeoPoint{
		{Lon: 1, Lat: 1},
		{Lon: 0, Lat: 0},
		{Lon: 11, Lat: 10},
		{Lon: 12, Lat: 13},
	}
	for _, pt := range onSegments {
		assert.Equal(t, 0.0, MinimumDistanceDegrees(collection, pt), "point %s", pt)
	}
	offSegments := []GeoPoint{
		{Lon: 1, Lat: 1.5},
		{Lon: 3, Lat: 3},
		{Lon: 11, Lat: 9.99},
		{Lon: 12.5, Lat: 12},
	}
	for _, pt := range offSegments {
		assert.Greater(t, MinimumDistanceDegrees(collection, pt), 0.0, "point %s", pt)
	}
}

func TestMinimumDistanceDegreesPicksClosest(t *testing.T) {
	collection := mustCollection(t,
		Polyline{{Lon: 0, Lat: 5}, {Lon: 1, Lat: 5}},
		Polyline{{Lon: 0, Lat: 2}, {Lon: 1, Lat: 2}},
		Polyline{{Lon: 0, Lat: -3}, {Lon: 1, Lat: -3}},
	)
	idx, deg := NearestPolyline(collection, GeoPoint{Lon: 0.5, Lat: 0})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2.0, deg)
}

func TestMinimumDistanceDegreesEmpty(t *testing.T) {
	empty := mustCollection(t)
	assert.True(t, math.IsInf(MinimumDistanceDegrees(empty, GeoPoint{Lon: 1, Lat: 1}), 1))
	assert.True(t, math.IsInf(MinimumDistanceDegrees(nil, GeoPoint{Lon: 1, Lat: 1}), 1))
	idx, _ := NearestPolyline(empty, GeoPoint{})
	assert.Equal(t, -1, idx)
}

func TestMinimumDistanceDegreesNonNegative(t *testing.T) {
	collection := mustCollection(t,
		Polyline{{Lon: -122.33, Lat: 47.62}, {Lon: -122.32, Lat: 47.63}, {Lon: -122.31, Lat: 47.61}},
		Polyline{{Lon: -122.35, Lat: 47.60}, {Lon: -122.34, Lat: 47.60}},
	)
	for lon := -122.4; lon < -122.3; lon += 0.013 {
		for lat := 47.55; lat < 47.7; lat += 0.017 {
			assert.GreaterOrEqual(t, MinimumDistanceDegrees(collection, GeoPoint{Lon: lon, Lat: lat}), 0.0)
		}
	}
}

func TestCheckArterialTooClose(t *testing.T) {
	pt := GeoPoint{Lon: 0, Lat: 45}
	classes := []ClassConfig{
		{Class: ROAD_CLASS_HIGHWAY, MinDistanceMeters: MinDistanceHighwayMeters, Roads: mustCollection(t, verticalLine(pt, 500))},
		{Class: ROAD_CLASS_ARTERIAL, MinDistanceMeters: MinDistanceArterialMeters, Roads: mustCollection(t, verticalLine(pt, 10))},
	}
	report := Check(pt, classes)
	require.False(t, report.Passed())
	require.NotNil(t, report.Violation)
	assert.Equal(t, ROAD_CLASS_ARTERIAL, report.Violation.Class)
	assert.Equal(t, "arterial", report.Violation.Name)
	assert.InDelta(t, 10.0, report.Violation.DistanceMeters, 1e-6)
	assert.Equal(t, 30.0, report.Violation.MinimumMeters)
	assert.Equal(t, 1, report.ViolationIndex())

	err := report.Err()
	require.Error(t, err)
	var tooClose *TooCloseError
	require.True(t, errors.As(err, &tooClose))
	assert.Contains(t, err.Error(), "arterial")
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "30")

	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Passed)
	assert.InDelta(t, 500.0, report.Results[0].Meters, 1e-6)
	assert.False(t, report.Results[1].Passed)
}

func TestCheckFirstViolationWins(t *testing.T) {
	pt := GeoPoint{Lon: 0, Lat: 45}
	classes := []ClassConfig{
		{Class: ROAD_CLASS_HIGHWAY, MinDistanceMeters: 210, Roads: mustCollection(t, verticalLine(pt, 100))},
		{Class: ROAD_CLASS_ARTERIAL, MinDistanceMeters: 30, Roads: mustCollection(t, verticalLine(pt, 10))},
	}
	report := Check(pt, classes)
	require.NotNil(t, report.Violation)
	assert.Equal(t, ROAD_CLASS_HIGHWAY, report.Violation.Class)
	assert.Equal(t, 0, report.ViolationIndex())
	assert.Contains(t, report.Violation.Error(), "closest highway is too close: 100.00m, minimum: 210.00m")
}

func TestCheckEqualityFails(t *testing.T) {
	pt := GeoPoint{Lon: 0, Lat: 45}
	roads := mustCollection(t, verticalLine(pt, 50))
	meters := ToMeters(MinimumDistanceDegrees(roads, pt), pt.Lat, DefaultConversionParams())

	atThreshold := Check(pt, []ClassConfig{{Class: ROAD_CLASS_ARTERIAL, MinDistanceMeters: meters, Roads: roads}})
	assert.False(t, atThreshold.Passed())

	belowThreshold := Check(pt, []ClassConfig{{Class: ROAD_CLASS_ARTERIAL, MinDistanceMeters: meters - 1e-6, Roads: roads}})
	assert.True(t, belowThreshold.Passed())
}

func TestCheckEmptyHighwaysVacuous(t *testing.T) {
	pt := GeoPoint{Lon: 0, Lat: 45}
	classes := []ClassConfig{
		{Class: ROAD_CLASS_HIGHWAY, MinDistanceMeters: MinDistanceHighwayMeters, Roads: mustCollection(t)},
		{Class: ROAD_CLASS_ARTERIAL, MinDistanceMeters: MinDistanceArterialMeters, Roads: mustCollection(t, verticalLine(pt, 1000))},
	}
	report := Check(pt, classes)
	require.True(t, report.Passed())
	assert.NoError(t, report.Err())
	assert.Equal(t, -1, report.ViolationIndex())
	require.Len(t, report.Results, 2)

	highway := report.Results[0]
	assert.True(t, highway.Vacuous)
	assert.True(t, highway.Passed)
	assert.Equal(t, -1, highway.NearestIndex)
	assert.True(t, math.IsInf(highway.Meters, 1))

	arterial := report.Results[1]
	assert.False(t, arterial.Vacuous)
	assert.True(t, arterial.Passed)
	assert.InDelta(t, 1000.0, arterial.Meters, 1e-6)
	assert.Equal(t, 0, arterial.NearestIndex)
}

func TestCheckerLiteralLatitude(t *testing.T) {
	pt := GeoPoint{Lon: -122.3250276, Lat: 47.6236637}
	roads := mustCollection(t, Polyline{{Lon: -122.3240276, Lat: 47.0}, {Lon: -122.3240276, Lat: 48.0}})
	params := DefaultConversionParams()
	params.LatitudeMode = LATITUDE_LITERAL
	checker := NewChecker(WithConversionParams(params))

	result := checker.Measure(pt, ClassConfig{Class: ROAD_CLASS_ARTERIAL, MinDistanceMeters: 30, Roads: roads})
	deg := MinimumDistanceDegrees(roads, pt)
	assert.InDelta(t, ToMeters(deg, pt.Lat, params), result.Meters, 1e-9)
	assert.InDelta(t, deg, result.Degrees, 1e-15)
}

func TestClassConfigName(t *testing.T) {
	assert.Equal(t, "state route", ClassConfig{Class: ROAD_CLASS_HIGHWAY, Name: "state route"}.name())
	assert.Equal(t, "highway", ClassConfig{Class: ROAD_CLASS_HIGHWAY}.name())
	assert.Equal(t, "road", ClassConfig{}.name())
}
