package roadbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineValidate(t *testing.T) {
	assert.ErrorIs(t, Polyline{}.Validate(), ErrDegeneratePolyline)
	assert.ErrorIs(t, Polyline{{Lon: 1, Lat: 1}}.Validate(), ErrDegeneratePolyline)
	assert.NoError(t, Polyline{{Lon: 1, Lat: 1}, {Lon: 1, Lat: 1}}.Validate())
}

func TestNewPolylineCollectionRejectsDegenerate(t *testing.T) {
	_, err := NewPolylineCollection(
		Polyline{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}},
		Polyline{{Lon: 0, Lat: 0}},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegeneratePolyline)
	assert.Contains(t, err.Error(), "polyline #1")
}

func TestPolylineCollectionImmutable(t *testing.T) {
	source := Polyline{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}
	collection, err := NewPolylineCollection(source)
	require.NoError(t, err)

	source[0] = GeoPoint{Lon: 50, Lat: 50}
	assert.Equal(t, GeoPoint{Lon: 0, Lat: 0}, collection.Polyline(0)[0])

	copied := collection.Polyline(0)
	copied[1] = GeoPoint{Lon: 50, Lat: 50}
	assert.Equal(t, GeoPoint{Lon: 1, Lat: 1}, collection.Polyline(0)[1])
}

func TestPolylineCollectionEach(t *testing.T) {
	collection, err := NewPolylineCollection(
		Polyline{{Lon: 0, Lat: 0}, {Lon: 3, Lat: 4}},
		Polyline{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 1}},
		Polyline{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 2}},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, collection.Len())
	assert.Equal(t, 8.0, collection.TotalLength())

	visited := []int{}
	collection.Each(func(i int, _ Polyline) bool {
		visited = append(visited, i)
		return i < 1
	})
	assert.Equal(t, []int{0, 1}, visited)

	var empty *PolylineCollection
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0.0, empty.TotalLength())
}

func TestConverters(t *testing.T) {
	line := Polyline{{Lon: 1, Lat: 2}, {Lon: 3, Lat: 4}}
	assert.Equal(t, "LINESTRING(1 2,3 4)", PrepareWKTLinestring(line))
	assert.Equal(t, "POINT(1 2)", PrepareWKTPoint(GeoPoint{Lon: 1, Lat: 2}))
	assert.JSONEq(t, `{"type":"LineString","coordinates":[[1,2],[3,4]]}`, PrepareGeoJSONLinestring(line))
	assert.JSONEq(t, `{"type":"Point","coordinates":[1,2]}`, PrepareGeoJSONPoint(GeoPoint{Lon: 1, Lat: 2}))
}

func TestRoadClass(t *testing.T) {
	class, err := ParseRoadClass(" Arterial ")
	require.NoError(t, err)
	assert.Equal(t, ROAD_CLASS_ARTERIAL, class)
	assert.Equal(t, "highway", ROAD_CLASS_HIGHWAY.String())
	_, err = ParseRoadClass("footpath")
	assert.Error(t, err)

	highway, ok := getHighwayType("trunk_link").RoadClass()
	assert.True(t, ok)
	assert.Equal(t, ROAD_CLASS_HIGHWAY, highway)
	arterial, ok := getHighwayType("secondary").RoadClass()
	assert.True(t, ok)
	assert.Equal(t, ROAD_CLASS_ARTERIAL, arterial)
	_, ok = getHighwayType("residential").RoadClass()
	assert.False(t, ok)
	assert.Equal(t, HighwayType(0), getHighwayType("footway"))
}
