package roadbuffer

import (
	"encoding/json"
	"os"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// geojsonRoot is used to peek at document root type before decoding it
type geojsonRoot struct {
	Type string `json:"type"`
}

// LoadGeoJSON extracts LineString and MultiLineString geometries of GeoJSON document
//
// Root may be FeatureCollection, single Feature or bare geometry.
// Each part of MultiLineString becomes separate polyline. Other geometry types and unlocated features are skipped
func LoadGeoJSON(fileName string) (*PolylineCollection, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, newIOError(fileName, err, "File read")
	}

	st := time.Now()
	root := geojsonRoot{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, newParseError(fileName, "", errors.Wrap(err, "Can't read GeoJSON root"))
	}
	var geometries []*geojson.Geometry
	switch root.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, newParseError(fileName, root.Type, errors.Wrap(err, "Can't unmarshal feature collection"))
		}
		geometries = make([]*geojson.Geometry, 0, len(fc.Features))
		for _, feature := range fc.Features {
			if feature == nil {
				geometries = append(geometries, nil)
				continue
			}
			geometries = append(geometries, feature.Geometry)
		}
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, newParseError(fileName, root.Type, errors.Wrap(err, "Can't unmarshal feature"))
		}
		geometries = []*geojson.Geometry{feature.Geometry}
	case string(geojson.GeometryPoint), string(geojson.GeometryMultiPoint),
		string(geojson.GeometryLineString), string(geojson.GeometryMultiLineString),
		string(geojson.GeometryPolygon), string(geojson.GeometryMultiPolygon),
		string(geojson.GeometryCollection):
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, newParseError(fileName, root.Type, errors.Wrap(err, "Can't unmarshal geometry"))
		}
		geometries = []*geojson.Geometry{geometry}
	default:
		return nil, newParseError(fileName, root.Type, errors.Errorf("unexpected GeoJSON root type '%s'", root.Type))
	}

	lines := []Polyline{}
	skipped := 0
	for _, geometry := range geometries {
		if geometry == nil {
			skipped++
			continue
		}
		extracted, err := geometryToPolylines(fileName, geometry)
		if err != nil {
			return nil, err
		}
		if len(extracted) == 0 {
			skipped++
		}
		lines = append(lines, extracted...)
	}
	collection, err := NewPolylineCollection(lines...)
	if err != nil {
		return nil, newParseError(fileName, "", err)
	}
	log.Debug().
		Str("file", fileName).
		Str("root", root.Type).
		Int("polylines", collection.Len()).
		Int("skipped", skipped).
		Dur("took", time.Since(st)).
		Msg("GeoJSON loaded")
	return collection, nil
}

func geometryToPolylines(fileName string, geometry *geojson.Geometry) ([]Polyline, error) {
	switch geometry.Type {
	case geojson.GeometryLineString:
		line, err := coordsToPolyline(fileName, geometry.LineString)
		if err != nil {
			return nil, err
		}
		return []Polyline{line}, nil
	case geojson.GeometryMultiLineString:
		lines := make([]Polyline, 0, len(geometry.MultiLineString))
		for _, part := range geometry.MultiLineString {
			line, err := coordsToPolyline(fileName, part)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
		return lines, nil
	case geojson.GeometryCollection:
		lines := []Polyline{}
		for _, child := range geometry.Geometries {
			if child == nil {
				continue
			}
			extracted, err := geometryToPolylines(fileName, child)
			if err != nil {
				return nil, err
			}
			lines = append(lines, extracted...)
		}
		return lines, nil
	default:
		return nil, nil
	}
}

func coordsToPolyline(fileName string, coords [][]float64) (Polyline, error) {
	line := make(Polyline, 0, len(coords))
	for _, pos := range coords {
		if len(pos) < 2 {
			return nil, newParseError(fileName, "", errors.Errorf("position must have at least 2 values, got %d", len(pos)))
		}
		line = append(line, GeoPoint{Lon: pos[0], Lat: pos[1]})
	}
	if err := line.Validate(); err != nil {
		return nil, newParseError(fileName, "", err)
	}
	return line, nil
}
