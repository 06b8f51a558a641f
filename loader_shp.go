package roadbuffer

import (
	"os"
	"time"

	"github.com/jonas-p/go-shp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LoadShapefile extracts PolyLine shapes (plain, M and Z variants) of ESRI shapefile
//
// One polyline per part. Other shape types are skipped
func LoadShapefile(fileName string) (*PolylineCollection, error) {
	if _, err := os.Stat(fileName); err != nil {
		return nil, newIOError(fileName, err, "File stat")
	}
	reader, err := shp.Open(fileName)
	if err != nil {
		return nil, newParseError(fileName, "", errors.Wrap(err, "Can't open shapefile"))
	}
	defer func() { _ = reader.Close() }()

	st := time.Now()
	lines := []Polyline{}
	skipped := 0
	for reader.Next() {
		idx, shape := reader.Shape()
		if shape == nil {
			skipped++
			continue
		}
		var numParts int32
		var parts []int32
		var points []shp.Point
		switch s := shape.(type) {
		case *shp.PolyLine:
			numParts, parts, points = s.NumParts, s.Parts, s.Points
		case *shp.PolyLineM:
			numParts, parts, points = s.NumParts, s.Parts, s.Points
		case *shp.PolyLineZ:
			numParts, parts, points = s.NumParts, s.Parts, s.Points
		default:
			skipped++
			continue
		}
		extracted, err := shapePartsToPolylines(numParts, parts, points)
		if err != nil {
			return nil, newParseError(fileName, "", errors.Wrapf(err, "shape #%d", idx))
		}
		lines = append(lines, extracted...)
	}
	if err := reader.Err(); err != nil {
		return nil, newParseError(fileName, "", errors.Wrap(err, "Can't read shapes"))
	}

	collection, err := NewPolylineCollection(lines...)
	if err != nil {
		return nil, newParseError(fileName, "", err)
	}
	log.Debug().
		Str("file", fileName).
		Int("polylines", collection.Len()).
		Int("skipped_shapes", skipped).
		Dur("took", time.Since(st)).
		Msg("Shapefile loaded")
	return collection, nil
}

// shapePartsToPolylines splits flat point array into parts
func shapePartsToPolylines(numParts int32, parts []int32, points []shp.Point) ([]Polyline, error) {
	if int(numParts) != len(parts) {
		return nil, errors.Errorf("declared %d parts, got %d", numParts, len(parts))
	}
	lines := make([]Polyline, 0, numParts)
	for i := int32(0); i < numParts; i++ {
		start := parts[i]
		end := int32(len(points))
		if i+1 < numParts {
			end = parts[i+1]
		}
		if start < 0 || start > end || int(end) > len(points) {
			return nil, errors.Errorf("part #%d has bad bounds [%d, %d)", i, start, end)
		}
		line := make(Polyline, 0, end-start)
		for j := start; j < end; j++ {
			line = append(line, GeoPoint{Lon: points[j].X, Lat: points[j].Y})
		}
		if err := line.Validate(); err != nil {
			return nil, errors.Wrapf(err, "part #%d", i)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
