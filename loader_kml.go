package roadbuffer

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

const (
	kmlLineString  = "LineString"
	kmlCoordinates = "coordinates"
)

// LoadKML extracts every LineString of KML document regardless of nesting depth
//
// Coordinates payload is "<lon>,<lat>[,<elev>] <lon>,<lat>[,<elev>] ...". Elevation is ignored.
// Document with zero LineString elements gives empty collection
func LoadKML(fileName string) (*PolylineCollection, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, newIOError(fileName, err, "File open")
	}
	defer file.Close()

	st := time.Now()
	lines, err := decodeKML(fileName, file)
	if err != nil {
		return nil, err
	}
	collection, err := NewPolylineCollection(lines...)
	if err != nil {
		return nil, newParseError(fileName, "", err)
	}
	log.Debug().
		Str("file", fileName).
		Int("polylines", collection.Len()).
		Dur("took", time.Since(st)).
		Msg("KML loaded")
	return collection, nil
}

// decodeKML streams tokens of KML document. Namespaces are ignored.
// Non-UTF-8 documents are decoded according to their XML declaration
func decodeKML(fileName string, r io.Reader) ([]Polyline, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	lines := []Polyline{}

	inLine := false
	inCoordinates := false
	hasCoordinates := false
	var payload strings.Builder
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newParseError(fileName, "", errors.Wrap(err, "Can't read KML token"))
		}
		switch element := token.(type) {
		case xml.StartElement:
			switch element.Name.Local {
			case kmlLineString:
				if inLine {
					return nil, newParseError(fileName, "", errors.New("nested LineString"))
				}
				inLine = true
				hasCoordinates = false
			case kmlCoordinates:
				if inLine {
					if hasCoordinates || inCoordinates {
						return nil, newParseError(fileName, "", errors.New("LineString with more than one coordinates element"))
					}
					inCoordinates = true
					payload.Reset()
				}
			}
		case xml.CharData:
			if inCoordinates {
				payload.Write(element)
			}
		case xml.EndElement:
			switch element.Name.Local {
			case kmlCoordinates:
				if !inCoordinates {
					continue
				}
				inCoordinates = false
				hasCoordinates = true
				line, err := parseCoordinates(fileName, payload.String())
				if err != nil {
					return nil, err
				}
				lines = append(lines, line)
			case kmlLineString:
				if !hasCoordinates {
					return nil, newParseError(fileName, "", errors.New("LineString without coordinates"))
				}
				inLine = false
			}
		}
	}
	return lines, nil
}

// parseCoordinates parses whitespace-separated list of comma-separated tuples
func parseCoordinates(fileName, raw string) (Polyline, error) {
	tuples := strings.Fields(raw)
	line := make(Polyline, 0, len(tuples))
	for _, tuple := range tuples {
		pt, err := parseTuple(tuple)
		if err != nil {
			return nil, newParseError(fileName, tuple, err)
		}
		line = append(line, pt)
	}
	if err := line.Validate(); err != nil {
		return nil, newParseError(fileName, strings.TrimSpace(raw), err)
	}
	return line, nil
}

// parseTuple parses "<lon>,<lat>[,<elev>]". Elevation must be numeric as well but it is dropped
func parseTuple(tuple string) (GeoPoint, error) {
	fields := strings.Split(tuple, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return GeoPoint{}, errors.Errorf("expected 2 or 3 comma-separated fields, got %d", len(fields))
	}
	values := [3]float64{}
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return GeoPoint{}, errors.Wrapf(err, "field #%d", i)
		}
		values[i] = value
	}
	return GeoPoint{Lon: values[0], Lat: values[1]}, nil
}
