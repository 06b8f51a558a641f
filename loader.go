package roadbuffer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads polylines from KML (.kml), GeoJSON (.geojson, .json) or ESRI shapefile (.shp)
func Load(fileName string) (*PolylineCollection, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".kml":
		return LoadKML(fileName)
	case ".geojson", ".json":
		return LoadGeoJSON(fileName)
	case ".shp":
		return LoadShapefile(fileName)
	default:
		return nil, newParseError(fileName, "", fmt.Errorf("File extension '%s' is not handled yet", filepath.Ext(fileName)))
	}
}

// LoadForClass is Load which also accepts OSM files (.osm, .xml, .pbf). OSM ways are filtered by road class
func LoadForClass(fileName string, class RoadClass) (*PolylineCollection, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".osm", ".xml", ".pbf":
		return LoadOSM(fileName, class)
	default:
		return Load(fileName)
	}
}
