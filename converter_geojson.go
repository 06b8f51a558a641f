package roadbuffer

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/rs/zerolog/log"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(line Polyline) string {
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].Lon, line[i].Lat}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		log.Warn().Err(err).Msg("Can not convert geometry to geojson format")
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt GeoPoint) string {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
	if err != nil {
		log.Warn().Err(err).Msg("Can not convert geometry to geojson format")
		return ""
	}
	return string(b)
}
