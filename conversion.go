package roadbuffer

import (
	"fmt"
	"math"
	"strings"
)

const (
	// EarthEquatorialRadiusMeters is WGS84 semi-major axis
	EarthEquatorialRadiusMeters = 6378137.0
	// FlatteningFactor is fixed b/a ratio used by degree-to-meters conversion
	FlatteningFactor = 0.99664719
)

// LatitudeMode defines how latitude is fed into tangent term of degree-to-meters conversion
type LatitudeMode uint16

const (
	// LATITUDE_RADIANS converts latitude from degrees to radians before tan()
	LATITUDE_RADIANS = LatitudeMode(iota + 1)
	// LATITUDE_LITERAL passes latitude degrees straight into tan() as the reference arithmetic does
	LATITUDE_LITERAL
)

func (iotaIdx LatitudeMode) String() string {
	names := [...]string{"radians", "literal"}
	if iotaIdx < LATITUDE_RADIANS || int(iotaIdx) > len(names) {
		return "unknown"
	}
	return names[iotaIdx-1]
}

// ParseLatitudeMode returns LatitudeMode for its textual name
func ParseLatitudeMode(str string) (LatitudeMode, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "radians":
		return LATITUDE_RADIANS, nil
	case "literal":
		return LATITUDE_LITERAL, nil
	default:
		return 0, fmt.Errorf("unknown latitude mode '%s'. Expected values: radians / literal", str)
	}
}

// ConversionParams holds constants for ToMeters
type ConversionParams struct {
	EarthRadius  float64
	Flattening   float64
	LatitudeMode LatitudeMode
}

// DefaultConversionParams returns WGS84 radius, fixed flattening factor and LATITUDE_RADIANS mode
func DefaultConversionParams() ConversionParams {
	return ConversionParams{
		EarthRadius:  EarthEquatorialRadiusMeters,
		Flattening:   FlatteningFactor,
		LatitudeMode: LATITUDE_RADIANS,
	}
}

// withDefaults fills zero-valued fields
func (params ConversionParams) withDefaults() ConversionParams {
	if params.EarthRadius <= 0 {
		params.EarthRadius = EarthEquatorialRadiusMeters
	}
	if params.Flattening <= 0 {
		params.Flattening = FlatteningFactor
	}
	if params.LatitudeMode == 0 {
		params.LatitudeMode = LATITUDE_RADIANS
	}
	return params
}

// skew returns latitude-dependent scale factor |flattening * tan(lat)|
func (params ConversionParams) skew(latitude float64) float64 {
	params = params.withDefaults()
	phi := latitude
	if params.LatitudeMode == LATITUDE_RADIANS {
		phi = degreesToRadians(latitude)
	}
	return math.Abs(params.Flattening * math.Tan(phi))
}

// ToMeters converts planar degree distance at given latitude into meters
//
// radians(deg) * R * 0.99664719 * |tan(lat)|
//
// First-order local approximation, valid only for small distances near given latitude.
// +Inf stays +Inf (no roads means no constraint)
func ToMeters(degreeDistance, latitude float64, params ConversionParams) float64 {
	if degreeDistance == 0 {
		return 0
	}
	if math.IsInf(degreeDistance, 1) {
		return degreeDistance
	}
	params = params.withDefaults()
	return degreesToRadians(degreeDistance) * params.EarthRadius * params.skew(latitude)
}

// ToDegrees is inverse of ToMeters. Returns +Inf when scale factor vanishes (e.g. at the equator)
func ToDegrees(meters, latitude float64, params ConversionParams) float64 {
	if meters == 0 {
		return 0
	}
	params = params.withDefaults()
	scale := params.EarthRadius * params.skew(latitude)
	if scale == 0 {
		return math.Inf(1)
	}
	return radiansTodegrees(meters / scale)
}
