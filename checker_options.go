package roadbuffer

import (
	"fmt"
)

func (checker *Checker) String() string {
	params := checker.Params.withDefaults()
	return fmt.Sprintf(`
Checker parameters:
	earth_radius_m: %f
	flattening: %f
	latitude_mode: '%s'
	`,
		params.EarthRadius,
		params.Flattening,
		params.LatitudeMode,
	)
}

// NewChecker returns Checker with DefaultConversionParams modified by options
func NewChecker(options ...func(*Checker)) *Checker {
	checker := &Checker{
		Params: DefaultConversionParams(),
	}
	for _, option := range options {
		option(checker)
	}
	checker.Params = checker.Params.withDefaults()
	return checker
}

func WithConversionParams(params ConversionParams) func(*Checker) {
	return func(checker *Checker) {
		checker.Params = params
	}
}

func WithEarthRadius(earthRadius float64) func(*Checker) {
	return func(checker *Checker) {
		checker.Params.EarthRadius = earthRadius
	}
}

func WithFlattening(flattening float64) func(*Checker) {
	return func(checker *Checker) {
		checker.Params.Flattening = flattening
	}
}

func WithLatitudeMode(latitudeMode LatitudeMode) func(*Checker) {
	return func(checker *Checker) {
		checker.Params.LatitudeMode = latitudeMode
	}
}
