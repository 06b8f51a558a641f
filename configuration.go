package roadbuffer

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_HIGHWAYS_SOURCE  = "geodata/Highways/WSDOT_-_Functional_Class_Data_for_State_Routes.kml"
	DEFAULT_ARTERIALS_SOURCE = "geodata/Arterials/WSDOT_-_Functional_Class_Data_for_Non-State_Routes.kml"
)

var (
	// DefaultPoint is point checked when none is provided
	DefaultPoint = GeoPoint{Lon: -122.3250276, Lat: 47.6236637}

	defaultMinDistanceByClass = map[RoadClass]float64{
		ROAD_CLASS_HIGHWAY:  MinDistanceHighwayMeters,
		ROAD_CLASS_ARTERIAL: MinDistanceArterialMeters,
	}
)

// Configuration is root of configuration file
type Configuration struct {
	EarthRadius  float64              `yaml:"earth_radius_m,omitempty"`
	Flattening   float64              `yaml:"flattening,omitempty"`
	LatitudeMode string               `yaml:"latitude_mode,omitempty"`
	Point        *PointConfiguration  `yaml:"point,omitempty"`
	Classes      []ClassConfiguration `yaml:"classes"`
}

// PointConfiguration is query point in decimal degrees
type PointConfiguration struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// ClassConfiguration describes single road class
type ClassConfiguration struct {
	Class       string   `yaml:"class"`
	Name        string   `yaml:"name,omitempty"`
	Source      string   `yaml:"source"`
	MinDistance *float64 `yaml:"min_distance_m,omitempty"` // Defaults to 210 for highway and 30 for arterial
}

// DefaultConfiguration returns highways and arterials sources with default thresholds
func DefaultConfiguration() *Configuration {
	return &Configuration{
		EarthRadius:  EarthEquatorialRadiusMeters,
		Flattening:   FlatteningFactor,
		LatitudeMode: LATITUDE_RADIANS.String(),
		Point:        &PointConfiguration{Lon: DefaultPoint.Lon, Lat: DefaultPoint.Lat},
		Classes: []ClassConfiguration{
			{Class: ROAD_CLASS_HIGHWAY.String(), Source: DEFAULT_HIGHWAYS_SOURCE},
			{Class: ROAD_CLASS_ARTERIAL.String(), Source: DEFAULT_ARTERIALS_SOURCE},
		},
	}
}

// LoadConfiguration reads YAML configuration file. Missing fields are taken from DefaultConfiguration
func LoadConfiguration(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read configuration file")
	}

	cfg := DefaultConfiguration()
	cfg.Classes = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "Can't parse configuration file")
	}
	if len(cfg.Classes) == 0 {
		cfg.Classes = DefaultConfiguration().Classes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks road classes, thresholds and conversion settings
func (cfg *Configuration) Validate() error {
	if _, err := cfg.ConversionParams(); err != nil {
		return err
	}
	if len(cfg.Classes) == 0 {
		return errors.New("no road classes configured")
	}
	for i := range cfg.Classes {
		class := &cfg.Classes[i]
		if _, err := ParseRoadClass(class.Class); err != nil {
			return errors.Wrapf(err, "class #%d", i)
		}
		if class.Source == "" {
			return errors.Errorf("class #%d (%s): empty source", i, class.Class)
		}
		if class.MinDistance != nil && *class.MinDistance < 0 {
			return errors.Errorf("class #%d (%s): negative minimum distance %f", i, class.Class, *class.MinDistance)
		}
	}
	return nil
}

// ConversionParams returns degree-to-meters conversion settings
func (cfg *Configuration) ConversionParams() (ConversionParams, error) {
	mode, err := ParseLatitudeMode(cfg.LatitudeMode)
	if err != nil {
		return ConversionParams{}, err
	}
	if cfg.EarthRadius < 0 {
		return ConversionParams{}, errors.Errorf("negative earth radius %f", cfg.EarthRadius)
	}
	if cfg.Flattening < 0 {
		return ConversionParams{}, errors.Errorf("negative flattening factor %f", cfg.Flattening)
	}
	params := ConversionParams{
		EarthRadius:  cfg.EarthRadius,
		Flattening:   cfg.Flattening,
		LatitudeMode: mode,
	}
	return params.withDefaults(), nil
}

// QueryPoint returns configured point or DefaultPoint
func (cfg *Configuration) QueryPoint() GeoPoint {
	if cfg.Point == nil {
		return DefaultPoint
	}
	return GeoPoint{Lon: cfg.Point.Lon, Lat: cfg.Point.Lat}
}

// LoadRoads loads geometry of every configured class. Should be called once at startup:
// returned collections are immutable and could be shared between checks
func (cfg *Configuration) LoadRoads() ([]ClassConfig, error) {
	classes := make([]ClassConfig, 0, len(cfg.Classes))
	for i, classCfg := range cfg.Classes {
		class, err := ParseRoadClass(classCfg.Class)
		if err != nil {
			return nil, errors.Wrapf(err, "class #%d", i)
		}
		minDistance := defaultMinDistanceByClass[class]
		if classCfg.MinDistance != nil {
			minDistance = *classCfg.MinDistance
		}
		st := time.Now()
		roads, err := LoadForClass(classCfg.Source, class)
		if err != nil {
			return nil, err
		}
		name := classCfg.Name
		if name == "" {
			name = class.String()
		}
		log.Info().
			Str("class", name).
			Str("source", classCfg.Source).
			Int("polylines", roads.Len()).
			Float64("total_length_deg", roads.TotalLength()).
			Float64("min_distance_m", minDistance).
			Dur("took", time.Since(st)).
			Msg("Roads loaded")
		classes = append(classes, ClassConfig{
			Class:             class,
			Name:              name,
			MinDistanceMeters: minDistance,
			Roads:             roads,
		})
	}
	return classes, nil
}
