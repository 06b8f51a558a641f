package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LdDl/roadbuffer"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

// Options of command line interface
type Options struct {
	Logger Logger `group:"Logger options"`

	ConfigFile   string   `short:"c" long:"config"        env:"CONFIG_FILE"   description:"Path to YAML configuration file (optional)"`
	Lon          *float64 `long:"lon"                     env:"POINT_LON"     description:"Longitude of point to check"`
	Lat          *float64 `long:"lat"                     env:"POINT_LAT"     description:"Latitude of point to check"`
	Highways     string   `long:"highways"                env:"HIGHWAYS_FILE" description:"Highways geometry file (.kml, .geojson, .shp, .osm, .pbf)"`
	Arterials    string   `long:"arterials"               env:"ARTERIALS_FILE" description:"Arterials geometry file (.kml, .geojson, .shp, .osm, .pbf)"`
	LatitudeMode string   `long:"latitude-mode"           env:"LATITUDE_MODE" description:"How latitude enters tan() of degree-to-meters conversion" choice:"radians" choice:"literal"`
	GeomFormat   string   `long:"geomf"                   description:"Format of nearest road geometry printed with --show-nearest" choice:"wkt" choice:"geojson" default:"wkt"`
	ShowNearest  bool     `long:"show-nearest"            description:"Print geometry of the nearest road of every class"`
	ExitCode     bool     `long:"exit-code"               description:"Exit with code 2+N when class N (in configuration order) is too close"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := buildConfiguration(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	params, err := cfg.ConversionParams()
	if err != nil {
		log.Fatal().Err(err).Msg("Bad conversion parameters")
	}

	// Load once, share for the lifetime of process
	classes, err := cfg.LoadRoads()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load roads")
	}

	pt := cfg.QueryPoint()
	report := roadbuffer.NewChecker(roadbuffer.WithConversionParams(params)).Check(pt, classes)
	printReport(os.Stdout, report, classes, opts)

	if report.Passed() || !opts.ExitCode {
		return
	}
	os.Exit(2 + report.ViolationIndex())
}

// buildConfiguration merges configuration file (or defaults) with command line overrides
func buildConfiguration(opts Options) (*roadbuffer.Configuration, error) {
	cfg := roadbuffer.DefaultConfiguration()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = roadbuffer.LoadConfiguration(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
	}
	if opts.Lon != nil || opts.Lat != nil {
		pt := cfg.QueryPoint()
		if opts.Lon != nil {
			pt.Lon = *opts.Lon
		}
		if opts.Lat != nil {
			pt.Lat = *opts.Lat
		}
		cfg.Point = &roadbuffer.PointConfiguration{Lon: pt.Lon, Lat: pt.Lat}
	}
	if opts.LatitudeMode != "" {
		cfg.LatitudeMode = opts.LatitudeMode
	}
	overrideSource(cfg, roadbuffer.ROAD_CLASS_HIGHWAY, opts.Highways)
	overrideSource(cfg, roadbuffer.ROAD_CLASS_ARTERIAL, opts.Arterials)
	return cfg, cfg.Validate()
}

func overrideSource(cfg *roadbuffer.Configuration, class roadbuffer.RoadClass, source string) {
	if source == "" {
		return
	}
	for i := range cfg.Classes {
		if strings.EqualFold(cfg.Classes[i].Class, class.String()) {
			cfg.Classes[i].Source = source
			return
		}
	}
	cfg.Classes = append(cfg.Classes, roadbuffer.ClassConfiguration{Class: class.String(), Source: source})
}

// printReport prints violation message or per-class distances
func printReport(w io.Writer, report roadbuffer.Report, classes []roadbuffer.ClassConfig, opts Options) {
	if report.Violation != nil {
		fmt.Fprintln(w, report.Violation.Error())
	} else {
		for _, result := range report.Results {
			if result.Vacuous {
				fmt.Fprintf(w, "closest %s: no roads loaded, minimum: %.2fm\n", result.Name, result.Threshold)
				continue
			}
			fmt.Fprintf(w, "closest %s: %.2fm, minimum: %.2fm\n", result.Name, result.Meters, result.Threshold)
		}
	}
	if !opts.ShowNearest {
		return
	}
	geoJSON := strings.ToLower(opts.GeomFormat) == "geojson"
	if geoJSON {
		fmt.Fprintf(w, "point: %s\n", roadbuffer.PrepareGeoJSONPoint(report.Point))
	} else {
		fmt.Fprintf(w, "point: %s\n", roadbuffer.PrepareWKTPoint(report.Point))
	}
	for i, result := range report.Results {
		if result.NearestIndex < 0 {
			continue
		}
		line := classes[i].Roads.Polyline(result.NearestIndex)
		geom := roadbuffer.PrepareWKTLinestring(line)
		if geoJSON {
			geom = roadbuffer.PrepareGeoJSONLinestring(line)
		}
		fmt.Fprintf(w, "nearest %s: %s\n", result.Name, geom)
	}
}
