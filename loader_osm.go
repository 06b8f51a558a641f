package roadbuffer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// OSMScanner is common interface of osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// wayData is highway way that passed road class filter
type wayData struct {
	ID      osm.WayID
	Highway HighwayType
	Nodes   []osm.NodeID
}

// newScanner guesses file extension and prepares correct scanner
func newScanner(fileName string, r io.Reader) (OSMScanner, error) {
	ext := filepath.Ext(fileName)
	switch strings.ToLower(ext) {
	case ".osm", ".xml":
		return osmxml.New(context.Background(), r), nil
	case ".pbf":
		return osmpbf.New(context.Background(), r, 4), nil
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, fileName)
	}
}

// LoadOSM extracts ways which 'highway' tag belongs to given road class from OSM XML (.osm, .xml) or PBF (.pbf) file
func LoadOSM(fileName string, class RoadClass) (*PolylineCollection, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, newIOError(fileName, err, "File open")
	}
	defer file.Close()

	/* Process ways */
	st := time.Now()
	ways := []wayData{}
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scannerWays, err := newScanner(fileName, file)
		if err != nil {
			return nil, newParseError(fileName, "", err)
		}
		defer scannerWays.Close()

		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != osm.TypeWay {
				continue
			}
			way := obj.(*osm.Way)
			highway := getHighwayType(way.Tags.Find("highway"))
			if highway == 0 {
				continue
			}
			wayClass, ok := highway.RoadClass()
			if !ok || wayClass != class {
				continue
			}
			preparedWay := wayData{
				ID:      way.ID,
				Highway: highway,
				Nodes:   make([]osm.NodeID, 0, len(way.Nodes)),
			}
			for _, node := range way.Nodes {
				nodesSeen[node.ID] = struct{}{}
				preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
			}
			ways = append(ways, preparedWay)
		}
		if err := scannerWays.Err(); err != nil {
			return nil, newParseError(fileName, "", errors.Wrap(err, "Scanner error on Ways"))
		}
	}
	log.Debug().Str("file", fileName).Int("ways", len(ways)).Dur("took", time.Since(st)).Msg("OSM ways scanned")

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, newIOError(fileName, err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	st = time.Now()
	nodes := make(map[osm.NodeID]GeoPoint, len(nodesSeen))
	if len(nodesSeen) > 0 {
		scannerNodes, err := newScanner(fileName, file)
		if err != nil {
			return nil, newParseError(fileName, "", err)
		}
		defer scannerNodes.Close()

		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != osm.TypeNode {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; ok {
				delete(nodesSeen, node.ID)
				nodes[node.ID] = GeoPoint{Lon: node.Lon, Lat: node.Lat}
			}
		}
		if err := scannerNodes.Err(); err != nil {
			return nil, newParseError(fileName, "", errors.Wrap(err, "Scanner error on Nodes"))
		}
	}
	log.Debug().Str("file", fileName).Int("nodes", len(nodes)).Dur("took", time.Since(st)).Msg("OSM nodes scanned")

	lines := make([]Polyline, 0, len(ways))
	for _, way := range ways {
		line := make(Polyline, 0, len(way.Nodes))
		for _, nodeID := range way.Nodes {
			pt, ok := nodes[nodeID]
			if !ok {
				return nil, newParseError(fileName, fmt.Sprintf("%d", nodeID), errors.Errorf("way %d references missing node", way.ID))
			}
			line = append(line, pt)
		}
		if err := line.Validate(); err != nil {
			return nil, newParseError(fileName, fmt.Sprintf("%d", way.ID), errors.Wrapf(err, "way (%s)", way.Highway))
		}
		lines = append(lines, line)
	}
	collection, err := NewPolylineCollection(lines...)
	if err != nil {
		return nil, newParseError(fileName, "", err)
	}
	log.Debug().
		Str("file", fileName).
		Str("class", class.String()).
		Int("polylines", collection.Len()).
		Msg("OSM loaded")
	return collection, nil
}
