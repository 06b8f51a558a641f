package roadbuffer

import (
	"fmt"
	"strings"
)

// RoadClass is category of route geometry with its own minimum safe distance
type RoadClass uint16

const (
	ROAD_CLASS_HIGHWAY = RoadClass(iota + 1)
	ROAD_CLASS_ARTERIAL
)

func (iotaIdx RoadClass) String() string {
	return [...]string{"highway", "arterial"}[iotaIdx-1]
}

// ParseRoadClass returns RoadClass for its textual name
func ParseRoadClass(str string) (RoadClass, error) {
	if found, ok := roadClasses[strings.ToLower(strings.TrimSpace(str))]; ok {
		return found, nil
	}
	return 0, fmt.Errorf("unknown road class '%s'. Expected values: highway / arterial", str)
}

var (
	roadClasses = map[string]RoadClass{
		"highway":  ROAD_CLASS_HIGHWAY,
		"arterial": ROAD_CLASS_ARTERIAL,
	}
)
