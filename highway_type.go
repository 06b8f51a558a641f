package roadbuffer

// HighwayType is value of OSM 'highway' tag
type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_UNCLASSIFIED
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "unclassified"}[iotaIdx-1]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

// RoadClass returns road class for OSM highway type. Second value is false for minor roads
func (iotaIdx HighwayType) RoadClass() (RoadClass, bool) {
	class, ok := roadClassByHighway[iotaIdx]
	return class, ok
}

var (
	// State routes are motorways and trunks, non-state arterials are primary..tertiary
	roadClassByHighway = map[HighwayType]RoadClass{
		HIGHWAY_MOTORWAY:       ROAD_CLASS_HIGHWAY,
		HIGHWAY_MOTORWAY_LINK:  ROAD_CLASS_HIGHWAY,
		HIGHWAY_TRUNK:          ROAD_CLASS_HIGHWAY,
		HIGHWAY_TRUNK_LINK:     ROAD_CLASS_HIGHWAY,
		HIGHWAY_PRIMARY:        ROAD_CLASS_ARTERIAL,
		HIGHWAY_PRIMARY_LINK:   ROAD_CLASS_ARTERIAL,
		HIGHWAY_SECONDARY:      ROAD_CLASS_ARTERIAL,
		HIGHWAY_SECONDARY_LINK: ROAD_CLASS_ARTERIAL,
		HIGHWAY_TERTIARY:       ROAD_CLASS_ARTERIAL,
		HIGHWAY_TERTIARY_LINK:  ROAD_CLASS_ARTERIAL,
	}

	highwaysTypes = map[string]HighwayType{
		"motorway":       HIGHWAY_MOTORWAY,
		"motorway_link":  HIGHWAY_MOTORWAY_LINK,
		"trunk":          HIGHWAY_TRUNK,
		"trunk_link":     HIGHWAY_TRUNK_LINK,
		"primary":        HIGHWAY_PRIMARY,
		"primary_link":   HIGHWAY_PRIMARY_LINK,
		"secondary":      HIGHWAY_SECONDARY,
		"secondary_link": HIGHWAY_SECONDARY_LINK,
		"tertiary":       HIGHWAY_TERTIARY,
		"tertiary_link":  HIGHWAY_TERTIARY_LINK,
		"residential":    HIGHWAY_RESIDENTIAL,
		"living_street":  HIGHWAY_LIVING_STREET,
		"service":        HIGHWAY_SERVICE,
		"unclassified":   HIGHWAY_UNCLASSIFIED,
	}
)
