package roadgraph

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
	HIGHWAY_RESIDENTIAL_LINK
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_SERVICES
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_UNCLASSIFIED
	HIGHWAY_ROAD

	HIGHWAY_UNDEFINED = HighwayType(0)
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"undefined", "motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "residential_link", "living_street", "service", "services", "cycleway", "footway", "pedestrian", "steps", "track", "unclassified", "road"}[iotaIdx]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return HIGHWAY_UNDEFINED
}

// DefaultSpeed returns typical free flow speed (km/h) for given highway type
func (iotaIdx HighwayType) DefaultSpeed() float64 {
	if speed, ok := defaultSpeedByHighway[iotaIdx]; ok {
		return speed
	}
	return defaultSpeedByHighway[HIGHWAY_UNCLASSIFIED]
}

var (
	highwaysTypes = map[string]HighwayType{
		"motorway":         HIGHWAY_MOTORWAY,
		"motorway_link":    HIGHWAY_MOTORWAY_LINK,
		"trunk":            HIGHWAY_TRUNK,
		"trunk_link":       HIGHWAY_TRUNK_LINK,
		"primary":          HIGHWAY_PRIMARY,
		"primary_link":     HIGHWAY_PRIMARY_LINK,
		"secondary":        HIGHWAY_SECONDARY,
		"secondary_link":   HIGHWAY_SECONDARY_LINK,
		"tertiary":         HIGHWAY_TERTIARY,
		"tertiary_link":    HIGHWAY_TERTIARY_LINK,
		"residential":      HIGHWAY_RESIDENTIAL,
		"residential_link": HIGHWAY_RESIDENTIAL_LINK,
		"living_street":    HIGHWAY_LIVING_STREET,
		"service":          HIGHWAY_SERVICE,
		"services":         HIGHWAY_SERVICES,
		"cycleway":         HIGHWAY_CYCLEWAY,
		"footway":          HIGHWAY_FOOTWAY,
		"pedestrian":       HIGHWAY_PEDESTRIAN,
		"steps":            HIGHWAY_STEPS,
		"track":            HIGHWAY_TRACK,
		"unclassified":     HIGHWAY_UNCLASSIFIED,
		"road":             HIGHWAY_ROAD,
	}

	defaultSpeedByHighway = map[HighwayType]float64{
		HIGHWAY_MOTORWAY:         120,
		HIGHWAY_MOTORWAY_LINK:    120,
		HIGHWAY_TRUNK:            100,
		HIGHWAY_TRUNK_LINK:       100,
		HIGHWAY_PRIMARY:          80,
		HIGHWAY_PRIMARY_LINK:     80,
		HIGHWAY_SECONDARY:        60,
		HIGHWAY_SECONDARY_LINK:   60,
		HIGHWAY_TERTIARY:         40,
		HIGHWAY_TERTIARY_LINK:    40,
		HIGHWAY_RESIDENTIAL:      30,
		HIGHWAY_RESIDENTIAL_LINK: 30,
		HIGHWAY_LIVING_STREET:    30,
		HIGHWAY_SERVICE:          30,
		HIGHWAY_SERVICES:         30,
		HIGHWAY_CYCLEWAY:         5,
		HIGHWAY_FOOTWAY:          5,
		HIGHWAY_PEDESTRIAN:       5,
		HIGHWAY_STEPS:            5,
		HIGHWAY_TRACK:            30,
		HIGHWAY_UNCLASSIFIED:     30,
		HIGHWAY_ROAD:             30,
	}

	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}
)
