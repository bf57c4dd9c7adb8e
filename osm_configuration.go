package roadgraph

import (
	"strconv"
	"strings"
)

const (
	DEFAULT_SPEED_BITS   = 7
	DEFAULT_SPEED_FACTOR = 2.0
)

// OsmConfiguration Allows to filter ways by certain tags from OSM data and defines speed encoding
type OsmConfiguration struct {
	EntityName  string // Currrently we support 'highway' only
	Tags        []string
	SpeedBits   int
	SpeedFactor float64
	// DefaultSpeeds overrides speed (km/h) by highway tag value when way has no 'maxspeed'
	DefaultSpeeds map[string]float64
}

// DefaultOsmConfiguration returns configuration for car-like roads
func DefaultOsmConfiguration() *OsmConfiguration {
	return &OsmConfiguration{
		EntityName:  "highway",
		Tags:        []string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "service", "unclassified", "road"},
		SpeedBits:   DEFAULT_SPEED_BITS,
		SpeedFactor: DEFAULT_SPEED_FACTOR,
	}
}

// CheckTag Checks if incoming tag is represented in configuration
func (cfg *OsmConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

// speedFor returns speed (km/h) for way with given highway and maxspeed tags
func (cfg *OsmConfiguration) speedFor(highway, maxSpeed string) float64 {
	if speed, ok := parseMaxSpeed(maxSpeed); ok {
		return speed
	}
	if speed, ok := cfg.DefaultSpeeds[highway]; ok {
		return speed
	}
	return getHighwayType(highway).DefaultSpeed()
}

// parseMaxSpeed parses values like "60", "60 km/h", "30 mph"
func parseMaxSpeed(text string) (float64, bool) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return 0, false
	}
	factor := 1.0
	if strings.HasSuffix(text, "mph") {
		factor = 1.609344
		text = strings.TrimSpace(strings.TrimSuffix(text, "mph"))
	} else {
		text = strings.TrimSpace(strings.TrimSuffix(text, "km/h"))
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value * factor, true
}
