package roadgraph

import "github.com/paulmach/osm"

type AccessType uint16

const (
	ACCESS_MOTOR_VEHICLE = AccessType(iota + 1)
	ACCESS_MOTORCAR
	ACCESS_OSM_ACCESS
	ACCESS_SERVICE
	ACCESS_UNDEFINED = AccessType(0)
)

func (iotaIdx AccessType) String() string {
	return [...]string{"undefined", "motor_vehicle", "motorcar", "access", "service"}[iotaIdx]
}

var (
	// carAccessExclude lists tag values which close way for cars
	carAccessExclude = map[AccessType]map[string]struct{}{
		ACCESS_MOTOR_VEHICLE: {
			"no": struct{}{},
		},
		ACCESS_MOTORCAR: {
			"no": struct{}{},
		},
		ACCESS_OSM_ACCESS: {
			"no":      struct{}{},
			"private": struct{}{},
		},
		ACCESS_SERVICE: {
			"parking_aisle":    struct{}{},
			"driveway":         struct{}{},
			"emergency_access": struct{}{},
		},
	}
	// carAccessInclude overrides generic 'access' restriction
	carAccessInclude = map[AccessType]map[string]struct{}{
		ACCESS_MOTOR_VEHICLE: {
			"yes": struct{}{},
		},
		ACCESS_MOTORCAR: {
			"yes": struct{}{},
		},
	}
)

// isCarRestricted returns true if way tags close it for cars
func isCarRestricted(tags osm.Tags) bool {
	for accessType, values := range carAccessInclude {
		if _, ok := values[tags.Find(accessType.String())]; ok {
			return false
		}
	}
	for accessType, values := range carAccessExclude {
		if _, ok := values[tags.Find(accessType.String())]; ok {
			return true
		}
	}
	return false
}
