package roadgraph

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	// earthRadius is mean Earth radius (meters)
	earthRadius = 6371000.0
	pi180       = math.Pi / 180.0
)

// GeoPoint representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// Point returns orb representation of GeoPoint (X == Lon, Y == Lat)
func (gp GeoPoint) Point() orb.Point {
	return orb.Point{gp.Lon, gp.Lat}
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// planeProjectionDistance returns distance between two geo-points (meters) using equirectangular projection
// around mean latitude. Coordinates are not normalized: invalid input gives invalid (possibly huge) distance
func planeProjectionDistance(p, q GeoPoint) float64 {
	dLat := degreesToRadians(q.Lat - p.Lat)
	dLon := degreesToRadians(q.Lon - p.Lon)
	tmp := math.Cos(degreesToRadians((p.Lat+q.Lat)/2)) * dLon
	return earthRadius * math.Sqrt(dLat*dLat+tmp*tmp)
}

// GreatCircleDistance returns distance between two geo-points (meters)
func GreatCircleDistance(p, q GeoPoint) float64 {
	return geo.Distance(p.Point(), q.Point())
}

// getSphericalLength returns length for given line (meters)
func getSphericalLength(line []GeoPoint) float64 {
	if len(line) < 2 {
		return 0
	}
	ls := make(orb.LineString, len(line))
	for i := range line {
		ls[i] = line[i].Point()
	}
	return geo.Length(ls)
}

// GeodesicDistance returns distance between two nodes (meters).
//
// Distance between node and itself is exactly zero. Out of bounds coordinates are used as is
func GeodesicDistance(nodeA, nodeB NodeID, na NodeAccess) (float64, error) {
	if nodeA == nodeB {
		return 0, nil
	}
	p, err := na.Point(nodeA)
	if err != nil {
		return 0, errors.Wrap(err, "Can't get source point")
	}
	q, err := na.Point(nodeB)
	if err != nil {
		return 0, errors.Wrap(err, "Can't get target point")
	}
	return planeProjectionDistance(p, q), nil
}
