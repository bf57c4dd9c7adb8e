package roadgraph

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt GeoPoint) string {
	return fmt.Sprintf("POINT(%f %f)", pt.Lon, pt.Lat)
}

// PathToWKT returns WKT LineString of nodes visited by path
func PathToWKT(path *Path) (string, error) {
	points, err := pathPoints(path)
	if err != nil {
		return "", err
	}
	line := make(orb.LineString, len(points))
	for i := range points {
		line[i] = points[i].Point()
	}
	return wkt.MarshalString(line), nil
}
