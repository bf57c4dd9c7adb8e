package roadgraph

import (
	"math"

	"github.com/pkg/errors"
)

// NodeAccess gives access to coordinates of graph nodes
type NodeAccess interface {
	NodeCount() int
	Point(node NodeID) (GeoPoint, error)
	// Elevation returns false flag if elevation has not been set
	Elevation(node NodeID) (float64, bool, error)
	SetNode(node NodeID, lat, lon, ele float64) error
	SetPoint(node NodeID, lat, lon float64) error
}

// NodeAccess returns coordinates accessor. Coordinates are stored as is, no bounds checks are done (see DiagnoseCoordinates)
func (graph *Graph) NodeAccess() NodeAccess {
	return graphNodeAccess{graph: graph}
}

type graphNodeAccess struct {
	graph *Graph
}

func (na graphNodeAccess) NodeCount() int {
	return na.graph.NodeCount()
}

func (na graphNodeAccess) check(node NodeID) error {
	if !na.graph.hasNode(node) {
		return errors.Wrapf(ErrNodeNotFound, "node %d (nodes: %d)", node, na.graph.NodeCount())
	}
	return nil
}

func (na graphNodeAccess) Point(node NodeID) (GeoPoint, error) {
	if err := na.check(node); err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{Lat: na.graph.nodeLat[node], Lon: na.graph.nodeLon[node]}, nil
}

func (na graphNodeAccess) Elevation(node NodeID) (float64, bool, error) {
	if err := na.check(node); err != nil {
		return 0, false, err
	}
	ele := na.graph.nodeEle[node]
	if math.IsNaN(ele) {
		return 0, false, nil
	}
	return ele, true, nil
}

func (na graphNodeAccess) SetNode(node NodeID, lat, lon, ele float64) error {
	if err := na.SetPoint(node, lat, lon); err != nil {
		return err
	}
	na.graph.nodeEle[node] = ele
	return nil
}

func (na graphNodeAccess) SetPoint(node NodeID, lat, lon float64) error {
	if err := na.graph.checkWritable(); err != nil {
		return err
	}
	if err := na.check(node); err != nil {
		return err
	}
	na.graph.nodeLat[node] = lat
	na.graph.nodeLon[node] = lon
	return nil
}
