package roadgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

// EdgeReader gives read access to edges by their identifiers
type EdgeReader interface {
	Edge(edge EdgeID) (EdgeState, error)
}

// CommonNode returns node shared by two distinct edges.
//
// Comparing an edge with itself is an error as well as edges without shared endpoint.
// For parallel edges (both endpoints are shared) base node of the first edge is returned
func CommonNode(graph EdgeReader, edgeA, edgeB EdgeID) (NodeID, error) {
	if edgeA == edgeB {
		return -1, errors.Wrapf(ErrInvalidArgument, "can't find common node of edge %d and itself", edgeA)
	}
	a, err := graph.Edge(edgeA)
	if err != nil {
		return -1, err
	}
	b, err := graph.Edge(edgeB)
	if err != nil {
		return -1, err
	}
	if a.baseNode == b.baseNode || a.baseNode == b.adjNode {
		return a.baseNode, nil
	}
	if a.adjNode == b.baseNode || a.adjNode == b.adjNode {
		return a.adjNode, nil
	}
	return -1, errors.Wrapf(ErrInvalidArgument, "edges %s and %s do not share any node", a, b)
}

type CoordinateAxis uint16

const (
	AXIS_LATITUDE = CoordinateAxis(iota + 1)
	AXIS_LONGITUDE
)

func (iotaIdx CoordinateAxis) String() string {
	return [...]string{"latitude", "longitude"}[iotaIdx-1]
}

// CoordinateProblem describes single out of bounds coordinate
type CoordinateProblem struct {
	Node  NodeID
	Axis  CoordinateAxis
	Value float64
}

func (problem CoordinateProblem) String() string {
	return fmt.Sprintf("node %d: %s is not within its bounds %f", problem.Node, problem.Axis, problem.Value)
}

// FindCoordinateProblems checks every node: latitude must be in [-90, 90], longitude must be in [-180, 180].
// Problems are ordered by node, latitude problem goes before longitude one
func FindCoordinateProblems(na NodeAccess) []CoordinateProblem {
	problems := []CoordinateProblem{}
	for i := 0; i < na.NodeCount(); i++ {
		node := NodeID(i)
		pt, err := na.Point(node)
		if err != nil {
			continue
		}
		if pt.Lat > 90 || pt.Lat < -90 {
			problems = append(problems, CoordinateProblem{Node: node, Axis: AXIS_LATITUDE, Value: pt.Lat})
		}
		if pt.Lon > 180 || pt.Lon < -180 {
			problems = append(problems, CoordinateProblem{Node: node, Axis: AXIS_LONGITUDE, Value: pt.Lon})
		}
	}
	return problems
}

// DiagnoseCoordinates returns human readable coordinates problems. Empty list means every node is fine
func DiagnoseCoordinates(na NodeAccess) []string {
	problems := FindCoordinateProblems(na)
	result := make([]string, len(problems))
	for i := range problems {
		result[i] = problems[i].String()
	}
	return result
}
