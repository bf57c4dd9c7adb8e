package roadgraph

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// EdgeState is a lightweight directed view of an edge. It does not own any storage.
//
// Encoded values read through EdgeState honor its orientation: for reversed state "forward" slot is the backward one
type EdgeState struct {
	graph    *Graph
	edge     EdgeID
	baseNode NodeID
	adjNode  NodeID
	reverse  bool
}

func (state EdgeState) String() string {
	return fmt.Sprintf("%d (%d->%d)", state.edge, state.baseNode, state.adjNode)
}

func (state EdgeState) Graph() *Graph {
	return state.graph
}

func (state EdgeState) Edge() EdgeID {
	return state.edge
}

func (state EdgeState) BaseNode() NodeID {
	return state.baseNode
}

func (state EdgeState) AdjNode() NodeID {
	return state.adjNode
}

// IsReverse returns true if state traverses edge from its stored adjacent node to its stored base node
func (state EdgeState) IsReverse() bool {
	return state.reverse
}

func (state EdgeState) EdgeKey() EdgeKey {
	return edgeKey(state.edge, state.reverse)
}

// Reversed returns the same edge traversed in opposite direction
func (state EdgeState) Reversed() EdgeState {
	return EdgeState{
		graph:    state.graph,
		edge:     state.edge,
		baseNode: state.adjNode,
		adjNode:  state.baseNode,
		reverse:  !state.reverse,
	}
}

func (state EdgeState) Distance() float64 {
	return state.graph.edgeDistance[state.edge]
}

// SetDistance sets distance (meters) of the edge. Distance is direction independent
func (state EdgeState) SetDistance(distance float64) error {
	if err := state.graph.checkWritable(); err != nil {
		return err
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return errors.Wrapf(ErrInvalidArgument, "distance of edge %d must be non-negative finite, got %f", state.edge, distance)
	}
	state.graph.edgeDistance[state.edge] = distance
	return nil
}
