package roadgraph

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// triangleGraph returns graph with edges 0-1, 1-2 (10 meters each) and 0-2 (20 meters)
func triangleGraph(t *testing.T) (*Graph, []EdgeID) {
	graph, err := NewGraph(nil)
	if err != nil {
		t.Fatal(err)
	}
	pairs := [][3]float64{{0, 1, 10}, {1, 2, 10}, {0, 2, 20}}
	ids := make([]EdgeID, len(pairs))
	for i, pair := range pairs {
		edge, err := graph.CreateEdge(NodeID(pair[0]), NodeID(pair[1]))
		if err != nil {
			t.Fatal(err)
		}
		if err = edge.SetDistance(pair[2]); err != nil {
			t.Fatal(err)
		}
		ids[i] = edge.Edge()
	}
	return graph, ids
}

func TestCreateEdge(t *testing.T) {
	graph, ids := triangleGraph(t)
	if graph.NodeCount() != 3 {
		t.Errorf("Nodes count must be 3, but got %d", graph.NodeCount())
	}
	if graph.EdgeCount() != 3 {
		t.Errorf("Edges count must be 3, but got %d", graph.EdgeCount())
	}
	for i, id := range ids {
		if id != EdgeID(i) {
			t.Errorf("Edge ids must be dense: expected %d, but got %d", i, id)
		}
	}
	edge, err := graph.Edge(ids[2])
	if err != nil {
		t.Error(err)
		return
	}
	if edge.BaseNode() != 0 || edge.AdjNode() != 2 || edge.Distance() != 20 {
		t.Errorf("Edge must be 0->2 with distance 20, but got %s with distance %f", edge, edge.Distance())
	}
	if _, err = graph.CreateEdge(-1, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Negative node must give ErrInvalidArgument, but got %v", err)
	}
	if err = edge.SetDistance(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Negative distance must give ErrInvalidArgument, but got %v", err)
	}
}

func TestGetAdjacentNode(t *testing.T) {
	graph, ids := triangleGraph(t)

	adj, err := graph.AdjacentNode(ids[0], 1)
	if err != nil {
		t.Error(err)
		return
	}
	if adj != 0 {
		t.Errorf("Node 0 must be adjacent to node 1, but got %d", adj)
	}
	adj, err = graph.AdjacentNode(ids[0], 0)
	if err != nil {
		t.Error(err)
		return
	}
	if adj != 1 {
		t.Errorf("Node 1 must be adjacent to node 0, but got %d", adj)
	}

	if _, err = graph.AdjacentNode(ids[1], 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Node 0 is not on edge 1-2 and must give ErrInvalidArgument, but got %v", err)
	}
	if _, err = graph.AdjacentNode(100, 0); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Unknown edge must give ErrEdgeNotFound, but got %v", err)
	}
	if _, err = graph.AdjacentNode(-5, 0); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Negative edge must give ErrEdgeNotFound, but got %v", err)
	}
	adj, err = graph.AdjacentNode(NoEdge, 1)
	if err != nil {
		t.Error(err)
		return
	}
	if adj != 1 {
		t.Errorf("NoEdge must return given node 1, but got %d", adj)
	}
}

func TestEdgeBetween(t *testing.T) {
	graph, _ := triangleGraph(t)
	if _, err := graph.CreateEdge(2, 3); err != nil {
		t.Error(err)
		return
	}

	_, found, err := graph.EdgeBetween(0, 3)
	if err != nil {
		t.Error(err)
		return
	}
	if found {
		t.Errorf("There must be no edge between 0 and 3")
	}

	edge, found, err := graph.EdgeBetween(1, 0)
	if err != nil {
		t.Error(err)
		return
	}
	if !found {
		t.Errorf("Edge between 1 and 0 must be found")
		return
	}
	if edge.Edge() != 0 || edge.BaseNode() != 1 || edge.AdjNode() != 0 || !edge.IsReverse() {
		t.Errorf("Edge between 1 and 0 must be reversed edge 0, but got %s (reverse: %t)", edge, edge.IsReverse())
	}

	if _, err = graph.CreateEdge(0, 1); err != nil {
		t.Error(err)
		return
	}
	_, _, err = graph.EdgeBetween(0, 1)
	if !errors.Is(err, ErrAmbiguousResult) {
		t.Errorf("Parallel edges must give ErrAmbiguousResult, but got %v", err)
		return
	}
	if !strings.Contains(err.Error(), "multiple edges between nodes 0 and 1") {
		t.Errorf("Error message must name both nodes, but got '%s'", err.Error())
	}
}

func TestAdjacentEdges(t *testing.T) {
	graph, _ := triangleGraph(t)
	loop, err := graph.CreateEdge(2, 2)
	if err != nil {
		t.Error(err)
		return
	}
	states, err := graph.AdjacentEdges(2)
	if err != nil {
		t.Error(err)
		return
	}
	if len(states) != 3 {
		t.Errorf("Node 2 must have 3 incident edges (self loop once), but got %d", len(states))
	}
	for _, state := range states {
		if state.BaseNode() != 2 {
			t.Errorf("Edge %s must be oriented away from node 2", state)
		}
	}
	if states[2].Edge() != loop.Edge() {
		t.Errorf("Last incident edge must be self loop %d, but got %d", loop.Edge(), states[2].Edge())
	}
	if _, err = graph.AdjacentEdges(10); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Unknown node must give ErrNodeNotFound, but got %v", err)
	}
}

func TestNodeAccess(t *testing.T) {
	graph, err := NewGraph(nil)
	if err != nil {
		t.Error(err)
		return
	}
	node, err := graph.CreateNode(55.75, 37.61)
	if err != nil {
		t.Error(err)
		return
	}
	na := graph.NodeAccess()
	if _, ok, _ := na.Elevation(node); ok {
		t.Errorf("Elevation must be absent for new node")
	}
	if err = na.SetNode(node, 55.76, 37.62, 150); err != nil {
		t.Error(err)
		return
	}
	pt, err := na.Point(node)
	if err != nil {
		t.Error(err)
		return
	}
	if pt.Lat != 55.76 || pt.Lon != 37.62 {
		t.Errorf("Point must be (55.76, 37.62), but got %s", pt)
	}
	ele, ok, err := na.Elevation(node)
	if err != nil || !ok || ele != 150 {
		t.Errorf("Elevation must be 150, but got %f (set: %t, err: %v)", ele, ok, err)
	}
	if err = na.SetPoint(5, 0, 0); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Unknown node must give ErrNodeNotFound, but got %v", err)
	}
}

func TestFreeze(t *testing.T) {
	graph, ids := triangleGraph(t)
	graph.Freeze()
	if _, err := graph.CreateEdge(0, 1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Frozen graph must reject new edges with ErrInvalidState, but got %v", err)
	}
	if _, err := graph.CreateNode(0, 0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Frozen graph must reject new nodes with ErrInvalidState, but got %v", err)
	}
	edge, err := graph.Edge(ids[0])
	if err != nil {
		t.Error(err)
		return
	}
	if err = edge.SetDistance(1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Frozen graph must reject distance change with ErrInvalidState, but got %v", err)
	}
}
