package roadgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

// Path is an ordered sequence of edges between two nodes of certain graph.
//
// Distance (meters), time (milliseconds) and weight are supplied by caller and are not derived from edges
type Path struct {
	graph    *Graph
	edges    []EdgeID
	fromNode NodeID
	endNode  NodeID
	distance float64
	time     int64
	weight   float64
}

func NewPath(graph *Graph) *Path {
	return &Path{
		graph:    graph,
		edges:    make([]EdgeID, 0),
		fromNode: -1,
		endNode:  -1,
	}
}

func (path *Path) String() string {
	return fmt.Sprintf("%d->%d, edges: %v, distance: %f, time: %d, weight: %f", path.fromNode, path.endNode, path.edges, path.distance, path.time, path.weight)
}

func (path *Path) Graph() *Graph {
	return path.graph
}

func (path *Path) AddEdge(edge EdgeID) {
	path.edges = append(path.edges, edge)
}

// Edges returns copy of edges sequence
func (path *Path) Edges() []EdgeID {
	edges := make([]EdgeID, len(path.edges))
	copy(edges, path.edges)
	return edges
}

func (path *Path) SetFromNode(node NodeID) {
	path.fromNode = node
}

func (path *Path) FromNode() NodeID {
	return path.fromNode
}

func (path *Path) SetEndNode(node NodeID) {
	path.endNode = node
}

func (path *Path) EndNode() NodeID {
	return path.endNode
}

func (path *Path) SetDistance(distance float64) {
	path.distance = distance
}

func (path *Path) Distance() float64 {
	return path.distance
}

// SetTime sets travel time (milliseconds)
func (path *Path) SetTime(time int64) {
	path.time = time
}

func (path *Path) Time() int64 {
	return path.time
}

func (path *Path) SetWeight(weight float64) {
	path.weight = weight
}

func (path *Path) Weight() float64 {
	return path.weight
}

// CalcNodes walks edges starting from the first node and returns visited nodes
func (path *Path) CalcNodes() ([]NodeID, error) {
	if len(path.edges) == 0 {
		if path.fromNode < 0 {
			return []NodeID{}, nil
		}
		return []NodeID{path.fromNode}, nil
	}
	nodes := make([]NodeID, 0, len(path.edges)+1)
	node := path.fromNode
	nodes = append(nodes, node)
	for _, edge := range path.edges {
		next, err := path.graph.AdjacentNode(edge, node)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't walk path at node %d", node)
		}
		nodes = append(nodes, next)
		node = next
	}
	return nodes, nil
}

// CalcEdgeDistance returns sum of edges distances
func (path *Path) CalcEdgeDistance() (float64, error) {
	total := 0.0
	for _, edge := range path.edges {
		state, err := path.graph.Edge(edge)
		if err != nil {
			return 0, err
		}
		total += state.Distance()
	}
	return total, nil
}
