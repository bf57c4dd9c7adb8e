package roadgraph

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

type NodeID int

type EdgeID int

// NoEdge is an "absent edge" sentinel accepted by AdjacentNode
const NoEdge = EdgeID(-1)

// Graph is a directed multigraph of road network.
//
// Edges are undirected in identity, but every traversal is directed: base -> adjacent is forward, adjacent -> base is backward.
// Properties of an edge are packed into fixed-width payload which layout is defined by EncodingManager.
//
// Graph is single-writer structure: nodes and edges are appended sequentially. After Freeze() it is safe for concurrent readers.
type Graph struct {
	encoding    *EncodingManager
	intsPerEdge int

	// Nodes columns
	nodeLat   []float64
	nodeLon   []float64
	nodeEle   []float64
	nodeEdges [][]EdgeID

	// Edges columns
	edgeBase     []NodeID
	edgeAdj      []NodeID
	edgeDistance []float64
	edgeFlags    []uint32

	frozen bool
}

// NewGraph creates empty graph. Given EncodingManager is sealed: no encoded values could be registered after that.
// If em is nil then empty manager with default payload width is used.
func NewGraph(em *EncodingManager, options ...func(*Graph)) (*Graph, error) {
	if em == nil {
		em = NewEncodingManager()
	}
	em.seal()
	graph := &Graph{
		encoding:    em,
		intsPerEdge: em.IntsPerEdge(),
	}
	for _, option := range options {
		option(graph)
	}
	return graph, nil
}

func WithExpectedNodes(n int) func(*Graph) {
	return func(graph *Graph) {
		if n <= 0 {
			return
		}
		graph.nodeLat = make([]float64, 0, n)
		graph.nodeLon = make([]float64, 0, n)
		graph.nodeEle = make([]float64, 0, n)
		graph.nodeEdges = make([][]EdgeID, 0, n)
	}
}

func WithExpectedEdges(n int) func(*Graph) {
	return func(graph *Graph) {
		if n <= 0 {
			return
		}
		graph.edgeBase = make([]NodeID, 0, n)
		graph.edgeAdj = make([]NodeID, 0, n)
		graph.edgeDistance = make([]float64, 0, n)
		graph.edgeFlags = make([]uint32, 0, n*graph.intsPerEdge)
	}
}

func (graph *Graph) String() string {
	return fmt.Sprintf("Graph (nodes: %d, edges: %d, ints per edge: %d, frozen: %t)", graph.NodeCount(), graph.EdgeCount(), graph.intsPerEdge, graph.frozen)
}

// EncodingManager returns sealed manager which defines payload layout
func (graph *Graph) EncodingManager() *EncodingManager {
	return graph.encoding
}

func (graph *Graph) NodeCount() int {
	return len(graph.nodeLat)
}

func (graph *Graph) EdgeCount() int {
	return len(graph.edgeBase)
}

// Freeze finishes construction phase. Any further mutation fails with ErrInvalidState
func (graph *Graph) Freeze() {
	graph.frozen = true
}

func (graph *Graph) IsFrozen() bool {
	return graph.frozen
}

func (graph *Graph) checkWritable() error {
	if graph.frozen {
		return errors.Wrap(ErrInvalidState, "graph is frozen")
	}
	return nil
}

// CreateNode appends new node with given coordinates and no elevation
func (graph *Graph) CreateNode(lat, lon float64) (NodeID, error) {
	if err := graph.checkWritable(); err != nil {
		return -1, err
	}
	id := NodeID(graph.NodeCount())
	graph.appendNode(lat, lon)
	return id, nil
}

func (graph *Graph) appendNode(lat, lon float64) {
	graph.nodeLat = append(graph.nodeLat, lat)
	graph.nodeLon = append(graph.nodeLon, lon)
	graph.nodeEle = append(graph.nodeEle, math.NaN())
	graph.nodeEdges = append(graph.nodeEdges, nil)
}

// ensureNode extends nodes table so given node exists
func (graph *Graph) ensureNode(node NodeID) {
	for NodeID(graph.NodeCount()) <= node {
		graph.appendNode(0, 0)
	}
}

func (graph *Graph) hasNode(node NodeID) bool {
	return node >= 0 && int(node) < graph.NodeCount()
}

func (graph *Graph) hasEdge(edge EdgeID) bool {
	return edge >= 0 && int(edge) < graph.EdgeCount()
}

// CreateEdge appends new edge between given nodes. Nodes table is extended implicitly when needed.
// Distance and every encoded value of new edge are zero
func (graph *Graph) CreateEdge(nodeA, nodeB NodeID) (EdgeState, error) {
	if err := graph.checkWritable(); err != nil {
		return EdgeState{}, err
	}
	if nodeA < 0 || nodeB < 0 {
		return EdgeState{}, errors.Wrapf(ErrInvalidArgument, "can't create edge between nodes %d and %d", nodeA, nodeB)
	}
	graph.ensureNode(nodeA)
	graph.ensureNode(nodeB)

	id := EdgeID(graph.EdgeCount())
	graph.edgeBase = append(graph.edgeBase, nodeA)
	graph.edgeAdj = append(graph.edgeAdj, nodeB)
	graph.edgeDistance = append(graph.edgeDistance, 0)
	for i := 0; i < graph.intsPerEdge; i++ {
		graph.edgeFlags = append(graph.edgeFlags, 0)
	}
	graph.nodeEdges[nodeA] = append(graph.nodeEdges[nodeA], id)
	if nodeB != nodeA {
		graph.nodeEdges[nodeB] = append(graph.nodeEdges[nodeB], id)
	}
	return EdgeState{graph: graph, edge: id, baseNode: nodeA, adjNode: nodeB}, nil
}

// Edge returns forward oriented state of given edge
func (graph *Graph) Edge(edge EdgeID) (EdgeState, error) {
	if !graph.hasEdge(edge) {
		return EdgeState{}, errors.Wrapf(ErrEdgeNotFound, "edge %d (edges: %d)", edge, graph.EdgeCount())
	}
	return EdgeState{graph: graph, edge: edge, baseNode: graph.edgeBase[edge], adjNode: graph.edgeAdj[edge]}, nil
}

// EdgeStateAt returns state of given edge oriented so that AdjNode() equals adjNode
func (graph *Graph) EdgeStateAt(edge EdgeID, adjNode NodeID) (EdgeState, error) {
	state, err := graph.Edge(edge)
	if err != nil {
		return EdgeState{}, err
	}
	switch adjNode {
	case state.adjNode:
		return state, nil
	case state.baseNode:
		return state.Reversed(), nil
	}
	return EdgeState{}, errors.Wrapf(ErrInvalidArgument, "node %d is not an endpoint of edge %d", adjNode, edge)
}

// AdjacentNode returns the other endpoint of the edge.
//
// NoEdge is accepted and fromNode is returned unchanged. Unknown edge gives ErrEdgeNotFound,
// node which is not an endpoint of the edge gives ErrInvalidArgument
func (graph *Graph) AdjacentNode(edge EdgeID, fromNode NodeID) (NodeID, error) {
	if edge == NoEdge {
		return fromNode, nil
	}
	if !graph.hasEdge(edge) {
		return -1, errors.Wrapf(ErrEdgeNotFound, "can't find adjacent node for edge %d", edge)
	}
	base, adj := graph.edgeBase[edge], graph.edgeAdj[edge]
	switch fromNode {
	case base:
		return adj, nil
	case adj:
		return base, nil
	}
	return -1, errors.Wrapf(ErrInvalidArgument, "node %d is not an endpoint of edge %d (%d-%d)", fromNode, edge, base, adj)
}

// ForEachEdge calls fn for every edge incident to node. States are oriented away from node. Iteration stops when fn returns false
func (graph *Graph) ForEachEdge(node NodeID, fn func(EdgeState) bool) error {
	if !graph.hasNode(node) {
		return errors.Wrapf(ErrNodeNotFound, "node %d (nodes: %d)", node, graph.NodeCount())
	}
	for _, edge := range graph.nodeEdges[node] {
		state := EdgeState{graph: graph, edge: edge, baseNode: graph.edgeBase[edge], adjNode: graph.edgeAdj[edge]}
		if state.baseNode != node {
			state = state.Reversed()
		}
		if !fn(state) {
			return nil
		}
	}
	return nil
}

// AdjacentEdges returns every edge incident to node oriented away from it
func (graph *Graph) AdjacentEdges(node NodeID) ([]EdgeState, error) {
	states := []EdgeState{}
	err := graph.ForEachEdge(node, func(state EdgeState) bool {
		states = append(states, state)
		return true
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}

// EdgeBetween returns the only edge leading from nodeA to nodeB.
//
// Found flag is false when there is no such edge. Parallel edges between the pair are caller error: ErrAmbiguousResult
func (graph *Graph) EdgeBetween(nodeA, nodeB NodeID) (EdgeState, bool, error) {
	var found EdgeState
	matches := 0
	err := graph.ForEachEdge(nodeA, func(state EdgeState) bool {
		if state.adjNode == nodeB {
			found = state
			matches++
		}
		return true
	})
	if err != nil {
		return EdgeState{}, false, err
	}
	switch matches {
	case 0:
		return EdgeState{}, false, nil
	case 1:
		return found, true, nil
	}
	return EdgeState{}, false, errors.Wrapf(ErrAmbiguousResult, "there are multiple edges between nodes %d and %d", nodeA, nodeB)
}

func (graph *Graph) flag(edge EdgeID, word int) uint32 {
	return graph.edgeFlags[int(edge)*graph.intsPerEdge+word]
}

func (graph *Graph) setFlag(edge EdgeID, word int, value uint32) {
	graph.edgeFlags[int(edge)*graph.intsPerEdge+word] = value
}
