package roadgraph

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

// FastestWeighting converts edge into travel time using access flag and average speed (km/h)
type FastestWeighting struct {
	Access BooleanEncodedValue
	Speed  DecimalEncodedValue
}

// CalcWeight returns travel time (seconds) in direction of given state. Inaccessible direction gives +Inf
func (w FastestWeighting) CalcWeight(state EdgeState) float64 {
	if !w.Access.Get(state) {
		return math.Inf(1)
	}
	speed := w.Speed.Get(state)
	if speed <= 0 {
		return math.Inf(1)
	}
	return state.Distance() / (speed / 3.6)
}

// CalcMillis returns travel time (milliseconds) in direction of given state
func (w FastestWeighting) CalcMillis(state EdgeState) int64 {
	weight := w.CalcWeight(state)
	if math.IsInf(weight, 1) {
		return math.MaxInt64
	}
	return int64(math.Round(weight * 1000))
}

type routerEdge struct {
	from   int64
	to     int64
	weight float64
}

// Router answers shortest path queries over the graph with github.com/LdDl/ch.
//
// Graph must not be changed after router has been created
type Router struct {
	graph      *Graph
	weighting  FastestWeighting
	edges      []routerEdge
	plain      *ch.Graph
	contracted *ch.Graph
	logger     *slog.Logger
}

func WithRouterLogger(logger *slog.Logger) func(*Router) {
	return func(router *Router) {
		if logger != nil {
			router.logger = logger
		}
	}
}

// NewRouter loads every accessible direction of every edge into routing engine.
// For parallel edges only the cheapest one per ordered pair of nodes is kept
func NewRouter(graph *Graph, weighting FastestWeighting, options ...func(*Router)) (*Router, error) {
	router := &Router{
		graph:     graph,
		weighting: weighting,
		edges:     make([]routerEdge, 0, graph.EdgeCount()),
		logger:    slog.Default(),
	}
	for _, option := range options {
		option(router)
	}

	pairs := make(map[[2]int64]int)
	for i := 0; i < graph.EdgeCount(); i++ {
		state, err := graph.Edge(EdgeID(i))
		if err != nil {
			return nil, err
		}
		if state.baseNode == state.adjNode {
			continue
		}
		for _, directed := range []EdgeState{state, state.Reversed()} {
			weight := weighting.CalcWeight(directed)
			if math.IsInf(weight, 1) {
				continue
			}
			key := [2]int64{int64(directed.baseNode), int64(directed.adjNode)}
			if idx, ok := pairs[key]; ok {
				if weight < router.edges[idx].weight {
					router.edges[idx].weight = weight
				}
				continue
			}
			pairs[key] = len(router.edges)
			router.edges = append(router.edges, routerEdge{from: key[0], to: key[1], weight: weight})
		}
	}

	plain, err := router.buildEngine()
	if err != nil {
		return nil, errors.Wrap(err, "Can't prepare routing engine")
	}
	router.plain = plain
	router.logger.Debug("Router is ready", "vertices", graph.NodeCount(), "edges", len(router.edges))
	return router, nil
}

func (router *Router) buildEngine() (*ch.Graph, error) {
	engine := &ch.Graph{}
	for i := 0; i < router.graph.NodeCount(); i++ {
		if err := engine.CreateVertex(int64(i)); err != nil {
			return nil, errors.Wrapf(err, "Can not create vertex %d", i)
		}
	}
	for _, edge := range router.edges {
		if err := engine.AddEdge(edge.from, edge.to, edge.weight); err != nil {
			return nil, errors.Wrapf(err, "Can not wrap vertices %d and %d as edge", edge.from, edge.to)
		}
	}
	return engine, nil
}

// Prepare builds contraction hierarchies. Until then Route falls back to Dijkstra
func (router *Router) Prepare() error {
	engine, err := router.buildEngine()
	if err != nil {
		return errors.Wrap(err, "Can't prepare contraction hierarchies")
	}
	st := time.Now()
	engine.PrepareContractionHierarchies()
	router.logger.Info("Done contraction process", "elapsed", time.Since(st))
	router.contracted = engine
	return nil
}

func (router *Router) IsPrepared() bool {
	return router.contracted != nil
}

// Route returns shortest path using contraction hierarchies (Dijkstra if Prepare has not been called)
func (router *Router) Route(source, target NodeID) (*Path, error) {
	if router.contracted == nil {
		return router.RouteDijkstra(source, target)
	}
	return router.route(source, target, router.contracted.ShortestPath)
}

// RouteDijkstra returns shortest path using plain Dijkstra search
func (router *Router) RouteDijkstra(source, target NodeID) (*Path, error) {
	return router.route(source, target, router.plain.VanillaShortestPath)
}

func (router *Router) route(source, target NodeID, search func(source, target int64) (float64, []int64)) (*Path, error) {
	if !router.graph.hasNode(source) || !router.graph.hasNode(target) {
		return nil, errors.Wrapf(ErrNodeNotFound, "query %d->%d", source, target)
	}
	if source == target {
		path := NewPath(router.graph)
		path.SetFromNode(source)
		path.SetEndNode(target)
		return path, nil
	}
	cost, vertices := search(int64(source), int64(target))
	if cost < 0 || math.IsInf(cost, 1) || len(vertices) < 2 {
		return nil, errors.Wrapf(ErrNoRoute, "query %d->%d", source, target)
	}
	return router.buildPath(source, target, vertices)
}

// buildPath converts sequence of vertices into path of edges choosing the cheapest accessible edge for every hop
func (router *Router) buildPath(source, target NodeID, vertices []int64) (*Path, error) {
	path := NewPath(router.graph)
	path.SetFromNode(source)
	path.SetEndNode(target)
	var (
		distance float64
		millis   int64
		weight   float64
	)
	for i := 1; i < len(vertices); i++ {
		from, to := NodeID(vertices[i-1]), NodeID(vertices[i])
		var best EdgeState
		bestWeight := math.Inf(1)
		err := router.graph.ForEachEdge(from, func(state EdgeState) bool {
			if state.adjNode != to {
				return true
			}
			if w := router.weighting.CalcWeight(state); w < bestWeight {
				best, bestWeight = state, w
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		if math.IsInf(bestWeight, 1) {
			return nil, errors.Wrap(ErrInvalidState, fmt.Sprintf("no accessible edge between %d and %d", from, to))
		}
		path.AddEdge(best.edge)
		distance += best.Distance()
		millis += router.weighting.CalcMillis(best)
		weight += bestWeight
	}
	path.SetDistance(distance)
	path.SetTime(millis)
	path.SetWeight(weight)
	return path, nil
}
