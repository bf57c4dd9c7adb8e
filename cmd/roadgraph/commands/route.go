package commands

import (
	"fmt"
	"math/rand"

	"github.com/LdDl/roadgraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	routeSource  int
	routeTarget  int
	routeSamples int
	routeSeed    int64
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Compare contraction hierarchies routes with Dijkstra ones",
	Long: `Computes routes with contraction hierarchies and plain Dijkstra
and reports any discrepancy between them. Either single query (--source, --target)
or a number of random queries (--samples, --seed) is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := importNetwork()
		if err != nil {
			return err
		}
		router, err := roadgraph.NewRouter(network.Graph, network.Weighting(), roadgraph.WithRouterLogger(logger))
		if err != nil {
			return err
		}
		if err = router.Prepare(); err != nil {
			return err
		}
		queries := [][2]roadgraph.NodeID{{roadgraph.NodeID(routeSource), roadgraph.NodeID(routeTarget)}}
		if routeSamples > 0 {
			queries = randomQueries(network.Graph.NodeCount(), routeSamples, routeSeed)
		}
		failed := 0
		for _, query := range queries {
			violations, err := compareQuery(router, query[0], query[1], routeSeed)
			if err != nil {
				return err
			}
			for _, violation := range violations {
				fmt.Fprintln(cmd.OutOrStdout(), violation)
			}
			if len(violations) > 0 {
				failed++
			}
		}
		logger.Info("Routes compared", "queries", len(queries), "failed", failed)
		return nil
	},
}

func init() {
	routeCmd.Flags().IntVar(&routeSource, "source", 0, "Source node")
	routeCmd.Flags().IntVar(&routeTarget, "target", 1, "Target node")
	routeCmd.Flags().IntVar(&routeSamples, "samples", 0, "Number of random queries (overrides source and target)")
	routeCmd.Flags().Int64Var(&routeSeed, "seed", 42, "Seed of random queries")
}

func randomQueries(nodes, samples int, seed int64) [][2]roadgraph.NodeID {
	if nodes == 0 {
		return nil
	}
	rnd := rand.New(rand.NewSource(seed))
	queries := make([][2]roadgraph.NodeID, samples)
	for i := range queries {
		queries[i] = [2]roadgraph.NodeID{roadgraph.NodeID(rnd.Intn(nodes)), roadgraph.NodeID(rnd.Intn(nodes))}
	}
	return queries
}

// compareQuery returns violations between CH and Dijkstra routes. Unreachable pairs are skipped
func compareQuery(router *roadgraph.Router, source, target roadgraph.NodeID, seed int64) ([]string, error) {
	refPath, err := router.RouteDijkstra(source, target)
	if errors.Is(err, roadgraph.ErrNoRoute) {
		logger.Debug("No route", "source", source, "target", target)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	path, err := router.Route(source, target)
	if errors.Is(err, roadgraph.ErrNoRoute) {
		return []string{fmt.Sprintf("no CH route %d->%d, but Dijkstra found %s", source, target, refPath)}, nil
	}
	if err != nil {
		return nil, err
	}
	return roadgraph.ComparePaths(refPath, path, source, target, seed)
}
