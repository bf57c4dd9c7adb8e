package roadgraph

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pkg/errors"
)

const (
	distanceTolerance = 1.e-1
	timeTolerance     = 50
	weightTolerance   = 1.e-2
)

// ComparePaths checks that alternative path is equivalent to the reference one for query source -> target.
//
// Distance and time discrepancies are collected and returned as violations. Endpoints mismatch, paths from
// incomparable graphs and weight discrepancy are caller errors: ErrStructuralMismatch is returned.
// Seed only goes into diagnostic output
func ComparePaths(refPath, path *Path, source, target NodeID, seed int64) ([]string, error) {
	if refPath == nil || path == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "can't compare nil paths")
	}
	if refPath.fromNode != source || path.fromNode != source || refPath.endNode != target || path.endNode != target {
		return nil, errors.Wrapf(ErrStructuralMismatch, "wrong endpoints for query %d->%d: expected %d->%d, given %d->%d", source, target, refPath.fromNode, refPath.endNode, path.fromNode, path.endNode)
	}
	if !sameIdentitySpace(refPath.graph, path.graph) {
		return nil, errors.Wrapf(ErrStructuralMismatch, "paths %d->%d belong to different graphs: %s vs %s", source, target, refPath.graph, path.graph)
	}

	violations := []string{}
	if math.Abs(path.distance-refPath.distance) > distanceTolerance {
		violations = append(violations, fmt.Sprintf("wrong distance %d->%d, expected: %f, given: %f", source, target, refPath.distance, path.distance))
	}
	if absInt64(path.time-refPath.time) > timeTolerance {
		violations = append(violations, fmt.Sprintf("wrong time %d->%d, expected: %d, given: %d", source, target, refPath.time, path.time))
	}
	if math.Abs(path.weight-refPath.weight) > weightTolerance {
		refNodes, _ := refPath.CalcNodes()
		nodes, _ := path.CalcNodes()
		slog.Warn("Paths weight mismatch", "expected_nodes", refNodes, "given_nodes", nodes, "seed", seed)
		return nil, errors.Wrapf(ErrStructuralMismatch, "wrong weight %d->%d, expected: %f, given: %f, seed: %d", source, target, refPath.weight, path.weight, seed)
	}
	if len(violations) > 0 {
		slog.Debug("Paths differ", "source", source, "target", target, "violations", len(violations), "seed", seed)
	}
	return violations, nil
}

// sameIdentitySpace returns true if node and edge identifiers of both graphs mean the same things
func sameIdentitySpace(a, b *Graph) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.NodeCount() != b.NodeCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}
	for i := range a.edgeBase {
		if a.edgeBase[i] != b.edgeBase[i] || a.edgeAdj[i] != b.edgeAdj[i] {
			return false
		}
	}
	return true
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
