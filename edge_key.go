package roadgraph

import (
	"github.com/pkg/errors"
)

// EdgeKey is a traversal handle: undirected edge identifier and direction packed into single integer
//
// key = 2*edge + 1 for reverse traversal, 2*edge for forward one
type EdgeKey int

// CreateEdgeKey returns key for given edge and direction
func CreateEdgeKey(edge EdgeID, reverse bool) (EdgeKey, error) {
	if edge < 0 {
		return -1, errors.Wrapf(ErrInvalidArgument, "can't create edge key for edge %d", edge)
	}
	return edgeKey(edge, reverse), nil
}

// DecodeEdgeKey returns edge identifier and direction for given key
func DecodeEdgeKey(key EdgeKey) (EdgeID, bool, error) {
	if key < 0 {
		return NoEdge, false, errors.Wrapf(ErrInvalidArgument, "can't decode edge key %d", key)
	}
	return key.Edge(), key.IsReverse(), nil
}

func edgeKey(edge EdgeID, reverse bool) EdgeKey {
	key := EdgeKey(edge) << 1
	if reverse {
		key++
	}
	return key
}

// Edge returns undirected edge identifier
func (key EdgeKey) Edge() EdgeID {
	return EdgeID(key >> 1)
}

// IsReverse returns true if key describes backward (adjacent -> base) traversal
func (key EdgeKey) IsReverse() bool {
	return key&1 == 1
}

// Reverse returns key of the same edge traversed in opposite direction
func (key EdgeKey) Reverse() EdgeKey {
	return key ^ 1
}
