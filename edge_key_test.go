package roadgraph

import (
	"testing"

	"github.com/pkg/errors"
)

func TestEdgeKey(t *testing.T) {
	key, err := CreateEdgeKey(1, false)
	if err != nil {
		t.Error(err)
		return
	}
	if key != 2 {
		t.Errorf("Forward key of edge 1 must be 2, but got %d", key)
	}
	key, err = CreateEdgeKey(1, true)
	if err != nil {
		t.Error(err)
		return
	}
	if key != 3 {
		t.Errorf("Reverse key of edge 1 must be 3, but got %d", key)
	}
	if key.Reverse() != 2 {
		t.Errorf("Reversed key of 3 must be 2, but got %d", key.Reverse())
	}
}

func TestEdgeKeyRoundTrip(t *testing.T) {
	for edge := EdgeID(0); edge < 1000; edge++ {
		for _, reverse := range []bool{false, true} {
			key, err := CreateEdgeKey(edge, reverse)
			if err != nil {
				t.Error(err)
				return
			}
			decodedEdge, decodedReverse, err := DecodeEdgeKey(key)
			if err != nil {
				t.Error(err)
				return
			}
			if decodedEdge != edge || decodedReverse != reverse {
				t.Errorf("Key %d must decode to (%d, %t), but got (%d, %t)", key, edge, reverse, decodedEdge, decodedReverse)
			}
		}
	}
}

func TestEdgeKeyNegative(t *testing.T) {
	if _, err := CreateEdgeKey(-1, false); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Negative edge must give ErrInvalidArgument, but got %v", err)
	}
	if _, _, err := DecodeEdgeKey(-2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Negative key must give ErrInvalidArgument, but got %v", err)
	}
}
