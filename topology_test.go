package roadgraph

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sebdah/goldie/v2"
)

func TestCommonNode(t *testing.T) {
	graph, err := NewGraph(nil)
	if err != nil {
		t.Error(err)
		return
	}
	pairs := [][2]NodeID{{0, 1}, {1, 2}, {2, 3}, {1, 0}}
	for _, pair := range pairs {
		if _, err = graph.CreateEdge(pair[0], pair[1]); err != nil {
			t.Error(err)
			return
		}
	}
	cases := []struct {
		a, b     EdgeID
		expected NodeID
	}{
		{0, 1, 1},
		{1, 0, 1},
		{1, 2, 2},
		{2, 1, 2},
		{0, 3, 0},
	}
	for _, c := range cases {
		node, err := CommonNode(graph, c.a, c.b)
		if err != nil {
			t.Error(err)
			continue
		}
		if node != c.expected {
			t.Errorf("Common node of edges %d and %d must be %d, but got %d", c.a, c.b, c.expected, node)
		}
	}
	if _, err = CommonNode(graph, 0, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Edges without shared node must give ErrInvalidArgument, but got %v", err)
	}
	if _, err = CommonNode(graph, 1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Same edge must give ErrInvalidArgument, but got %v", err)
	}
	if _, err = CommonNode(graph, 0, 42); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("Unknown edge must give ErrEdgeNotFound, but got %v", err)
	}
}

func TestDiagnoseCoordinates(t *testing.T) {
	graph, err := NewGraph(nil)
	if err != nil {
		t.Error(err)
		return
	}
	points := []GeoPoint{
		{Lat: 0, Lon: 0},
		{Lat: 100, Lon: 0},
		{Lat: 0, Lon: 200},
		{Lat: -100, Lon: -200},
		{Lat: 10, Lon: 10},
		{Lat: 91, Lon: 181},
	}
	for _, pt := range points {
		if _, err = graph.CreateNode(pt.Lat, pt.Lon); err != nil {
			t.Error(err)
			return
		}
	}
	correct := []string{
		"node 1: latitude is not within its bounds 100.000000",
		"node 2: longitude is not within its bounds 200.000000",
		"node 3: latitude is not within its bounds -100.000000",
		"node 3: longitude is not within its bounds -200.000000",
		"node 5: latitude is not within its bounds 91.000000",
		"node 5: longitude is not within its bounds 181.000000",
	}
	problems := DiagnoseCoordinates(graph.NodeAccess())
	if len(problems) != len(correct) {
		t.Errorf("Problems count must be %d, but got %d: %v", len(correct), len(problems), problems)
		return
	}
	for i := range correct {
		if problems[i] != correct[i] {
			t.Errorf("Problem %d must be '%s', but got '%s'", i, correct[i], problems[i])
		}
	}

	g := goldie.New(t)
	g.Assert(t, "diagnose", []byte(strings.Join(problems, "\n")+"\n"))
}

func TestDiagnoseCoordinatesValid(t *testing.T) {
	graph, err := NewGraph(nil)
	if err != nil {
		t.Error(err)
		return
	}
	for _, pt := range []GeoPoint{{Lat: 90, Lon: 180}, {Lat: -90, Lon: -180}, {Lat: 55.75, Lon: 37.61}} {
		if _, err = graph.CreateNode(pt.Lat, pt.Lon); err != nil {
			t.Error(err)
			return
		}
	}
	problems := DiagnoseCoordinates(graph.NodeAccess())
	if len(problems) != 0 {
		t.Errorf("There must be no problems, but got %v", problems)
	}
}
