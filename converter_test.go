package roadgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convertersGraph(t *testing.T) (*Graph, []EdgeID) {
	graph, ids := triangleGraph(t)
	na := graph.NodeAccess()
	require.NoError(t, na.SetPoint(0, 0, 0))
	require.NoError(t, na.SetPoint(1, 1, 2))
	require.NoError(t, na.SetPoint(2, 3, 4))
	return graph, ids
}

func TestPathToWKT(t *testing.T) {
	graph, ids := convertersGraph(t)
	path := newTestPath(graph, 20, 0, 0, ids[0], ids[1])
	text, err := PathToWKT(path)
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING(0 0,2 1,4 3)", text)
	assert.Equal(t, "POINT(2.000000 1.000000)", PrepareWKTPoint(GeoPoint{Lat: 1, Lon: 2}))
}

func TestGeoJSON(t *testing.T) {
	graph, ids := convertersGraph(t)

	text, err := PrepareGeoJSONPoint(GeoPoint{Lat: 1, Lon: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[2,1]}`, text)

	fc, err := EdgesFeatureCollection(graph, nil, nil)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, NodeID(0), fc.Features[2].Properties["base_node"])
	assert.Equal(t, NodeID(2), fc.Features[2].Properties["adj_node"])
	assert.Equal(t, 20.0, fc.Features[2].Properties["distance"])

	feature, err := PathFeature(newTestPath(graph, 20, 1000, 2, ids[0], ids[1]))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {2, 1}, {4, 3}}, feature.Geometry.LineString)
	assert.Equal(t, int64(1000), feature.Properties["time"])
}

func TestProblemsFeatureCollection(t *testing.T) {
	graph, _ := convertersGraph(t)
	na := graph.NodeAccess()
	require.NoError(t, na.SetPoint(1, 95, 2))
	problems := FindCoordinateProblems(na)
	require.Len(t, problems, 1)
	fc, err := ProblemsFeatureCollection(na, problems)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "latitude", fc.Features[0].Properties["axis"])
	assert.Equal(t, []float64{2, 95}, fc.Features[0].Geometry.Point)
}
