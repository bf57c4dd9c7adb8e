package roadgraph

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt GeoPoint) (string, error) {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can not convert geometry to geojson format")
	}
	return string(b), nil
}

// EdgesFeatureCollection returns every edge as LineString feature. Encoded values go to properties
// as "<name>" (forward) and "<name>_reverse" (backward)
func EdgesFeatureCollection(graph *Graph, booleans []BooleanEncodedValue, decimals []DecimalEncodedValue) (*geojson.FeatureCollection, error) {
	na := graph.NodeAccess()
	fc := geojson.NewFeatureCollection()
	for i := 0; i < graph.EdgeCount(); i++ {
		state, err := graph.Edge(EdgeID(i))
		if err != nil {
			return nil, err
		}
		from, err := na.Point(state.BaseNode())
		if err != nil {
			return nil, err
		}
		to, err := na.Point(state.AdjNode())
		if err != nil {
			return nil, err
		}
		feature := geojson.NewLineStringFeature([][]float64{{from.Lon, from.Lat}, {to.Lon, to.Lat}})
		feature.ID = i
		feature.SetProperty("base_node", state.BaseNode())
		feature.SetProperty("adj_node", state.AdjNode())
		feature.SetProperty("distance", state.Distance())
		for _, ev := range booleans {
			feature.SetProperty(ev.Name(), ev.Get(state))
			feature.SetProperty(ev.Name()+"_reverse", ev.GetReverse(state))
		}
		for _, ev := range decimals {
			feature.SetProperty(ev.Name(), ev.Get(state))
			feature.SetProperty(ev.Name()+"_reverse", ev.GetReverse(state))
		}
		fc.AddFeature(feature)
	}
	return fc, nil
}

// ProblemsFeatureCollection returns a point feature for every coordinate problem
func ProblemsFeatureCollection(na NodeAccess, problems []CoordinateProblem) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, problem := range problems {
		pt, err := na.Point(problem.Node)
		if err != nil {
			return nil, err
		}
		feature := geojson.NewPointFeature([]float64{pt.Lon, pt.Lat})
		feature.SetProperty("node", problem.Node)
		feature.SetProperty("axis", problem.Axis.String())
		feature.SetProperty("value", problem.Value)
		feature.SetProperty("description", problem.String())
		fc.AddFeature(feature)
	}
	return fc, nil
}

// PathFeature returns path as LineString feature with its aggregates as properties
func PathFeature(path *Path) (*geojson.Feature, error) {
	points, err := pathPoints(path)
	if err != nil {
		return nil, err
	}
	coordinates := make([][]float64, len(points))
	for i := range points {
		coordinates[i] = []float64{points[i].Lon, points[i].Lat}
	}
	feature := geojson.NewLineStringFeature(coordinates)
	feature.SetProperty("from_node", path.FromNode())
	feature.SetProperty("end_node", path.EndNode())
	feature.SetProperty("edges", path.Edges())
	feature.SetProperty("distance", path.Distance())
	feature.SetProperty("time", path.Time())
	feature.SetProperty("weight", path.Weight())
	return feature, nil
}

func pathPoints(path *Path) ([]GeoPoint, error) {
	nodes, err := path.CalcNodes()
	if err != nil {
		return nil, err
	}
	na := path.Graph().NodeAccess()
	points := make([]GeoPoint, len(nodes))
	for i, node := range nodes {
		pt, err := na.Point(node)
		if err != nil {
			return nil, err
		}
		points[i] = pt
	}
	return points, nil
}
