package roadgraph

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

const (
	ACCESS_ENCODED_VALUE = "car_access"
	SPEED_ENCODED_VALUE  = "car_average_speed"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// RoadNetwork is an imported graph with encoded values it has been filled with
type RoadNetwork struct {
	Graph  *Graph
	Access BooleanEncodedValue
	Speed  DecimalEncodedValue
	// OSMNodes maps graph node to source OSM node
	OSMNodes []osm.NodeID
}

// Weighting returns fastest weighting over imported encoded values
func (network *RoadNetwork) Weighting() FastestWeighting {
	return FastestWeighting{Access: network.Access, Speed: network.Speed}
}

type wayData struct {
	ID       osm.WayID
	Nodes    []osm.NodeID
	Highway  string
	MaxSpeed string
	Forward  bool
	Backward bool
}

type nodeData struct {
	lat      float64
	lon      float64
	useCount int
	graphID  NodeID
}

func newScanner(ctx context.Context, file *os.File) (OSMScanner, error) {
	name := strings.ToLower(file.Name())
	ext := filepath.Ext(name)
	switch {
	case ext == ".osm" || ext == ".xml":
		return osmxml.New(ctx, file), nil
	case ext == ".pbf":
		return osmpbf.New(ctx, file, 4), nil
	}
	return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, file.Name())
}

// ImportFromOSMFile builds road network from OSM file (*.osm, *.xml or *.osm.pbf).
//
// Ways are split into edges at nodes shared by several ways (and at ways ends). Graph is frozen on return
func ImportFromOSMFile(fileName string, cfg *OsmConfiguration, logger *slog.Logger) (*RoadNetwork, error) {
	if cfg == nil {
		cfg = DefaultOsmConfiguration()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer file.Close()

	logger.Info("Scanning ways...", "file", fileName)
	st := time.Now()
	ways, nodes, err := scanWays(file, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Done scanning ways", "elapsed", time.Since(st), "ways", len(ways))

	// Seek file to start
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}
	st = time.Now()
	if err = scanNodes(file, nodes); err != nil {
		return nil, err
	}
	logger.Info("Done scanning nodes", "elapsed", time.Since(st), "nodes", len(nodes))

	st = time.Now()
	network, err := buildNetwork(ways, nodes, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Done preparing graph", "elapsed", time.Since(st), "nodes", network.Graph.NodeCount(), "edges", network.Graph.EdgeCount())
	return network, nil
}

func scanWays(file *os.File, cfg *OsmConfiguration, logger *slog.Logger) ([]wayData, map[osm.NodeID]*nodeData, error) {
	scanner, err := newScanner(context.Background(), file)
	if err != nil {
		return nil, nil, err
	}
	defer scanner.Close()

	ways := []wayData{}
	nodes := make(map[osm.NodeID]*nodeData)
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		highway := way.Tags.Find(cfg.EntityName)
		if highway == "" || !cfg.CheckTag(highway) || len(way.Nodes) < 2 {
			continue
		}
		if isCarRestricted(way.Tags) {
			continue
		}
		forward, backward := true, true
		onewayText := way.Tags.Find("oneway")
		switch onewayText {
		case "yes", "1", "true":
			backward = false
		case "-1":
			forward = false
		case "", "no", "0", "false":
			if _, ok := junctionTypes[way.Tags.Find("junction")]; ok {
				backward = false
			}
		default:
			if _, found := onewayReversible[onewayText]; !found {
				logger.Warn("Unhandled `oneway` tag value", "value", onewayText, "way", way.ID)
			}
		}
		prepared := wayData{
			ID:       way.ID,
			Nodes:    make([]osm.NodeID, 0, len(way.Nodes)),
			Highway:  highway,
			MaxSpeed: way.Tags.Find("maxspeed"),
			Forward:  forward,
			Backward: backward,
		}
		for i, wayNode := range way.Nodes {
			prepared.Nodes = append(prepared.Nodes, wayNode.ID)
			node, ok := nodes[wayNode.ID]
			if !ok {
				node = &nodeData{lat: math.NaN(), lon: math.NaN(), graphID: -1}
				nodes[wayNode.ID] = node
			}
			// Ends of the way are always junctions
			if i == 0 || i == len(way.Nodes)-1 {
				node.useCount += 2
			} else {
				node.useCount++
			}
		}
		ways = append(ways, prepared)
	}
	if scanner.Err() != nil {
		return nil, nil, errors.Wrap(scanner.Err(), "Scanner error on Ways")
	}
	return ways, nodes, nil
}

func scanNodes(file *os.File, nodes map[osm.NodeID]*nodeData) error {
	scanner, err := newScanner(context.Background(), file)
	if err != nil {
		return err
	}
	defer scanner.Close()
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if data, ok := nodes[node.ID]; ok {
			data.lat = node.Lat
			data.lon = node.Lon
		}
	}
	if scanner.Err() != nil {
		return errors.Wrap(scanner.Err(), "Scanner error on Nodes")
	}
	return nil
}

func buildNetwork(ways []wayData, nodes map[osm.NodeID]*nodeData, cfg *OsmConfiguration) (*RoadNetwork, error) {
	em := NewEncodingManager()
	access, err := em.RegisterBoolean(ACCESS_ENCODED_VALUE, true)
	if err != nil {
		return nil, errors.Wrap(err, "Can't register access")
	}
	speed, err := em.RegisterDecimal(SPEED_ENCODED_VALUE, cfg.SpeedBits, cfg.SpeedFactor, true)
	if err != nil {
		return nil, errors.Wrap(err, "Can't register speed")
	}
	graph, err := NewGraph(em, WithExpectedEdges(len(ways)))
	if err != nil {
		return nil, err
	}
	network := &RoadNetwork{
		Graph:    graph,
		Access:   access,
		Speed:    speed,
		OSMNodes: make([]osm.NodeID, 0),
	}

	graphNode := func(osmID osm.NodeID) (NodeID, error) {
		data := nodes[osmID]
		if math.IsNaN(data.lat) {
			return -1, fmt.Errorf("Missing node with id: %d", osmID)
		}
		if data.graphID < 0 {
			id, err := graph.CreateNode(data.lat, data.lon)
			if err != nil {
				return -1, err
			}
			data.graphID = id
			network.OSMNodes = append(network.OSMNodes, osmID)
		}
		return data.graphID, nil
	}

	for _, way := range ways {
		wayDefaultSpeed := math.Min(cfg.speedFor(way.Highway, way.MaxSpeed), speed.MaxStorableValue())
		wayDefaultSpeed = math.Max(wayDefaultSpeed, speed.SmallestNonZeroValue())
		source, err := graphNode(way.Nodes[0])
		if err != nil {
			return nil, errors.Wrapf(err, "Can't prepare way %d", way.ID)
		}
		geometry := []GeoPoint{{Lat: nodes[way.Nodes[0]].lat, Lon: nodes[way.Nodes[0]].lon}}
		for i := 1; i < len(way.Nodes); i++ {
			data := nodes[way.Nodes[i]]
			if math.IsNaN(data.lat) {
				return nil, errors.Wrapf(fmt.Errorf("Missing node with id: %d", way.Nodes[i]), "Can't prepare way %d", way.ID)
			}
			geometry = append(geometry, GeoPoint{Lat: data.lat, Lon: data.lon})
			if data.useCount < 2 {
				continue
			}
			target, err := graphNode(way.Nodes[i])
			if err != nil {
				return nil, errors.Wrapf(err, "Can't prepare way %d", way.ID)
			}
			edge, err := graph.CreateEdge(source, target)
			if err != nil {
				return nil, errors.Wrapf(err, "Can't create edge for way %d", way.ID)
			}
			if err = edge.SetDistance(getSphericalLength(geometry)); err != nil {
				return nil, errors.Wrapf(err, "Can't set distance for way %d", way.ID)
			}
			if err = SetSpeed(wayDefaultSpeed, way.Forward, way.Backward, access, speed, edge); err != nil {
				return nil, errors.Wrapf(err, "Can't set speed for way %d", way.ID)
			}
			source = target
			geometry = []GeoPoint{{Lat: data.lat, Lon: data.lon}}
		}
	}
	graph.Freeze()
	return network, nil
}
