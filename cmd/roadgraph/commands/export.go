package commands

import (
	"os"

	"github.com/LdDl/roadgraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export imported edges with their encoded values to GeoJSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := importNetwork()
		if err != nil {
			return err
		}
		fc, err := roadgraph.EdgesFeatureCollection(network.Graph, []roadgraph.BooleanEncodedValue{network.Access}, []roadgraph.DecimalEncodedValue{network.Speed})
		if err != nil {
			return errors.Wrap(err, "Can't prepare edges")
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "Can't marshal edges")
		}
		if err = os.WriteFile(exportOut, b, 0644); err != nil {
			return errors.Wrap(err, "Can't write file")
		}
		logger.Info("Export done", "file", exportOut, "edges", network.Graph.EdgeCount())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "my_graph.geojson", "Output GeoJSON file")
}
