package commands

import (
	"fmt"
	"os"

	"github.com/LdDl/roadgraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var diagnoseGeoJSON string

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check that every node has valid coordinates",
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := importNetwork()
		if err != nil {
			return err
		}
		na := network.Graph.NodeAccess()
		problems := roadgraph.FindCoordinateProblems(na)
		for _, problem := range problems {
			fmt.Fprintln(cmd.OutOrStdout(), problem.String())
		}
		logger.Info("Diagnostics done", "nodes", na.NodeCount(), "problems", len(problems))
		if diagnoseGeoJSON == "" {
			return nil
		}
		fc, err := roadgraph.ProblemsFeatureCollection(na, problems)
		if err != nil {
			return errors.Wrap(err, "Can't prepare problems")
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "Can't marshal problems")
		}
		return os.WriteFile(diagnoseGeoJSON, b, 0644)
	},
}

func init() {
	diagnoseCmd.Flags().StringVar(&diagnoseGeoJSON, "geojson", "", "Write problem nodes to given GeoJSON file")
}
