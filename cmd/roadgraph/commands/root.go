package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/LdDl/roadgraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is CLI configuration: flags, ROADGRAPH_* environment variables and optional config file
type Config struct {
	File        string   `mapstructure:"file"`
	Tags        []string `mapstructure:"tags"`
	SpeedBits   int      `mapstructure:"speed_bits"`
	SpeedFactor float64  `mapstructure:"speed_factor"`
	Verbose     bool     `mapstructure:"verbose"`
}

var (
	cfgFile string
	config  Config
	logger  = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "roadgraph",
	Short: "Road network graph toolkit",
	Long: `roadgraph imports OSM road network into bit-packed graph,
checks its coordinates, exports it and validates routes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(&config); err != nil {
			return errors.Wrap(err, "Can't read configuration")
		}
		level := slog.LevelInfo
		if config.Verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml/json/toml)")
	bindConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(serveCmd)
}

// bindConfigFlags registers flags of Config and binds them to viper keys
func bindConfigFlags(flags *pflag.FlagSet) {
	defaults := roadgraph.DefaultOsmConfiguration()
	flags.String("file", "my_graph.osm.pbf", "Filename of OSM file (*.osm.pbf, *.osm or *.xml)")
	flags.StringSlice("tags", defaults.Tags, "Set of needed highway tags (separated by commas)")
	flags.Int("speed_bits", defaults.SpeedBits, "Number of bits for average speed encoded value")
	flags.Float64("speed_factor", defaults.SpeedFactor, "Precision step (km/h) of average speed encoded value")
	flags.BoolP("verbose", "v", false, "Verbose output")
	_ = viper.BindPFlags(flags)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Printf("Warning. Can not read config file '%s': %s\n", cfgFile, err.Error())
		}
	}
	viper.SetEnvPrefix("roadgraph")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// importNetwork imports OSM file according to current configuration
func importNetwork() (*roadgraph.RoadNetwork, error) {
	cfg := roadgraph.DefaultOsmConfiguration()
	if len(config.Tags) > 0 {
		cfg.Tags = config.Tags
	}
	if config.SpeedBits > 0 {
		cfg.SpeedBits = config.SpeedBits
	}
	if config.SpeedFactor > 0 {
		cfg.SpeedFactor = config.SpeedFactor
	}
	network, err := roadgraph.ImportFromOSMFile(config.File, cfg, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't import '%s'", config.File)
	}
	return network, nil
}
