package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/wayfinder/pkg/floorplan"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
	"github.com/lintang-b-s/wayfinder/pkg/logger"
	"github.com/lintang-b-s/wayfinder/pkg/osmparser"
	preprocessor "github.com/lintang-b-s/wayfinder/pkg/preprocessor"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config_path", "./data/", "directory containing config.yaml")
	recordsDir = flag.String("records_dir", "./data/", "directory with entry_points.json, nav_points.json and edges.json")
	osmFile    = flag.String("osm_file", "", "OSM XML indoor map, used instead of -records_dir when set")
	originLat  = flag.Float64("origin_lat", 0, "latitude projected to the plan origin (osm input only)")
	originLon  = flag.Float64("origin_lon", 0, "longitude projected to the plan origin (osm input only)")
	outFile    = flag.String("out", "./data/floorplan.graph", "compiled graph output file")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(*configPath); err != nil {
		logger.Fatal("reading config", zap.Error(err))
	}

	var records *floorplan.Records
	if *osmFile != "" {
		parser := osmparser.NewIndoorParser(geo.NewCoordinate(*originLat, *originLon), logger)
		records, err = parser.ParseFile(context.Background(), *osmFile)
	} else {
		records, err = floorplan.LoadRecords(*recordsDir)
	}
	if err != nil {
		logger.Fatal("loading floor plan", zap.Error(err))
	}

	rootNeighbors, err := util.GetIntSlice("ROOT_NEIGHBORS")
	if err != nil {
		logger.Fatal("reading config", zap.Error(err))
	}
	root := floorplan.NewRootConfig(viper.GetInt("ROOT_ID"), viper.GetFloat64("ROOT_X"), viper.GetFloat64("ROOT_Z"),
		rootNeighbors)

	prep := preprocessor.NewPreprocessor(root, records, logger)
	if err := prep.Compile(*outFile); err != nil {
		logger.Fatal("preprocessing", zap.Error(err))
	}

	logger.Sugar().Infof("Preprocessing completed successfully.")
}
