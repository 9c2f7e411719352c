package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/wayfinder/pkg/engine"
	"github.com/lintang-b-s/wayfinder/pkg/http"
	"github.com/lintang-b-s/wayfinder/pkg/http/usecases"
	"github.com/lintang-b-s/wayfinder/pkg/logger"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config_path", "./data/", "directory containing config.yaml")
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

	routingEngine, err := engine.NewEngineFromFile(viper.GetString("GRAPH_FILE"), viper.GetInt("ROUTE_CACHE_SIZE"), logger)
	if err != nil {
		logger.Fatal("initializing routing engine", zap.Error(err))
	}

	routingService := usecases.NewRoutingService(logger, routingEngine, viper.GetFloat64("SNAP_RADIUS"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	api.Use(ctx, logger, routingService)

	signal := http.GracefulShutdown()
	logger.Info("Wayfinder Routing Engine Server Stopping", zap.String("signal", signal.String()))
	cleanup()

	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
