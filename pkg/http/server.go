package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/wayfinder/pkg/http/router"
	"github.com/lintang-b-s/wayfinder/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/wayfinder/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use. start the API in the background with settings from viper.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,
	routingService controllers.RoutingService,
) *Server {
	config := http_server.Config{
		Port:           viper.GetInt("API_PORT"),
		Timeout:        viper.GetDuration("API_TIMEOUT"),
		UseRateLimit:   viper.GetBool("USE_RATE_LIMIT"),
		RateLimitRPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: viper.GetInt("RATE_LIMIT_BURST"),
	}

	server := http_router.NewAPI(log)

	s.g.Go(func() error {
		return server.Run(ctx, config, routingService)
	})

	return s
}

// Wait. block until the API goroutine returns.
func (s *Server) Wait() error {
	return s.g.Wait()
}

// GracefulShutdown. block until SIGINT or SIGTERM.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
