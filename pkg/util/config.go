package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/wayfinder/pkg"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	viper.SetDefault("GRAPH_FILE", "./data/floorplan.graph")
	viper.SetDefault("ROOT_ID", pkg.DEFAULT_ROOT_ID)
	viper.SetDefault("ROOT_X", pkg.DEFAULT_ROOT_X)
	viper.SetDefault("ROOT_Z", pkg.DEFAULT_ROOT_Z)
	viper.SetDefault("ROOT_NEIGHBORS", pkg.DEFAULT_ROOT_NEIGHBORS)

	viper.SetDefault("ROUTE_CACHE_SIZE", 128)
	viper.SetDefault("SNAP_RADIUS", 5.0)
}

// ReadConfig. read config.yaml from configPath (./data/ if empty). a missing config file is not an error, defaults and
// environment variables are used instead.
func ReadConfig(configPath string) error {
	if configPath == "" {
		configPath = "./data/"
	}
	setConfigDefaults()
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath(configPath)

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// GetIntSlice. like viper.GetIntSlice, but also accepts a comma separated string such as ROOT_NEIGHBORS=2,21,3 set
// from the environment. a token that is not an integer is an error.
func GetIntSlice(key string) ([]int, error) {
	raw := viper.Get(key)
	str, ok := raw.(string)
	if !ok {
		vals, err := cast.ToIntSliceE(raw)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", key, err)
		}
		return vals, nil
	}

	vals := make([]int, 0, strings.Count(str, ",")+1)
	for _, tok := range strings.Split(str, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := cast.ToIntE(tok)
		if err != nil {
			return nil, fmt.Errorf("config %s: invalid integer %q: %w", key, tok, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
