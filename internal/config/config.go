// Package config loads service configuration from YAML and defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string
	}
	Solver struct {
		// Strategy is "mrv" or "rowmajor".
		Strategy string
	}
	Storage struct {
		// Backend is "fs", "badger", or "redis".
		Backend string
		FS      struct {
			Dir string
		}
		Badger struct {
			Dir string
		}
		Redis struct {
			Addr     string
			Password string
			DB       int
		}
	}
	Log struct {
		Level string
	}
}

// Load reads config.yaml from path (or the working directory when path is
// empty). A missing file is fine; defaults cover every key.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("solver.strategy", "mrv")
	v.SetDefault("storage.backend", "fs")
	v.SetDefault("storage.fs.dir", "./data")
	v.SetDefault("storage.badger.dir", "./data/badger")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	switch cfg.Storage.Backend {
	case "fs", "badger", "redis":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return &cfg, nil
}
