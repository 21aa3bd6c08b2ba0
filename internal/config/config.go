package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"
	"github.com/osuushi/convexify/advanced"
)

type Config struct {
	PixelsToUnits      float64    `envconfig:"PIXELS_TO_UNITS" default:"1"`
	MaxPolygonVertices int        `envconfig:"MAX_POLYGON_VERTICES" default:"8"`
	MergeParallelEdges bool       `envconfig:"MERGE_PARALLEL_EDGES" default:"false"`
	LogLevel           slog.Level `envconfig:"LOG_LEVEL" default:"info"`
	IndexCellSize      int        `envconfig:"INDEX_CELL_SIZE" default:"32"`

	Density     float64 `envconfig:"DENSITY" default:"1"`
	Friction    float64 `envconfig:"FRICTION" default:"0.2"`
	Restitution float64 `envconfig:"RESTITUTION" default:"0"`
}

// Read the configuration from CONVEXIFY_ prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("convexify", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) DecomposeOptions() advanced.DecomposeOptions {
	return advanced.DecomposeOptions{
		MaxVertices:        cfg.MaxPolygonVertices,
		MergeParallelEdges: cfg.MergeParallelEdges,
	}
}

// Prototype fixture built from the material defaults.
func (cfg *Config) FixtureDef() advanced.FixtureDef {
	return advanced.FixtureDef{
		Density:     cfg.Density,
		Friction:    cfg.Friction,
		Restitution: cfg.Restitution,
	}
}
