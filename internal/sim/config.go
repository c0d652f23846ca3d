// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of the environment variables read by
// LoadConfig, e.g. QUADSIM_BODIES.
const EnvPrefix = "quadsim"

// Config describes a simulated world and the quadtree used to index it.
type Config struct {
	// Width and Height give the size of the world, whose top-left
	// corner is the origin. They are also the root bounds of the tree.
	Width  float64 `envconfig:"WIDTH" default:"1000"`
	Height float64 `envconfig:"HEIGHT" default:"1000"`
	// Bodies is the number of moving bodies.
	Bodies int `envconfig:"BODIES" default:"500"`
	// MinSize and MaxSize bound the side lengths of bodies.
	MinSize float64 `envconfig:"MIN_SIZE" default:"2"`
	MaxSize float64 `envconfig:"MAX_SIZE" default:"20"`
	// MaxSpeed bounds the per-frame displacement of a body along each
	// axis.
	MaxSpeed float64 `envconfig:"MAX_SPEED" default:"5"`
	// Capacity and MaxDepth configure the quadtree.
	Capacity int `envconfig:"CAPACITY" default:"10"`
	MaxDepth int `envconfig:"MAX_DEPTH" default:"4"`
	// Frames is the number of frames Run simulates.
	Frames int `envconfig:"FRAMES" default:"100"`
	// Seed seeds body placement. Zero picks a random seed.
	Seed uint32 `envconfig:"SEED" default:"1"`
	// Debug enables development logging with per-frame output.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// LoadConfig reads a Config from the environment and validates it.
// Unset variables take their defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, wrapErr("failed to load config", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a usable world.
func (cfg *Config) Validate() error {
	switch {
	case !(cfg.Width > 0) || !(cfg.Height > 0):
		return fmtErr("world size must be positive (width=%g, height=%g)", cfg.Width, cfg.Height)
	case cfg.Bodies < 0:
		return fmtErr("body count must not be negative (bodies=%d)", cfg.Bodies)
	case !(cfg.MinSize > 0) || cfg.MinSize > cfg.MaxSize:
		return fmtErr("body sizes must satisfy 0 < min <= max (min=%g, max=%g)", cfg.MinSize, cfg.MaxSize)
	case cfg.MaxSize > cfg.Width || cfg.MaxSize > cfg.Height:
		return fmtErr("max body size %g does not fit in %gx%g world", cfg.MaxSize, cfg.Width, cfg.Height)
	case cfg.MaxSpeed < 0:
		return fmtErr("max speed must not be negative (max speed=%g)", cfg.MaxSpeed)
	case cfg.Capacity < 1:
		return textErr("tree capacity must be at least 1")
	case cfg.MaxDepth < 0:
		return textErr("tree max depth must not be negative")
	case cfg.Frames < 0:
		return textErr("frame count must not be negative")
	}
	return nil
}
