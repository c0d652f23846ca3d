// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Width:    200,
		Height:   100,
		Bodies:   50,
		MinSize:  1,
		MaxSize:  10,
		MaxSpeed: 3,
		Capacity: 4,
		MaxDepth: 5,
		Frames:   10,
		Seed:     7,
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		modify   func(*Config)
		expected string
	}{
		{"Valid", func(*Config) {}, ""},
		{"NoBodies", func(c *Config) { c.Bodies = 0 }, ""},
		{"EqualSizes", func(c *Config) { c.MinSize = 10 }, ""},
		{"Stationary", func(c *Config) { c.MaxSpeed = 0 }, ""},
		{"Width.Zero", func(c *Config) { c.Width = 0 }, "sim: world size must be positive (width=0, height=100)"},
		{"Height.Negative", func(c *Config) { c.Height = -1 }, "sim: world size must be positive (width=200, height=-1)"},
		{"Bodies.Negative", func(c *Config) { c.Bodies = -1 }, "sim: body count must not be negative (bodies=-1)"},
		{"MinSize.Zero", func(c *Config) { c.MinSize = 0 }, "sim: body sizes must satisfy 0 < min <= max (min=0, max=10)"},
		{"MinSize.Big", func(c *Config) { c.MinSize = 11 }, "sim: body sizes must satisfy 0 < min <= max (min=11, max=10)"},
		{"MaxSize.TooBig", func(c *Config) { c.MaxSize = 150 }, "sim: max body size 150 does not fit in 200x100 world"},
		{"MaxSpeed.Negative", func(c *Config) { c.MaxSpeed = -2 }, "sim: max speed must not be negative (max speed=-2)"},
		{"Capacity.Zero", func(c *Config) { c.Capacity = 0 }, "sim: tree capacity must be at least 1"},
		{"MaxDepth.Negative", func(c *Config) { c.MaxDepth = -1 }, "sim: tree max depth must not be negative"},
		{"Frames.Negative", func(c *Config) { c.Frames = -1 }, "sim: frame count must not be negative"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := validConfig()
			testCase.modify(&cfg)

			err := cfg.Validate()

			if testCase.expected == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, testCase.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, Config{
			Width:    1000,
			Height:   1000,
			Bodies:   500,
			MinSize:  2,
			MaxSize:  20,
			MaxSpeed: 5,
			Capacity: 10,
			MaxDepth: 4,
			Frames:   100,
			Seed:     1,
		}, cfg)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("QUADSIM_WIDTH", "640")
		t.Setenv("QUADSIM_HEIGHT", "480")
		t.Setenv("QUADSIM_BODIES", "25")
		t.Setenv("QUADSIM_CAPACITY", "3")
		t.Setenv("QUADSIM_SEED", "99")
		t.Setenv("QUADSIM_DEBUG", "true")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 640.0, cfg.Width)
		assert.Equal(t, 480.0, cfg.Height)
		assert.Equal(t, 25, cfg.Bodies)
		assert.Equal(t, 3, cfg.Capacity)
		assert.Equal(t, uint32(99), cfg.Seed)
		assert.True(t, cfg.Debug)
	})

	t.Run("ParseError", func(t *testing.T) {
		t.Setenv("QUADSIM_BODIES", "many")

		_, err := LoadConfig()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sim: failed to load config: ")
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("QUADSIM_CAPACITY", "0")

		_, err := LoadConfig()

		assert.EqualError(t, err, "sim: tree capacity must be at least 1")
	})
}
