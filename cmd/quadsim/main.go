// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command quadsim runs a simulation of bouncing rectangles, using a
// quadtree rebuilt every frame to find overlapping pairs.
//
// The simulation is configured with QUADSIM_* environment variables;
// see sim.Config for the full list.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gogama/quadtree/internal/sim"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "quadsim:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := sim.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := sim.NewWorld(cfg, logger)
	if err != nil {
		return err
	}
	s, err := w.Run(ctx, cfg.Frames)
	if err != nil {
		logger.Error("simulation failed", zap.Error(err))
		return err
	}
	fmt.Printf("%d frames, %d candidate pairs, %d contacts\n", s.Frames, s.Candidates, s.Contacts)
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
