// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sim simulates rectangular bodies moving in a bounded world,
// using a quadtree rebuilt every frame to find overlapping pairs.
package sim

import (
	"context"
	"time"

	"github.com/gogama/quadtree"
	"github.com/google/uuid"
	"github.com/valyala/fastrand"
	"go.uber.org/zap"
)

// A Body is an axis-aligned rectangle moving at constant velocity. It
// bounces off the edges of the world.
type Body struct {
	ID   uuid.UUID
	Rect quadtree.Rect
	VX   float64
	VY   float64
}

// move advances b by one frame, reflecting it off the edges of bounds.
func (b *Body) move(bounds quadtree.Rect) {
	b.Rect.X, b.VX = bounce(b.Rect.X+b.VX, b.Rect.Width, b.VX, bounds.X, bounds.Right())
	b.Rect.Y, b.VY = bounce(b.Rect.Y+b.VY, b.Rect.Height, b.VY, bounds.Y, bounds.Bottom())
}

func bounce(pos, size, v, lo, hi float64) (float64, float64) {
	if pos < lo {
		return lo, -v
	} else if pos+size > hi {
		return hi - size, -v
	}
	return pos, v
}

// A Frame describes the outcome of one simulation step.
type Frame struct {
	// Number is the one-based frame number.
	Number int
	// Candidates is the number of distinct body pairs the tree
	// reported as possibly overlapping.
	Candidates int
	// Contacts is the number of distinct body pairs which overlap.
	Contacts int
	// Tree describes the shape of the tree built for the frame.
	Tree quadtree.Stats
}

// Summary aggregates the frames simulated by Run.
type Summary struct {
	Frames     int
	Candidates int
	Contacts   int
}

// A World is a set of moving bodies together with the quadtree used to
// find overlaps between them. A World is not safe for concurrent use.
type World struct {
	log    *zap.Logger
	bounds quadtree.Rect
	tree   *quadtree.Node
	bodies []*Body
	// index maps each body's rectangle, as stored in the tree, back to
	// the body's position in bodies.
	index map[*quadtree.Rect]int
	frame int
}

// NewWorld validates cfg and creates a world populated with cfg.Bodies
// randomly placed bodies.
func NewWorld(cfg Config, log *zap.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	bounds := quadtree.Rect{Width: cfg.Width, Height: cfg.Height}
	w := &World{
		log:    log,
		bounds: bounds,
		tree:   quadtree.New(bounds, cfg.Capacity, cfg.MaxDepth),
		bodies: make([]*Body, cfg.Bodies),
		index:  make(map[*quadtree.Rect]int, cfg.Bodies),
	}

	var rng fastrand.RNG
	rng.Seed(cfg.Seed)
	uniform := func(lo, hi float64) float64 {
		return lo + (hi-lo)*float64(rng.Uint32())/(1<<32)
	}
	for i := range w.bodies {
		width := uniform(cfg.MinSize, cfg.MaxSize)
		height := uniform(cfg.MinSize, cfg.MaxSize)
		b := &Body{
			ID: uuid.New(),
			Rect: quadtree.Rect{
				X:      uniform(0, cfg.Width-width),
				Y:      uniform(0, cfg.Height-height),
				Width:  width,
				Height: height,
			},
			VX: uniform(-cfg.MaxSpeed, cfg.MaxSpeed),
			VY: uniform(-cfg.MaxSpeed, cfg.MaxSpeed),
		}
		w.bodies[i] = b
		w.index[&b.Rect] = i
	}

	log.Info("world created",
		zap.Int("bodies", cfg.Bodies),
		zap.Stringer("bounds", bounds),
		zap.Int("capacity", cfg.Capacity),
		zap.Int("max_depth", cfg.MaxDepth),
		zap.Uint32("seed", cfg.Seed))
	return w, nil
}

// Bodies returns the bodies in the world. The bodies must not be
// modified.
func (w *World) Bodies() []*Body {
	bodies := make([]*Body, len(w.bodies))
	copy(bodies, w.bodies)
	return bodies
}

// Tree returns the quadtree built by the most recent Step.
func (w *World) Tree() *quadtree.Node {
	return w.tree
}

// Step advances every body by one frame, re-indexes the world, and
// counts the overlapping pairs of bodies.
func (w *World) Step() Frame {
	// Rectangles may only move while they are not indexed.
	w.tree.Clear()
	for _, b := range w.bodies {
		b.move(w.bounds)
		w.tree.Insert(&b.Rect)
	}

	w.frame++
	f := Frame{Number: w.frame}
	for i, b := range w.bodies {
		for _, r := range w.tree.Retrieve(b.Rect) {
			// Each unordered pair is examined from its lower index.
			if w.index[r] <= i {
				continue
			}
			f.Candidates++
			if b.Rect.Intersects(*r) {
				f.Contacts++
			}
		}
	}
	f.Tree = w.tree.Stats()

	w.log.Debug("frame",
		zap.Int("frame", f.Number),
		zap.Int("candidates", f.Candidates),
		zap.Int("contacts", f.Contacts),
		zap.Stringer("tree", f.Tree))
	return f
}

// Run simulates frames frames, stopping early with an error if ctx is
// done.
func (w *World) Run(ctx context.Context, frames int) (Summary, error) {
	var s Summary
	start := time.Now()
	for s.Frames < frames {
		if err := ctx.Err(); err != nil {
			return s, wrapErr("run stopped after %d frames", err, s.Frames)
		}
		f := w.Step()
		s.Frames++
		s.Candidates += f.Candidates
		s.Contacts += f.Contacts
	}

	n := len(w.bodies)
	fields := []zap.Field{
		zap.Int("frames", s.Frames),
		zap.Int("candidates", s.Candidates),
		zap.Int("contacts", s.Contacts),
		zap.Duration("elapsed", time.Since(start)),
	}
	if pairs := n * (n - 1) / 2; pairs > 0 && s.Frames > 0 {
		fields = append(fields, zap.Float64("candidate_ratio", float64(s.Candidates)/float64(pairs*s.Frames)))
	}
	w.log.Info("run complete", fields...)
	return s, nil
}

// BruteForceContacts counts the overlapping pairs of bodies by testing
// every pair.
func BruteForceContacts(bodies []*Body) int {
	var n int
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Rect.Intersects(bodies[j].Rect) {
				n++
			}
		}
	}
	return n
}
