// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"math"
	"strconv"
)

// Rect is an axis-aligned rectangle given by its top-left corner and
// its size. The Y-axis points down, so the top edge is at Y and the
// bottom edge is at Y+Height.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the X-coordinate of the rectangle's right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y-coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns Width*Height. The result is negative if exactly one of
// the dimensions is negative.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

func (r Rect) midX() float64 {
	return r.X + r.Width/2
}

func (r Rect) midY() float64 {
	return r.Y + r.Height/2
}

// Intersects reports whether r and o share a region of positive area.
// Rectangles which merely touch along an edge or at a corner do not
// intersect, and a rectangle with zero or negative size intersects
// nothing.
//
// Intersects is the exact test callers should apply to the candidates
// returned by Node.Retrieve.
func (r Rect) Intersects(o Rect) bool {
	return math.Max(r.X, o.X) < math.Min(r.Right(), o.Right()) &&
		math.Max(r.Y, o.Y) < math.Min(r.Bottom(), o.Bottom())
}

// Contains reports whether o lies entirely within r, edges included.
func (r Rect) Contains(o Rect) bool {
	return r.X <= o.X && o.Right() <= r.Right() &&
		r.Y <= o.Y && o.Bottom() <= r.Bottom()
}

// String returns a compact representation of the rectangle in the form
// [X,Y,Width,Height].
func (r Rect) String() string {
	b := make([]byte, 0, 48)
	b = append(b, '[')
	b = strconv.AppendFloat(b, r.X, 'g', 8, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, r.Y, 'g', 8, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, r.Width, 'g', 8, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, r.Height, 'g', 8, 64)
	b = append(b, ']')
	return string(b)
}
