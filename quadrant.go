// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"strconv"
	"strings"
)

// A Quadrant identifies one of the four equal tiles of a node's bounds.
// The Y-axis points down, so north is the half with smaller Y values.
type Quadrant uint8

const (
	// NE is the top-right quadrant.
	NE Quadrant = iota
	// NW is the top-left quadrant.
	NW
	// SW is the bottom-left quadrant.
	SW
	// SE is the bottom-right quadrant.
	SE
)

const numQuadrants = 4

var quadrantNames = [numQuadrants]string{"NE", "NW", "SW", "SE"}

// String returns the compass abbreviation of the quadrant.
func (q Quadrant) String() string {
	if q < numQuadrants {
		return quadrantNames[q]
	}
	return "Quadrant(" + strconv.Itoa(int(q)) + ")"
}

// Of returns the tile of parent covered by quadrant q. The four tiles
// of a parent meet exactly at its midlines.
func (q Quadrant) Of(parent Rect) Rect {
	w, h := parent.Width/2, parent.Height/2
	switch q {
	case NE:
		return Rect{X: parent.X + w, Y: parent.Y, Width: w, Height: h}
	case NW:
		return Rect{X: parent.X, Y: parent.Y, Width: w, Height: h}
	case SW:
		return Rect{X: parent.X, Y: parent.Y + h, Width: w, Height: h}
	case SE:
		return Rect{X: parent.X + w, Y: parent.Y + h, Width: w, Height: h}
	default:
		fmtPanic("invalid quadrant %d", q)
		return Rect{}
	}
}

// Quadrants is a set of Quadrant values.
type Quadrants uint8

// Has reports whether q is a member of the set.
func (qs Quadrants) Has(q Quadrant) bool {
	return q < numQuadrants && qs&(1<<q) != 0
}

// Len returns the number of quadrants in the set.
func (qs Quadrants) Len() int {
	var n int
	for q := NE; q < numQuadrants; q++ {
		if qs.Has(q) {
			n++
		}
	}
	return n
}

// Each calls f for every member of the set in the order NE, NW, SW,
// SE.
func (qs Quadrants) Each(f func(Quadrant)) {
	for q := NE; q < numQuadrants; q++ {
		if qs.Has(q) {
			f(q)
		}
	}
}

// String returns the members of the set, e.g. {NE,SE}.
func (qs Quadrants) String() string {
	var b strings.Builder
	b.WriteByte('{')
	qs.Each(func(q Quadrant) {
		if b.Len() > 1 {
			b.WriteByte(',')
		}
		b.WriteString(q.String())
	})
	b.WriteByte('}')
	return b.String()
}

func (qs Quadrants) with(q Quadrant) Quadrants {
	return qs | 1<<q
}
