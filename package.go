// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a region quadtree over axis-aligned
// rectangles, used as a broad-phase filter for overlap queries.
//
// A tree is a root Node created with New. The typical cycle is to Clear
// the tree, Insert every live rectangle once, and then issue any number
// of Retrieve queries before the next Clear. Retrieve returns
// candidates: every indexed rectangle that overlaps the query is
// included, but rectangles that do not overlap it may be included too,
// so callers must confirm each candidate with an exact test such as
// Rect.Intersects.
//
// Rectangles are never validated. Zero or negative sizes, and
// rectangles lying partly or wholly outside the root bounds, are routed
// purely by comparison against each node's midlines. This keeps the
// candidate guarantee intact but can make such rectangles expensive to
// index or, for degenerate sizes, unreachable by any query. Keep
// inserted rectangles within the root bounds and give them positive
// area.
//
// Rectangles are indexed by pointer. A rectangle must not be modified
// while it is indexed, and a tree must not be used from more than one
// goroutine at a time.
package quadtree
