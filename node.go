// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

const (
	// DefaultCapacity is a reasonable leaf capacity for trees which
	// are rebuilt every frame.
	DefaultCapacity = 10
	// DefaultMaxDepth is a reasonable maximum depth for trees which
	// are rebuilt every frame.
	DefaultMaxDepth = 4
)

// A Node is a node in a region quadtree. The root Node, created with
// New, is the whole tree: there is no separate tree type.
//
// A Node is either a leaf, which stores rectangles directly, or an
// internal node, which has delegated all of its rectangles to exactly
// four children tiling its bounds. A leaf becomes internal when it
// holds more than its capacity and is shallower than the maximum
// depth. An internal node only becomes a leaf again when the tree is
// cleared.
type Node struct {
	// bounds is the region covered by the node. It never changes.
	bounds Rect
	// depth is the distance from the root, which has depth zero.
	depth int
	// capacity is the number of items a leaf may hold before it
	// splits. It is the same for every node in a tree.
	capacity int
	// maxDepth is the depth at and below which leaves never split. It
	// is the same for every node in a tree.
	maxDepth int
	// items holds the rectangles stored in a leaf. It is always empty
	// for an internal node.
	items []*Rect
	// children is nil for a leaf. For an internal node, it holds the
	// four children indexed by Quadrant.
	children *[numQuadrants]Node
}

func validateParams(capacity, maxDepth int) {
	if capacity < 1 {
		textPanic("capacity must be at least 1")
	} else if maxDepth < 0 {
		textPanic("max depth must not be negative")
	}
}

// New creates the root of an empty quadtree covering bounds. A leaf
// holding more than capacity rectangles splits into four children
// unless it is at maxDepth, in which case it grows without limit.
// Panics if capacity is less than 1 or maxDepth is negative.
//
// The bounds are not validated. Bounds with zero or negative size
// produce a tree which is usable but routes every rectangle by
// midline comparisons against a degenerate region.
func New(bounds Rect, capacity, maxDepth int) *Node {
	validateParams(capacity, maxDepth)
	n := &Node{}
	n.init(bounds, 0, capacity, maxDepth)
	return n
}

func (n *Node) init(bounds Rect, depth, capacity, maxDepth int) {
	n.bounds = bounds
	n.depth = depth
	n.capacity = capacity
	n.maxDepth = maxDepth
}

// Bounds returns the region covered by the node.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// Depth returns the node's distance from the root.
func (n *Node) Depth() int {
	return n.depth
}

// Capacity returns the number of rectangles a leaf may hold before it
// splits.
func (n *Node) Capacity() int {
	return n.capacity
}

// MaxDepth returns the depth at which leaves stop splitting.
func (n *Node) MaxDepth() int {
	return n.maxDepth
}

// IsLeaf reports whether the node stores rectangles directly rather
// than delegating to children.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Items returns a copy of the rectangles stored directly in the node.
// The result is empty for internal nodes.
func (n *Node) Items() []*Rect {
	items := make([]*Rect, len(n.items))
	copy(items, n.items)
	return items
}

// Child returns the child covering quadrant q, or nil if the node is a
// leaf.
func (n *Node) Child(q Quadrant) *Node {
	if n.children == nil {
		return nil
	}
	if q >= numQuadrants {
		fmtPanic("invalid quadrant %d", q)
	}
	return &n.children[q]
}

// QuadrantsOf returns the set of the node's quadrants which r
// overlaps, judged only by comparing r's edges with the node's
// midlines. A rectangle straddling a midline belongs to every quadrant
// it touches. No check is made that r lies within the node's bounds.
func (n *Node) QuadrantsOf(r Rect) Quadrants {
	midX, midY := n.bounds.midX(), n.bounds.midY()
	north := r.Y < midY
	west := r.X < midX
	east := r.Right() > midX
	south := r.Bottom() > midY

	var qs Quadrants
	if north && east {
		qs = qs.with(NE)
	}
	if north && west {
		qs = qs.with(NW)
	}
	if west && south {
		qs = qs.with(SW)
	}
	if east && south {
		qs = qs.with(SE)
	}
	return qs
}

// split turns a leaf into an internal node by creating its four
// children. It does not redistribute the node's items.
func (n *Node) split() {
	n.children = new([numQuadrants]Node)
	for q := NE; q < numQuadrants; q++ {
		n.children[q].init(q.Of(n.bounds), n.depth+1, n.capacity, n.maxDepth)
	}
}

// Insert adds r to the tree rooted at n. A rectangle which straddles a
// midline is stored in every quadrant it touches; Retrieve reports it
// only once. Panics if r is nil.
//
// The tree keeps the pointer r, so the rectangle must not be modified
// until the tree is cleared.
func (n *Node) Insert(r *Rect) {
	if r == nil {
		textPanic("nil rect")
	}
	n.insert(r)
}

func (n *Node) insert(r *Rect) {
	if n.children != nil {
		n.QuadrantsOf(*r).Each(func(q Quadrant) {
			n.children[q].insert(r)
		})
		return
	}

	n.items = append(n.items, r)
	if len(n.items) <= n.capacity || n.depth >= n.maxDepth {
		return
	}

	n.split()
	for _, item := range n.items {
		n.QuadrantsOf(*item).Each(func(q Quadrant) {
			n.children[q].insert(item)
		})
	}
	n.items = nil
}

// Retrieve returns every rectangle in the tree which may overlap q.
// The result includes every indexed rectangle that intersects q, and
// possibly some that do not. Each rectangle appears at most once, in
// the order it was first reached by a pre-order traversal visiting
// children in the order NE, NW, SW, SE.
//
// The result is never nil.
func (n *Node) Retrieve(q Rect) []*Rect {
	r := make([]*Rect, 0)
	seen := make(map[*Rect]struct{})
	n.retrieve(q, func(item *Rect) {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			r = append(r, item)
		}
	})
	return r
}

func (n *Node) retrieve(q Rect, f func(*Rect)) {
	for _, item := range n.items {
		f(item)
	}
	if n.children != nil {
		n.QuadrantsOf(q).Each(func(quad Quadrant) {
			n.children[quad].retrieve(q, f)
		})
	}
}

// Clear removes every rectangle from the tree rooted at n and discards
// its children, leaving n an empty leaf covering its original bounds.
func (n *Node) Clear() {
	n.items = nil
	if n.children != nil {
		for q := range n.children {
			n.children[q].Clear()
		}
		n.children = nil
	}
}
