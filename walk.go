// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Walk traverses the tree rooted at n in pre-order, visiting children
// in the order NE, NW, SW, SE. If fn returns false for a node, the
// node's children are skipped.
//
// The tree must not be modified during the walk.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) || n.children == nil {
		return
	}
	for q := range n.children {
		n.children[q].Walk(fn)
	}
}

// Len returns the number of distinct rectangles stored in the tree
// rooted at n. A rectangle stored in several leaves counts once.
func (n *Node) Len() int {
	seen := make(map[*Rect]struct{})
	n.Walk(func(m *Node) bool {
		for _, item := range m.items {
			seen[item] = struct{}{}
		}
		return true
	})
	return len(seen)
}

// Stats summarizes the shape of a tree.
type Stats struct {
	// Nodes is the total number of nodes, the root included.
	Nodes int
	// Leaves is the number of leaf nodes.
	Leaves int
	// MaxDepth is the depth of the deepest node.
	MaxDepth int
	// Refs is the number of rectangle references held by leaves. A
	// rectangle stored in several leaves is counted once per leaf.
	Refs int
}

// Stats returns summary statistics for the tree rooted at n. Depths
// are absolute, so for a subtree MaxDepth is at least n.Depth().
func (n *Node) Stats() Stats {
	var s Stats
	n.Walk(func(m *Node) bool {
		s.Nodes++
		if m.IsLeaf() {
			s.Leaves++
		}
		if m.depth > s.MaxDepth {
			s.MaxDepth = m.depth
		}
		s.Refs += len(m.items)
		return true
	})
	return s
}
