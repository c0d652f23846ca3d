// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "fmt"

// String returns a summary description of the node.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Leaf{Bounds:%s,Depth:%d,Items:%d}", n.bounds, n.depth, len(n.items))
	}
	return fmt.Sprintf("Internal{Bounds:%s,Depth:%d}", n.bounds, n.depth)
}

// String returns a summary description of the statistics.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{Nodes:%d,Leaves:%d,MaxDepth:%d,Refs:%d}", s.Nodes, s.Leaves, s.MaxDepth, s.Refs)
}
