// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree_test

import (
	"fmt"

	"github.com/gogama/quadtree"
)

// Create some rectangles for example purposes.
var (
	a = &quadtree.Rect{X: 10, Y: 10, Width: 5, Height: 5}
	b = &quadtree.Rect{X: 20, Y: 20, Width: 5, Height: 5}
	c = &quadtree.Rect{X: 80, Y: 80, Width: 5, Height: 5}
	s = &quadtree.Rect{X: 45, Y: 45, Width: 10, Height: 10}
)

func ExampleNew() {
	tree := quadtree.New(quadtree.Rect{Width: 100, Height: 100}, 2, 4)

	fmt.Println(tree)
	// Output: Leaf{Bounds:[0,0,100,100],Depth:0,Items:0}
}

func ExampleNode_Insert() {
	tree := quadtree.New(quadtree.Rect{Width: 100, Height: 100}, 2, 4)

	tree.Insert(a)
	tree.Insert(b)
	fmt.Println(tree)

	tree.Insert(c) // Exceeds capacity 2, so the root splits.
	fmt.Println(tree)
	fmt.Println(tree.Child(quadtree.NW))
	fmt.Println(tree.Child(quadtree.SE))
	// Output: Leaf{Bounds:[0,0,100,100],Depth:0,Items:2}
	// Internal{Bounds:[0,0,100,100],Depth:0}
	// Leaf{Bounds:[0,0,50,50],Depth:1,Items:2}
	// Leaf{Bounds:[50,50,50,50],Depth:1,Items:1}
}

func ExampleNode_Retrieve() {
	tree := quadtree.New(quadtree.Rect{Width: 100, Height: 100}, 2, 4)
	tree.Insert(a)
	tree.Insert(b)
	tree.Insert(c)
	tree.Insert(s) // Straddles the center, so it is stored in all four quadrants.

	fmt.Println("Retrieve 1:", tree.Retrieve(quadtree.Rect{X: 0, Y: 0, Width: 50, Height: 50}))
	fmt.Println("Retrieve 2:", tree.Retrieve(quadtree.Rect{X: 75, Y: 75, Width: 10, Height: 10}))
	fmt.Println("Retrieve 3:", tree.Retrieve(tree.Bounds()))

	// Retrieve returns candidates. Confirm them with an exact test.
	q := quadtree.Rect{X: 0, Y: 0, Width: 30, Height: 30}
	for _, r := range tree.Retrieve(q) {
		fmt.Println(r, r.Intersects(q))
	}
	// Output: Retrieve 1: [[10,10,5,5] [20,20,5,5] [45,45,10,10]]
	// Retrieve 2: [[80,80,5,5] [45,45,10,10]]
	// Retrieve 3: [[45,45,10,10] [10,10,5,5] [20,20,5,5] [80,80,5,5]]
	// [10,10,5,5] true
	// [20,20,5,5] true
	// [45,45,10,10] false
}

func ExampleNode_Clear() {
	tree := quadtree.New(quadtree.Rect{Width: 100, Height: 100}, 2, 4)
	frames := [][]*quadtree.Rect{{a, b}, {a, b, c, s}}

	for i, rects := range frames {
		tree.Clear()
		for _, r := range rects {
			tree.Insert(r)
		}
		fmt.Printf("Frame %d: %d rects, %s\n", i, tree.Len(), tree.Stats())
	}
	// Output: Frame 0: 2 rects, Stats{Nodes:1,Leaves:1,MaxDepth:0,Refs:2}
	// Frame 1: 4 rects, Stats{Nodes:9,Leaves:7,MaxDepth:2,Refs:7}
}
