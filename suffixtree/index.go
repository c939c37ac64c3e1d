// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import "sort"

// Index is a terminated, read-only suffix tree returned by Tree.Finalize.
// Every suffix of the input ends on a leaf that records its start offset.
//
// An Index is safe for concurrent use by multiple goroutines.
type Index struct {
	tree

	leaves []int32 // Number of leaves below each node
	depth  []int32 // String depth of each node
	first  []int32 // Smallest suffix offset below each node
}

// Finalize returns an Index over the symbols appended so far.
// The Tree itself is left as is and may continue to grow.
func (t *Tree) Finalize() *Index {
	t.init()
	x := &Index{tree: tree{
		data:     t.data[:len(t.data):len(t.data)],
		size:     t.size,
		nodes:    make([]node, len(t.nodes), len(t.nodes)+2*t.ap.remainder+1),
		ap:       t.ap,
		needLink: root,
	}}
	for i, nd := range t.nodes {
		if nd.edges != nil {
			edges := make(map[symbol]nodeID, len(nd.edges)+1)
			for c, id := range nd.edges {
				edges[c] = id
			}
			nd.edges = edges
		}
		x.nodes[i] = nd
	}

	// Terminate the input so that no suffix remains implicit.
	x.extend(&x.ap, len(x.data))
	x.label()
	return x
}

// label assigns the suffix offset of every leaf and aggregates the
// per-node counters in a single depth-first pass.
func (x *Index) label() {
	n := len(x.nodes)
	x.leaves = make([]int32, n)
	x.depth = make([]int32, n)
	x.first = make([]int32, n)

	// Visit nodes in pre-order so that reversing the order visits every
	// child before its parent.
	order := make([]nodeID, 0, n)
	stack := []nodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)

		nd := &x.nodes[id]
		if nd.isLeaf() {
			nd.suffix = int32(x.size) - x.depth[id]
			continue
		}
		for _, child := range nd.edges {
			x.depth[child] = x.depth[id] + int32(x.nodes[child].edgeLen(x.size))
			stack = append(stack, child)
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		nd := &x.nodes[id]
		if nd.isLeaf() {
			x.leaves[id] = 1
			x.first[id] = nd.suffix
			continue
		}
		x.first[id] = int32(x.size)
		for _, child := range nd.edges {
			x.leaves[id] += x.leaves[child]
			if x.first[child] < x.first[id] {
				x.first[id] = x.first[child]
			}
		}
	}
}

// FindAll reports the start offset of every occurrence of pattern in
// ascending order. The empty pattern occurs at every offset from 0 to Len,
// inclusive.
func (x *Index) FindAll(pattern []byte) []int {
	id, ok := x.descend(pattern)
	if !ok {
		return nil
	}
	pos := make([]int, 0, x.leaves[id])
	stack := []nodeID{id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &x.nodes[id]
		if nd.isLeaf() {
			pos = append(pos, int(nd.suffix))
			continue
		}
		for _, child := range nd.edges {
			stack = append(stack, child)
		}
	}
	sort.Ints(pos)
	return pos
}

// Count reports the number of occurrences of pattern.
func (x *Index) Count(pattern []byte) int {
	id, ok := x.descend(pattern)
	if !ok {
		return 0
	}
	return int(x.leaves[id])
}

// IsSuffix reports whether pattern is a suffix of the input.
func (x *Index) IsSuffix(pattern []byte) bool {
	id, ok := x.descend(pattern)
	if !ok {
		return false
	}
	nd := &x.nodes[id]
	if int(x.depth[id]) == len(pattern) {
		_, ok := nd.edges[terminal]
		return ok
	}
	// Only the terminal symbol may follow on the edge.
	return nd.isLeaf() && int(x.depth[id]) == len(pattern)+1
}

// LongestRepeat reports the leftmost occurrence of the longest substring
// that occurs at least twice in the input. It reports n == 0 if no symbol
// repeats.
func (x *Index) LongestRepeat() (pos, n int) {
	for id := range x.nodes {
		if id == int(root) || x.nodes[id].isLeaf() {
			continue
		}
		d, p := int(x.depth[id]), int(x.first[id])
		if d > n || (d == n && p < pos) {
			pos, n = p, d
		}
	}
	return pos, n
}
