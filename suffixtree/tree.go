// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffixtree implements an online suffix tree.
//
// The tree is built with Ukkonen's algorithm: each appended symbol extends
// the implicit suffix tree of the input seen so far in amortized constant
// time. The live tree answers substring membership queries at any point.
// Queries that report positions need every suffix to end on a leaf, which
// only holds once the input is terminated; Finalize returns such a
// terminated, read-only Index.
//
// References:
//	https://www.cs.helsinki.fi/u/ukkonen/SuffixT1withFigs.pdf
//	https://stackoverflow.com/questions/9452701
package suffixtree

import (
	"io"

	"github.com/dsnet/suffix/internal"
)

type (
	nodeID  int32
	symbol  int16 // A byte value or the terminal symbol
	edgeEnd int32 // Exclusive end offset of an edge label
)

const (
	root   nodeID = 0
	noNode nodeID = -1

	// openEnd marks an edge label that extends to the end of the input.
	// Extending every leaf by one symbol thus costs nothing.
	openEnd edgeEnd = -1

	// terminal is the symbol appended by Finalize. It lies outside the byte
	// alphabet so that it never matches any input symbol.
	terminal symbol = -1
)

type node struct {
	start  int32            // Offset of the first symbol of the incoming edge
	end    edgeEnd          // Exclusive end of the incoming edge, or openEnd
	link   nodeID           // Suffix link
	suffix int32            // Suffix start offset; set on leaves by Finalize
	edges  map[symbol]nodeID // Children keyed by the first symbol of their edge
}

func (n *node) isOpen() bool { return n.end == openEnd }
func (n *node) isLeaf() bool { return len(n.edges) == 0 }

// stop reports the exclusive end offset of the edge label given that size
// symbols have been processed.
func (n *node) stop(size int) int {
	if n.isOpen() {
		return size
	}
	return int(n.end)
}

func (n *node) edgeLen(size int) int { return n.stop(size) - int(n.start) }

// activePoint is the construction cursor of Ukkonen's algorithm.
// The point where the next extension begins is length symbols down the edge
// leaving node that starts with the symbol at offset edge.
type activePoint struct {
	node      nodeID
	edge      int // Buffer offset of the first symbol of the active edge
	length    int // Number of symbols matched along the active edge
	remainder int // Number of suffixes not yet explicitly inserted
}

// tree is the node arena and symbol buffer shared by Tree and Index.
type tree struct {
	data  []byte
	size  int // Number of symbols processed, including the terminal
	nodes []node

	ap       activePoint
	needLink nodeID // Internal node waiting for its suffix link
}

func (t *tree) init() {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{start: -1, end: openEnd, link: root})
	}
}

// at reports the symbol at offset i. The offset just past the buffer holds
// the terminal symbol.
func (t *tree) at(i int) symbol {
	if i < len(t.data) {
		return symbol(t.data[i])
	}
	return terminal
}

func (t *tree) newNode(start int, end edgeEnd) nodeID {
	t.nodes = append(t.nodes, node{start: int32(start), end: end, link: root, suffix: -1})
	return nodeID(len(t.nodes) - 1)
}

func (t *tree) setEdge(id nodeID, c symbol, child nodeID) {
	nd := &t.nodes[id]
	if nd.edges == nil {
		nd.edges = make(map[symbol]nodeID)
	}
	nd.edges[c] = child
}

// addLink points the suffix link of the pending internal node (if any) at
// id, and makes id the pending node. The root is never pending.
func (t *tree) addLink(id nodeID) {
	if t.needLink != root {
		t.nodes[t.needLink].link = id
	}
	t.needLink = id
}

// walkDown moves the active point past the edge into next if the active
// length spans the whole edge.
func (t *tree) walkDown(ap *activePoint, next nodeID) bool {
	if l := t.nodes[next].edgeLen(t.size); ap.length >= l {
		ap.edge += l
		ap.length -= l
		ap.node = next
		return true
	}
	return false
}

// extend processes the symbol at offset pos, turning the implicit suffix
// tree of the symbols before pos into that of the symbols up to pos.
func (t *tree) extend(ap *activePoint, pos int) {
	c := t.at(pos)
	t.size = pos + 1
	t.needLink = root
	ap.remainder++
	for ap.remainder > 0 {
		if ap.length == 0 {
			ap.edge = pos
		}

		next, ok := t.nodes[ap.node].edges[t.at(ap.edge)]
		if !ok {
			// Rule 2: a new leaf hangs off the active node.
			leaf := t.newNode(pos, openEnd)
			t.setEdge(ap.node, t.at(ap.edge), leaf)
			t.addLink(ap.node)
		} else {
			if t.walkDown(ap, next) {
				continue
			}
			if t.at(int(t.nodes[next].start)+ap.length) == c {
				// The suffix is already implicit in the tree. So are all
				// the shorter ones, thus this phase is done.
				ap.length++
				t.addLink(ap.node)
				break
			}

			// Split the edge at the active point.
			start := int(t.nodes[next].start)
			split := t.newNode(start, edgeEnd(start+ap.length))
			t.setEdge(ap.node, t.at(ap.edge), split)
			t.setEdge(split, c, t.newNode(pos, openEnd))
			t.nodes[next].start += int32(ap.length)
			t.setEdge(split, t.at(int(t.nodes[next].start)), next)
			t.addLink(split)
		}
		ap.remainder--

		if ap.node == root && ap.length > 0 {
			// Rule 1: the next suffix to insert is one symbol shorter.
			ap.length--
			ap.edge = pos - ap.remainder + 1
		} else {
			// Rule 3: continue from the node of the next shorter suffix.
			ap.node = t.nodes[ap.node].link
		}
	}
}

// descend follows pattern from the root. It reports the node at or below
// the point where pattern ends, since the whole subtree of that node shares
// pattern as a prefix.
func (t *tree) descend(pattern []byte) (nodeID, bool) {
	id := root
	for i := 0; i < len(pattern); {
		next, ok := t.nodes[id].edges[symbol(pattern[i])]
		if !ok {
			return noNode, false
		}
		nd := &t.nodes[next]
		for j, end := int(nd.start), nd.stop(t.size); j < end && i < len(pattern); j, i = j+1, i+1 {
			if t.at(j) != symbol(pattern[i]) {
				return noNode, false
			}
		}
		id = next
	}
	return id, true
}

// Contains reports whether pattern occurs as a contiguous substring of the
// input. The empty pattern is always contained.
func (t *tree) Contains(pattern []byte) bool {
	if len(t.nodes) == 0 {
		return len(pattern) == 0
	}
	_, ok := t.descend(pattern)
	return ok
}

// Len reports the number of input symbols indexed.
func (t *tree) Len() int { return len(t.data) }

// Bytes returns the indexed input. The caller must not modify it.
func (t *tree) Bytes() []byte { return t.data }

// NumNodes reports the number of nodes in the arena, including the root.
func (t *tree) NumNodes() int {
	if len(t.nodes) == 0 {
		return 1
	}
	return len(t.nodes)
}

// Tree is an online suffix tree over a growing byte string.
// The zero value is an empty tree ready for use.
//
// A Tree must not be appended to by more than one goroutine at a time,
// nor queried while an append is in progress.
type Tree struct {
	tree
}

// New returns an empty Tree.
func New() *Tree {
	t := new(Tree)
	t.init()
	return t
}

// Build returns a Tree over all of b.
func Build(b []byte) *Tree {
	t := New()
	t.Write(b)
	return t
}

// Append extends the tree with the symbol c.
func (t *Tree) Append(c byte) {
	t.init()
	t.data = append(t.data, c)
	t.extend(&t.ap, len(t.data)-1)
	if internal.Debug {
		t.checkInvariants()
	}
}

// WriteByte appends c. It never returns an error.
func (t *Tree) WriteByte(c byte) error {
	t.Append(c)
	return nil
}

// Write appends every symbol of b. It never returns an error.
func (t *Tree) Write(b []byte) (int, error) {
	for _, c := range b {
		t.Append(c)
	}
	return len(b), nil
}

// WriteString appends every symbol of s. It never returns an error.
func (t *Tree) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		t.Append(s[i])
	}
	return len(s), nil
}

// ReadFrom appends every symbol read from r until io.EOF.
// Symbols read before an error are kept.
func (t *Tree) ReadFrom(r io.Reader) (int64, error) {
	return internal.ReadFrom(t, r)
}

// Reset discards the indexed input.
// An Index returned by an earlier Finalize is unaffected.
func (t *Tree) Reset() {
	*t = Tree{}
	t.init()
}
