// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/dsnet/suffix/internal"
)

// String returns an indented dump of every edge in the tree, children in
// symbol order. The terminal symbol is printed as '$'.
func (t *tree) String() string {
	if len(t.nodes) == 0 {
		return ""
	}
	buf := new(bytes.Buffer)
	t.printNode(buf, root, 0)
	return buf.String()
}

func (t *tree) printNode(buf *bytes.Buffer, id nodeID, indent int) {
	for _, child := range t.children(id) {
		nd := &t.nodes[child]
		var label []byte
		for i, end := int(nd.start), nd.stop(t.size); i < end; i++ {
			if c := t.at(i); c == terminal {
				label = append(label, '$')
			} else {
				label = append(label, byte(c))
			}
		}
		fmt.Fprint(buf, strings.Repeat("  ", indent))
		fmt.Fprintf(buf, "* %q [%d:%d]", label, nd.start, nd.stop(t.size))
		if nd.isLeaf() && nd.suffix >= 0 {
			fmt.Fprintf(buf, " @%d", nd.suffix)
		}
		fmt.Fprintln(buf)
		t.printNode(buf, child, indent+1)
	}
}

// children reports the children of id ordered by their first symbol.
func (t *tree) children(id nodeID) []nodeID {
	edges := t.nodes[id].edges
	keys := make([]int, 0, len(edges))
	for c := range edges {
		keys = append(keys, int(c))
	}
	sort.Ints(keys)
	ids := make([]nodeID, len(keys))
	for i, c := range keys {
		ids[i] = edges[symbol(c)]
	}
	return ids
}

// checkInvariants panics if the arena is not a well-formed suffix tree.
func (t *tree) checkInvariants() {
	if len(t.nodes) == 0 {
		return
	}
	internal.Assert(t.nodes[root].link == root, "root links to itself")

	incoming := make([]int, len(t.nodes))
	for id := range t.nodes {
		nd := &t.nodes[id]
		internal.Assert(nd.link >= 0 && int(nd.link) < len(t.nodes), "suffix link within arena")
		for c, child := range nd.edges {
			internal.Assert(child > root && int(child) < len(t.nodes), "edge target within arena")
			incoming[child]++

			cn := &t.nodes[child]
			internal.Assert(cn.edgeLen(t.size) > 0, "edge label is not empty")
			internal.Assert(t.at(int(cn.start)) == c, "edge keyed by its first symbol")
			if cn.isLeaf() {
				internal.Assert(cn.isOpen(), "leaf edge is open")
			} else {
				internal.Assert(!cn.isOpen(), "internal edge is closed")
				internal.Assert(len(cn.edges) >= 2, "internal node branches")
			}
		}
	}
	for id := range t.nodes {
		if id == int(root) {
			internal.Assert(incoming[id] == 0, "root has no incoming edge")
		} else {
			internal.Assert(incoming[id] == 1, "node has one incoming edge")
		}
	}

	ap := &t.ap
	internal.Assert(ap.remainder >= 0 && ap.remainder <= t.size, "remainder within input")
	internal.Assert(ap.length >= 0 && ap.length <= ap.remainder, "active length within remainder")
}
