// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package automaton

import (
	"bytes"
	"fmt"
	"sort"
)

// String returns a dump of every state, one per line, with transitions in
// symbol order. Clones are marked with '+'.
func (g *graph) String() string {
	buf := new(bytes.Buffer)
	for i, st := range g.states {
		mark := ""
		if st.clone {
			mark = "+"
		}
		fmt.Fprintf(buf, "%d%s: len:%d link:%d {", i, mark, st.length, st.link)

		keys := make([]int, 0, len(st.next))
		for c := range st.next {
			keys = append(keys, int(c))
		}
		sort.Ints(keys)
		for j, c := range keys {
			if j > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%q:%d", byte(c), st.next[byte(c)])
		}
		buf.WriteString("}\n")
	}
	return buf.String()
}
