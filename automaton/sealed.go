// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package automaton

import "github.com/dsnet/golib/bits"

// Sealed is a read-only snapshot of an Automaton returned by Finalize.
// Beyond the queries of the live automaton, it knows which states accept
// suffixes of the input and how often each class of substrings occurs.
//
// A Sealed automaton is safe for concurrent use by multiple goroutines.
type Sealed struct {
	graph

	final []byte // Bit set of states on the suffix link chain of last
	size  []int  // Number of end positions of each state
}

// Finalize returns a Sealed snapshot of the symbols appended so far.
// The Automaton itself is left as is and may continue to grow.
func (a *Automaton) Finalize() *Sealed {
	a.init()
	z := &Sealed{graph: graph{
		states: make([]state, len(a.states)),
		last:   a.last,
		n:      a.n,
	}}
	for i, st := range a.states {
		if st.next != nil {
			next := make(map[byte]State, len(st.next))
			for c, t := range st.next {
				next[c] = t
			}
			st.next = next
		}
		z.states[i] = st
	}
	z.markFinal()
	z.propagateSizes()
	return z
}

// markFinal marks every state on the suffix link chain from the last state,
// the initial state included.
func (z *Sealed) markFinal() {
	z.final = make([]byte, (len(z.states)+7)/8)
	for s := z.last; s != NoState; s = z.states[s].link {
		z.final[s/8] |= 1 << uint(s%8)
	}
}

// propagateSizes counts the end positions of every state. Each non-clone
// state owns one end position; a state's count is the sum over its subtree
// in the suffix link tree, so states are visited from longest to shortest.
func (z *Sealed) propagateSizes() {
	z.size = make([]int, len(z.states))
	buckets := make([]int, z.n+2)
	for i, st := range z.states {
		if !st.clone {
			z.size[i] = 1
		}
		buckets[st.length+1]++
	}
	for i := 1; i < len(buckets); i++ {
		buckets[i] += buckets[i-1]
	}
	order := make([]State, len(z.states))
	for i, st := range z.states {
		order[buckets[st.length]] = State(i)
		buckets[st.length]++
	}
	for i := len(order) - 1; i > 0; i-- {
		s := order[i]
		z.size[z.states[s].link] += z.size[s]
	}
}

// IsFinal reports whether s accepts a suffix of the input.
func (z *Sealed) IsFinal(s State) bool {
	return s >= 0 && int(s) < len(z.states) && z.final[s/8]&(1<<uint(s%8)) != 0
}

// NumFinal reports the number of final states.
func (z *Sealed) NumFinal() int {
	return bits.Count(z.final)
}

// IsSuffix reports whether pattern is a suffix of the input.
// The empty pattern is a suffix of every input.
func (z *Sealed) IsSuffix(pattern []byte) bool {
	return z.IsFinal(z.Traverse(pattern, Initial))
}

// Size reports the number of end positions of the strings in the class of s.
func (z *Sealed) Size(s State) int { return z.size[s] }

// Count reports the number of occurrences of pattern. The empty pattern
// occurs Len+1 times.
func (z *Sealed) Count(pattern []byte) int {
	s := z.Traverse(pattern, Initial)
	if s == NoState {
		return 0
	}
	return z.size[s]
}

// DistinctSubstrings reports the number of distinct non-empty substrings
// of the input.
func (z *Sealed) DistinctSubstrings() (n int) {
	for _, st := range z.states[1:] {
		n += int(st.length - z.states[st.link].length)
	}
	return n
}
