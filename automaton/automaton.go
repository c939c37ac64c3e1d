// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package automaton implements an online suffix automaton, also known as the
// directed acyclic word graph (DAWG) of a string.
//
// Every state of the automaton is an equivalence class of substrings that
// share the same set of end positions in the input. Appending a symbol adds
// one state, and at most one clone, in amortized constant time.
//
// References:
//	https://doi.org/10.1016/0304-3975(85)90157-4
//	https://cp-algorithms.com/string/suffix-automaton.html
package automaton

import (
	"io"

	"github.com/dsnet/suffix/internal"
)

// State is a handle to a state of an automaton.
// Handles are stable for the lifetime of the automaton.
type State int32

const (
	// Initial is the state of the empty string.
	Initial State = 0

	// NoState is reported when a transition does not exist.
	NoState State = -1
)

type state struct {
	length int32          // Length of the longest string in the class
	link   State          // Class of the longest suffix outside this class
	clone  bool           // Created by splitting another state
	next   map[byte]State // Transition function
}

// graph is the state arena shared by Automaton and Sealed.
type graph struct {
	states []state
	last   State // State of the whole input
	n      int   // Number of symbols appended
}

func (g *graph) init() {
	if len(g.states) == 0 {
		g.states = append(g.states, state{link: NoState})
	}
}

// Traverse follows the transitions for pattern starting at from.
// It reports NoState as soon as a transition is missing.
func (g *graph) Traverse(pattern []byte, from State) State {
	s := from
	for _, c := range pattern {
		if s < 0 || int(s) >= len(g.states) {
			return NoState
		}
		next, ok := g.states[s].next[c]
		if !ok {
			return NoState
		}
		s = next
	}
	return s
}

// Contains reports whether pattern occurs as a contiguous substring of the
// input. The empty pattern is always contained.
func (g *graph) Contains(pattern []byte) bool {
	return g.Traverse(pattern, Initial) != NoState
}

// Len reports the number of input symbols indexed.
func (g *graph) Len() int { return g.n }

// NumStates reports the number of states, including the initial state.
func (g *graph) NumStates() int {
	if len(g.states) == 0 {
		return 1
	}
	return len(g.states)
}

// Last reports the state of the whole input.
func (g *graph) Last() State { return g.last }

// Length reports the length of the longest string in the class of s.
func (g *graph) Length(s State) int {
	if len(g.states) == 0 {
		return 0
	}
	return int(g.states[s].length)
}

// Link reports the suffix link of s, which is NoState for the initial state.
func (g *graph) Link(s State) State {
	if len(g.states) == 0 {
		return NoState
	}
	return g.states[s].link
}

// Automaton is an online suffix automaton over a growing byte string.
// The zero value is an empty automaton ready for use.
//
// An Automaton must not be appended to by more than one goroutine at a
// time, nor queried while an append is in progress.
type Automaton struct {
	graph
}

// New returns an empty Automaton.
func New() *Automaton {
	a := new(Automaton)
	a.init()
	return a
}

// Build returns an Automaton over all of b.
func Build(b []byte) *Automaton {
	a := New()
	a.Write(b)
	return a
}

// Append extends the automaton with the symbol c.
func (a *Automaton) Append(c byte) {
	a.init()
	cur := State(len(a.states))
	a.states = append(a.states, state{
		length: a.states[a.last].length + 1,
		link:   NoState,
	})

	// Every suffix of the old input that lacks a c-transition gains one to
	// the new state.
	p := a.last
	for p != NoState && !a.has(p, c) {
		a.setNext(p, c, cur)
		p = a.states[p].link
	}

	switch {
	case p == NoState:
		a.states[cur].link = Initial
	case a.states[p].length+1 == a.states[a.states[p].next[c]].length:
		a.states[cur].link = a.states[p].next[c] // Solid edge
	default:
		// The edge to q is not solid; split q so that the strings of length
		// up to p.length+1 move into a clone.
		q := a.states[p].next[c]
		clone := State(len(a.states))
		next := make(map[byte]State, len(a.states[q].next))
		for k, v := range a.states[q].next {
			next[k] = v
		}
		a.states = append(a.states, state{
			length: a.states[p].length + 1,
			link:   a.states[q].link,
			clone:  true,
			next:   next,
		})
		a.states[q].link = clone
		a.states[cur].link = clone
		for ; p != NoState; p = a.states[p].link {
			if s, ok := a.states[p].next[c]; !ok || s != q {
				break
			}
			a.states[p].next[c] = clone
		}
	}

	a.last = cur
	a.n++
	if internal.Debug {
		a.checkInvariants()
	}
}

func (a *Automaton) has(s State, c byte) bool {
	_, ok := a.states[s].next[c]
	return ok
}

func (a *Automaton) setNext(s State, c byte, t State) {
	st := &a.states[s]
	if st.next == nil {
		st.next = make(map[byte]State)
	}
	st.next[c] = t
}

// WriteByte appends c. It never returns an error.
func (a *Automaton) WriteByte(c byte) error {
	a.Append(c)
	return nil
}

// Write appends every symbol of b. It never returns an error.
func (a *Automaton) Write(b []byte) (int, error) {
	for _, c := range b {
		a.Append(c)
	}
	return len(b), nil
}

// WriteString appends every symbol of s. It never returns an error.
func (a *Automaton) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		a.Append(s[i])
	}
	return len(s), nil
}

// ReadFrom appends every symbol read from r until io.EOF.
// Symbols read before an error are kept.
func (a *Automaton) ReadFrom(r io.Reader) (int64, error) {
	return internal.ReadFrom(a, r)
}

// Reset discards the indexed input.
// A Sealed automaton returned by an earlier Finalize is unaffected.
func (a *Automaton) Reset() {
	*a = Automaton{}
	a.init()
}

// checkInvariants panics if the arena is not a well-formed automaton.
func (g *graph) checkInvariants() {
	if len(g.states) == 0 {
		return
	}
	internal.Assert(g.states[Initial].length == 0, "initial state has length 0")
	internal.Assert(g.states[Initial].link == NoState, "initial state has no link")
	internal.Assert(int(g.states[g.last].length) == g.n, "last state spans the input")
	for i, st := range g.states[1:] {
		s := State(i + 1)
		internal.Assert(st.link >= 0 && int(st.link) < len(g.states), "suffix link within arena")
		internal.Assert(g.states[st.link].length < st.length, "suffix link is shorter")
		for _, t := range st.next {
			internal.Assert(t > Initial && int(t) < len(g.states), "transition within arena")
			internal.Assert(g.states[t].length > g.states[s].length, "transition lengthens")
		}
	}
	for _, t := range g.states[Initial].next {
		internal.Assert(t > Initial && int(t) < len(g.states), "transition within arena")
	}
}
