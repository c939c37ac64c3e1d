// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package suffix

import (
	"bytes"

	"github.com/dsnet/suffix/automaton"
	"github.com/dsnet/suffix/suffixarray"
	"github.com/dsnet/suffix/suffixtree"
)

const maxInput = 1 << 10

func Fuzz(data []byte) int {
	if len(data) == 0 || len(data) > maxInput {
		return -1
	}

	// The first byte chooses where a snapshot is taken mid-stream.
	split, text := int(data[0])%len(data), data[1:]
	if split > len(text) {
		split = len(text)
	}
	testSnapshot(text, split)
	testIndexes(text)
	testBWT(text)
	return 1
}

// testSnapshot checks that finalizing partway through the input does not
// disturb the indexes built over the rest of it.
func testSnapshot(text []byte, split int) {
	t, a := suffixtree.New(), automaton.New()
	t.Write(text[:split])
	a.Write(text[:split])
	x1, z1 := t.Finalize(), a.Finalize()
	t.Write(text[split:])
	a.Write(text[split:])

	for _, p := range patterns(text[:split]) {
		if x1.Count(p) != z1.Count(p) {
			panic("mismatching snapshot counts")
		}
	}
	if !bytes.Equal(t.Bytes(), text) || a.Len() != len(text) {
		panic("mismatching input length")
	}
}

// testIndexes checks that all three indexes agree with each other.
func testIndexes(text []byte) {
	x := suffixtree.Build(text).Finalize()
	z := automaton.Build(text).Finalize()
	s := suffixarray.NewIndex(text)

	for _, p := range patterns(text) {
		pos := s.FindAll(p)
		got := x.FindAll(p)
		if len(got) != len(pos) || z.Count(p) != len(pos) {
			panic("mismatching counts")
		}
		for i := range pos {
			if got[i] != pos[i] {
				panic("mismatching positions")
			}
		}
		if x.IsSuffix(p) != z.IsSuffix(p) || z.IsSuffix(p) != bytes.HasSuffix(text, p) {
			panic("mismatching suffix query")
		}
	}
	if z.DistinctSubstrings() != s.DistinctSubstrings() {
		panic("mismatching distinct substrings")
	}
	p1, n1 := x.LongestRepeat()
	p2, n2 := s.LongestRepeat()
	if p1 != p2 || n1 != n2 {
		panic("mismatching longest repeat")
	}
}

func testBWT(text []byte) {
	b := append([]byte(nil), text...)
	suffixarray.DecodeBWT(b, suffixarray.EncodeBWT(b))
	if !bytes.Equal(b, text) {
		panic("mismatching BWT round trip")
	}
}

// patterns returns a window of every length starting at a few offsets of
// text, and the same windows with their last symbol changed so that some
// of them do not occur.
func patterns(text []byte) (ps [][]byte) {
	for i := 0; i < len(text); i += 1 + len(text)/8 {
		for j := i; j <= len(text); j++ {
			p := text[i:j]
			ps = append(ps, p)
			if len(p) > 0 {
				q := append([]byte(nil), p...)
				q[len(q)-1]++
				ps = append(ps, q)
			}
		}
	}
	return ps
}
