// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixarray

import (
	"bytes"
	"sort"
)

// Index answers substring queries over a fixed input by binary search on
// its suffix array.
//
// An Index is safe for concurrent use by multiple goroutines.
type Index struct {
	data []byte
	sa   []int
	lcp  []int
}

// NewIndex returns an Index over text. The text must not be modified while
// the Index is in use.
func NewIndex(text []byte) *Index {
	sa := New(text)
	return &Index{data: text, sa: sa, lcp: LCP(text, sa)}
}

// Len reports the number of input symbols indexed.
func (x *Index) Len() int { return len(x.data) }

// Bytes returns the indexed input. The caller must not modify it.
func (x *Index) Bytes() []byte { return x.data }

// SA returns the suffix array. The caller must not modify it.
func (x *Index) SA() []int { return x.sa }

// lookup reports the range of ranks whose suffixes start with pattern.
func (x *Index) lookup(pattern []byte) (lo, hi int) {
	lo = sort.Search(len(x.sa), func(i int) bool {
		return bytes.Compare(x.data[x.sa[i]:], pattern) >= 0
	})
	hi = lo + sort.Search(len(x.sa)-lo, func(i int) bool {
		return !bytes.HasPrefix(x.data[x.sa[lo+i]:], pattern)
	})
	return lo, hi
}

// Contains reports whether pattern occurs in the input.
// The empty pattern is always contained.
func (x *Index) Contains(pattern []byte) bool {
	lo, hi := x.lookup(pattern)
	return lo < hi || len(pattern) == 0
}

// FindAll reports the start offset of every occurrence of pattern in
// ascending order. The empty pattern occurs at every offset from 0 to Len,
// inclusive.
func (x *Index) FindAll(pattern []byte) []int {
	if len(pattern) == 0 {
		pos := make([]int, len(x.data)+1)
		for i := range pos {
			pos[i] = i
		}
		return pos
	}
	lo, hi := x.lookup(pattern)
	if lo == hi {
		return nil
	}
	pos := append([]int(nil), x.sa[lo:hi]...)
	sort.Ints(pos)
	return pos
}

// Count reports the number of occurrences of pattern.
func (x *Index) Count(pattern []byte) int {
	if len(pattern) == 0 {
		return len(x.data) + 1
	}
	lo, hi := x.lookup(pattern)
	return hi - lo
}

// DistinctSubstrings reports the number of distinct non-empty substrings
// of the input.
func (x *Index) DistinctSubstrings() int {
	n := len(x.data)
	total := n * (n + 1) / 2
	for _, v := range x.lcp {
		total -= v
	}
	return total
}

// LongestRepeat reports the leftmost occurrence of the longest substring
// that occurs at least twice in the input. It reports n == 0 if no symbol
// repeats.
func (x *Index) LongestRepeat() (pos, n int) {
	for i := 1; i < len(x.lcp); i++ {
		d := x.lcp[i]
		if d == 0 || d < n {
			continue
		}
		p := x.sa[i]
		if x.sa[i-1] < p {
			p = x.sa[i-1]
		}
		if d > n || p < pos {
			pos, n = p, d
		}
	}
	return pos, n
}
