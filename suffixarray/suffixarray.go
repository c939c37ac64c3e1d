// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffixarray implements an offline suffix array together with its
// longest common prefix array.
//
// The suffix array is built by prefix doubling: suffixes are ranked by their
// first k symbols, and each round sorts by the pair of ranks at i and i+k to
// obtain the ranks for 2k symbols. The LCP array follows in linear time with
// the algorithm of Kasai et al.
//
// Unlike the suffix tree and the suffix automaton, a suffix array must be
// rebuilt from scratch when the input grows.
//
// References:
//	https://doi.org/10.1137/0222058
//	https://doi.org/10.1007/3-540-48194-X_17
package suffixarray

import (
	"bytes"
	"sort"

	"github.com/dsnet/suffix/internal"
)

// New returns the suffix array of text: the start offsets of every suffix
// of text in lexicographic order, where a proper prefix sorts first.
func New(text []byte) []int {
	sa := make([]int, len(text))
	ComputeSA(text, sa)
	return sa
}

// ComputeSA computes the suffix array of T and places the result in SA.
// Both T and SA must be the same length.
func ComputeSA(T []byte, SA []int) {
	if len(SA) != len(T) {
		panic(internal.Error("mismatching sizes"))
	}
	n := len(T)
	if n == 0 {
		return
	}

	rank := make([]int, n)
	next := make([]int, n)
	for i := range SA {
		SA[i] = i
		rank[i] = int(T[i])
	}
	for k := 1; ; k <<= 1 {
		// Suffixes shorter than k sort before any suffix that continues.
		second := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return -1
		}
		less := func(i, j int) bool {
			if rank[i] != rank[j] {
				return rank[i] < rank[j]
			}
			return second(i) < second(j)
		}
		sort.Slice(SA, func(a, b int) bool { return less(SA[a], SA[b]) })

		next[SA[0]] = 0
		for i := 1; i < n; i++ {
			next[SA[i]] = next[SA[i-1]]
			if less(SA[i-1], SA[i]) {
				next[SA[i]]++
			}
		}
		rank, next = next, rank
		if rank[SA[n-1]] == n-1 || k >= n {
			return // Every rank is distinct
		}
	}
}

// Naive returns the suffix array of text by comparing whole suffixes.
// It is the reference for New and runs in O(n² log n) time.
func Naive(text []byte) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(text[sa[a]:], text[sa[b]:]) < 0
	})
	return sa
}

// LCP returns the longest common prefix array of text given its suffix
// array sa. The value at rank i is the length of the longest common prefix
// of the suffixes at ranks i-1 and i. The value at rank 0 is 0.
func LCP(text []byte, sa []int) []int {
	if len(sa) != len(text) {
		panic(internal.Error("mismatching sizes"))
	}
	n := len(sa)
	rank := make([]int, n)
	for i, p := range sa {
		rank[p] = i
	}

	// The prefix shared with the preceding suffix shrinks by at most one
	// when moving from suffix i to suffix i+1.
	lcp := make([]int, n)
	var h int
	for i := 0; i < n; i++ {
		if rank[i] == 0 {
			h = 0
			continue
		}
		j := sa[rank[i]-1]
		h += internal.CommonPrefix(text[i+h:], text[j+h:])
		lcp[rank[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
