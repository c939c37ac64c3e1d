// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffix is a collection of incremental and offline full-text
// indexes over byte strings.
//
// The suffixtree and automaton packages build their index online: symbols
// may be appended one at a time and the index queried in between. The
// suffixarray package builds a static index over a complete input.
package suffix

import "io"

// Index is an index that answers substring membership queries.
// The empty pattern is contained in every index.
type Index interface {
	Contains(pattern []byte) bool
}

// Locator is an Index that also reports where a pattern occurs.
type Locator interface {
	Index

	// FindAll reports the start offset of every occurrence of pattern,
	// in ascending order.
	FindAll(pattern []byte) []int

	// Count reports the number of occurrences of pattern.
	Count(pattern []byte) int
}

// Builder is an Index that grows as symbols are appended to it.
// Writes never fail. A Builder is not safe for concurrent use.
type Builder interface {
	Index
	io.Writer
	io.ByteWriter
	io.ReaderFrom

	// Len reports the number of symbols appended so far.
	Len() int

	// Reset discards all symbols and returns to the empty state.
	Reset()
}
