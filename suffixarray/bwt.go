// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixarray

// The Burrows-Wheeler transform sorts every rotation of the input and keeps
// the last column. Rotations of buf are the suffixes of buf+buf that start
// in the first half, so the suffix array of the doubled input orders them.
//
// References:
//	https://www.hpl.hp.com/techreports/Compaq-DEC/SRC-RR-124.pdf
//	https://github.com/cscott/compressjs/blob/master/lib/BWT.js

// EncodeBWT replaces buf with its Burrows-Wheeler transform and reports the
// rank of the unrotated input among the sorted rotations. That rank is the
// ptr argument DecodeBWT needs to restore buf. It reports -1 for empty input.
func EncodeBWT(buf []byte) (ptr int) {
	n := len(buf)
	if n == 0 {
		return -1
	}

	t := make([]byte, 0, 2*n)
	t = append(append(t, buf...), buf...)
	var rank int
	for _, i := range New(t) {
		if i >= n {
			continue // Not a rotation of buf
		}
		if i == 0 {
			ptr = rank
		}
		buf[rank] = t[i+n-1] // Symbol preceding rotation i
		rank++
	}
	return ptr
}

// DecodeBWT inverts EncodeBWT in place given the ptr it reported.
func DecodeBWT(buf []byte, ptr int) {
	if len(buf) == 0 {
		return
	}

	// Start offset of each symbol in the sorted first column.
	var c [256]int
	for _, v := range buf {
		c[v]++
	}
	var sum int
	for i, v := range c {
		sum += v
		c[i] = sum - v
	}

	// next maps each row of the first column to the row that follows it in
	// the original input.
	next := make([]int, len(buf))
	for i, b := range buf {
		next[c[b]] = i
		c[b]++
	}

	out := make([]byte, len(buf))
	pos := next[ptr]
	for i := range out {
		out[i] = buf[pos]
		pos = next[pos]
	}
	copy(buf, out)
}
