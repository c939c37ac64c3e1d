// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Generates the test corpora. Each file exercises a different worst case of
// the suffix structures:
//
//	fibonacci.txt:    Fibonacci word; maximal number of repeats per length.
//	thuemorse.txt.gz: Thue-Morse sequence; overlap-free, so no long repeats.
//	dna.txt.xz:       Pseudo-random text over a four symbol alphabet.
package main

import (
	"bytes"
	"io"
	"io/ioutil"
	"math/bits"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

const size = 1 << 13

func main() {
	a, b := []byte("a"), []byte("ab")
	for len(b) < size {
		a, b = b, append(append([]byte(nil), b...), a...)
	}
	mustWrite("fibonacci.txt", b[:size], nil)

	tm := make([]byte, size)
	for i := range tm {
		tm[i] = "ab"[bits.OnesCount(uint(i))&1]
	}
	mustWrite("thuemorse.txt.gz", tm, func(w io.Writer) io.WriteCloser {
		zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			panic(err)
		}
		return zw
	})

	// Linear congruential generator so that the output is stable across
	// versions of Go.
	x := uint32(1)
	dna := make([]byte, 2*size)
	for i := range dna {
		x = (x*1103515245 + 12345) & 0x7fffffff
		dna[i] = "ACGT"[(x>>16)&3]
	}
	mustWrite("dna.txt.xz", dna, func(w io.Writer) io.WriteCloser {
		zw, err := xz.NewWriter(w)
		if err != nil {
			panic(err)
		}
		return zw
	})
}

func mustWrite(name string, b []byte, enc func(io.Writer) io.WriteCloser) {
	if enc != nil {
		bb := new(bytes.Buffer)
		zw := enc(bb)
		if _, err := zw.Write(b); err != nil {
			panic(err)
		}
		if err := zw.Close(); err != nil {
			panic(err)
		}
		b = bb.Bytes()
	}
	if err := ioutil.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
