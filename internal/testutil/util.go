// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/dsnet/golib/errs"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// ResizeData resizes the input. If n < 0, then the original input will be
// returned as is. If n <= len(input), then the input slice will be truncated.
// However, if n > len(input), then the input will be replicated to fill in
// the missing bytes, but each replicated string will be XORed by some byte
// mask so that the output is not one long periodic repeat.
//
// If n > len(input), then len(input) must be > 0.
func ResizeData(input []byte, n int) []byte {
	if n < 0 {
		return input
	}
	if len(input) >= n {
		return input[:n]
	}
	if len(input) == 0 {
		panic("unable to replicate an empty string")
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output
}

// LoadFile loads the first n bytes of the input file, resized as by
// ResizeData. Files ending in ".xz" or ".gz" are transparently decompressed.
func LoadFile(file string, n int) (b []byte, err error) {
	defer errs.Recover(&err)

	f, err := os.Open(file)
	errs.Panic(err)
	defer f.Close()

	var rd io.Reader = f
	switch filepath.Ext(file) {
	case ".xz":
		xr, err := xz.NewReader(f)
		errs.Panic(err)
		rd = xr
	case ".gz":
		zr, err := gzip.NewReader(f)
		errs.Panic(err)
		defer zr.Close()
		rd = zr
	}
	b, err = ioutil.ReadAll(rd)
	errs.Panic(err)
	return ResizeData(b, n), nil
}

// MustLoadFile must load a file or else panics.
// The optional n resizes the output as by LoadFile.
func MustLoadFile(file string, n ...int) []byte {
	size := -1
	if len(n) > 0 {
		size = n[0]
	}
	b, err := LoadFile(file, size)
	if err != nil {
		panic(err)
	}
	return b
}

// FindAll reports every offset where pattern occurs in text by brute force.
// The empty pattern occurs at every offset from 0 to len(text), inclusive.
func FindAll(text, pattern []byte) []int {
	var pos []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			pos = append(pos, i)
		}
	}
	return pos
}

// BuggyReader returns Err after N bytes have been read from R.
type BuggyReader struct {
	R   io.Reader
	N   int64 // Number of valid bytes to read
	Err error // Return this error after N bytes
}

func (br *BuggyReader) Read(buf []byte) (int, error) {
	if int64(len(buf)) > br.N {
		buf = buf[:br.N]
	}
	n, err := br.R.Read(buf)
	br.N -= int64(n)
	if err == nil && br.N <= 0 {
		return n, br.Err
	}
	return n, err
}
