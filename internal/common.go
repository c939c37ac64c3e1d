// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the index packages.
//
// For performance reasons, the index packages lack strong error checking and
// require that the caller to ensure that strict invariants are kept.
package internal

import "io"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "suffix: " + string(e) }

// Assert panics with an Error carrying msg if cond is false.
// It is meant to be called only from invariant checks.
func Assert(cond bool, msg string) {
	if !cond {
		panic(Error("invariant violated: " + msg))
	}
}

// CommonPrefix reports the length of the longest common prefix of a and b.
func CommonPrefix(a, b []byte) (n int) {
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// ReadFrom feeds every byte read from r into w until r reports io.EOF.
// Bytes read before a failing read are still written. It reports the number
// of bytes written to w, and the first error from either side.
func ReadFrom(w io.Writer, r io.Reader) (n int64, err error) {
	var arr [4096]byte
	for {
		cnt, rdErr := r.Read(arr[:])
		if cnt > 0 {
			wrCnt, wrErr := w.Write(arr[:cnt])
			n += int64(wrCnt)
			if wrErr == nil && wrCnt < cnt {
				wrErr = io.ErrShortWrite
			}
			if wrErr != nil {
				return n, wrErr
			}
		}
		switch rdErr {
		case nil:
		case io.EOF:
			return n, nil
		default:
			return n, rdErr
		}
	}
}
