// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Symbols returns n random symbols drawn from the first k lowercase letters.
// Small alphabets produce the long repeats that stress suffix structures.
func (r *Rand) Symbols(n, k int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(r.Intn(k))
	}
	return b
}

// Patterns returns n query patterns for text. Half of them are substrings
// of text; the rest are random strings over a slightly larger alphabet,
// which are mostly absent.
func (r *Rand) Patterns(text []byte, n, maxLen int) [][]byte {
	ps := make([][]byte, n)
	for i := range ps {
		m := 1 + r.Intn(maxLen)
		if i%2 == 0 && len(text) > 0 {
			if m > len(text) {
				m = len(text)
			}
			j := r.Intn(len(text) - m + 1)
			ps[i] = text[j : j+m]
		} else {
			ps[i] = r.Symbols(m, 5)
		}
	}
	return ps
}
