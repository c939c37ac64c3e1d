// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !debug && !gofuzz
// +build !debug,!gofuzz

package internal

// Debug enables invariant checks after every mutation.
// GoFuzz enables the exports used by fuzz harnesses.
const (
	Debug  = false
	GoFuzz = false
)
