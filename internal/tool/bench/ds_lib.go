// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_ds_lib

package bench

import (
	"github.com/dsnet/suffix/automaton"
	"github.com/dsnet/suffix/suffixarray"
	"github.com/dsnet/suffix/suffixtree"
)

type dawgIndex struct{ *automaton.Sealed }

func (x dawgIndex) NumNodes() int { return x.NumStates() }

type sarrayIndex struct{ *suffixarray.Index }

func (x sarrayIndex) NumNodes() int { return x.Len() }

func init() {
	RegisterBuilder("tree",
		func(b []byte) Index {
			return suffixtree.Build(b).Finalize()
		})
	RegisterBuilder("dawg",
		func(b []byte) Index {
			return dawgIndex{automaton.Build(b).Finalize()}
		})
	RegisterBuilder("sarray",
		func(b []byte) Index {
			return sarrayIndex{suffixarray.NewIndex(b)}
		})
}
