// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixtree

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dsnet/suffix"
	"github.com/dsnet/suffix/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

var (
	_ suffix.Builder = (*Tree)(nil)
	_ suffix.Locator = (*Index)(nil)
)

func TestContains(t *testing.T) {
	var vectors = []struct {
		input   string
		pattern string
		want    bool
	}{
		{"", "", true},
		{"", "a", false},
		{"a", "", true},
		{"a", "a", true},
		{"a", "aa", false},
		{"abcabxabcd", "abcd", true},
		{"abcabxabcd", "bxa", true},
		{"abcabxabcd", "abcabxabcd", true},
		{"abcabxabcd", "abcabxabcdx", false},
		{"abcabxabcd", "cab", true},
		{"abcabxabcd", "cabc", false},
		{"abcabxabcd", "dd", false},
		{"abcbc", "cbc", true},
		{"abcbc", "bb", false},
		{"mississippi", "issip", true},
		{"mississippi", "ssis", true},
		{"mississippi", "sissy", false},
		{"aaaaaaaa", "aaaaaaaa", true},
		{"aaaaaaaa", "aaaaaaaaa", false},
		{"\x00\xff\x00", "\xff\x00", true},
		{"\x00\xff\x00", "\x00\x00", false},
	}

	for i, v := range vectors {
		tr := Build([]byte(v.input))
		if got := tr.Contains([]byte(v.pattern)); got != v.want {
			t.Errorf("test %d, Tree.Contains(%q, %q): got %v, want %v", i, v.input, v.pattern, got, v.want)
		}
		x := tr.Finalize()
		if got := x.Contains([]byte(v.pattern)); got != v.want {
			t.Errorf("test %d, Index.Contains(%q, %q): got %v, want %v", i, v.input, v.pattern, got, v.want)
		}
	}
}

func TestFindAll(t *testing.T) {
	var vectors = []struct {
		input   string
		pattern string
		want    []int
	}{
		{"axabtxabxagg", "xab", []int{1, 5}},
		{"axabtxabxagg", "bt", []int{3}},
		{"axabtxabxagg", "a", []int{0, 2, 6, 9}},
		{"axabtxabxagg", "gg", []int{10}},
		{"axabtxabxagg", "axabtxabxagg", []int{0}},
		{"axabtxabxagg", "abx", []int{6}},
		{"axabtxabxagg", "xgg", nil},
		{"axabtxabxagg", "abtb", nil},
		{"axabtxabxagg", "ggg", nil},
		{"abc", "", []int{0, 1, 2, 3}},
		{"", "", []int{0}},
		{"", "a", nil},
		{"banana", "ana", []int{1, 3}},
		{"banana", "a", []int{1, 3, 5}},
		{"aaaa", "aa", []int{0, 1, 2}},
		{"abcabxabcd", "abc", []int{0, 6}},
	}

	for i, v := range vectors {
		x := Build([]byte(v.input)).Finalize()
		got := x.FindAll([]byte(v.pattern))
		if diff := cmp.Diff(v.want, got); diff != "" {
			t.Errorf("test %d, FindAll(%q, %q) mismatch (-want +got):\n%s", i, v.input, v.pattern, diff)
		}
		if cnt := x.Count([]byte(v.pattern)); cnt != len(v.want) {
			t.Errorf("test %d, Count(%q, %q): got %d, want %d", i, v.input, v.pattern, cnt, len(v.want))
		}
	}
}

func TestActivePoint(t *testing.T) {
	// Cursor after each symbol of the classic worked example.
	var vectors = []struct {
		sym       byte
		atRoot    bool
		edge      int
		length    int
		remainder int
	}{
		{'a', true, 0, 0, 0},
		{'b', true, 1, 0, 0},
		{'c', true, 2, 0, 0},
		{'a', true, 3, 1, 1},
		{'b', true, 3, 2, 2},
		{'x', true, 5, 0, 0},
		{'a', true, 6, 1, 1},
		{'b', true, 6, 2, 2},
		{'c', false, 8, 1, 3},
		{'d', true, 9, 0, 0},
	}

	tr := New()
	for i, v := range vectors {
		tr.Append(v.sym)
		tr.checkInvariants()
		ap := tr.ap
		if got := ap.node == root; got != v.atRoot {
			t.Errorf("test %d, active node at root: got %v, want %v", i, got, v.atRoot)
		}
		if ap.edge != v.edge || ap.length != v.length || ap.remainder != v.remainder {
			t.Errorf("test %d, active point: got (edge:%d, length:%d, remainder:%d), want (edge:%d, length:%d, remainder:%d)",
				i, ap.edge, ap.length, ap.remainder, v.edge, v.length, v.remainder)
		}
	}
}

func TestString(t *testing.T) {
	tr := Build([]byte("abab"))
	gotLive := tr.String()
	wantLive := strings.Join([]string{
		`* "abab" [0:4]`,
		`* "bab" [1:4]`,
		``,
	}, "\n")
	if gotLive != wantLive {
		t.Errorf("live tree mismatch:\ngot:\n%s\nwant:\n%s", gotLive, wantLive)
	}

	gotIndex := tr.Finalize().String()
	wantIndex := strings.Join([]string{
		`* "$" [4:5] @4`,
		`* "ab" [0:2]`,
		`  * "$" [4:5] @2`,
		`  * "ab$" [2:5] @0`,
		`* "b" [1:2]`,
		`  * "$" [4:5] @3`,
		`  * "ab$" [2:5] @1`,
		``,
	}, "\n")
	if gotIndex != wantIndex {
		t.Errorf("index mismatch:\ngot:\n%s\nwant:\n%s", gotIndex, wantIndex)
	}
}

func TestRandom(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 200; i++ {
		input := rand.Symbols(rand.Intn(64), 1+rand.Intn(4))
		tr := New()
		for j, c := range input {
			tr.Append(c)
			tr.checkInvariants()
			if tr.NumNodes() > 2*(j+1)+1 {
				t.Fatalf("test %d, %q: arena has %d nodes after %d symbols", i, input[:j+1], tr.NumNodes(), j+1)
			}
		}

		x := tr.Finalize()
		x.checkInvariants()
		for lo := 0; lo <= len(input); lo++ {
			for hi := lo; hi <= len(input); hi++ {
				p := input[lo:hi]
				if !tr.Contains(p) {
					t.Fatalf("test %d, Contains(%q, %q) = false, want true", i, input, p)
				}
			}
		}
		for _, p := range rand.Patterns(input, 64, 8) {
			want := testutil.FindAll(input, p)
			if got := tr.Contains(p); got != (len(want) > 0) {
				t.Errorf("test %d, Contains(%q, %q): got %v, want %v", i, input, p, got, len(want) > 0)
			}
			if diff := cmp.Diff(want, x.FindAll(p)); diff != "" {
				t.Errorf("test %d, FindAll(%q, %q) mismatch (-want +got):\n%s", i, input, p, diff)
			}
		}
	}
}

func TestIncremental(t *testing.T) {
	rand := testutil.NewRand(1)
	input := rand.Symbols(200, 3)
	want := Build(input).Finalize()
	patterns := rand.Patterns(input, 100, 12)

	for _, k := range []int{0, 1, 17, 100, 199, 200} {
		tr := New()
		tr.Write(input[:k])
		tr.Write(input[k:])
		got := tr.Finalize()
		for _, p := range patterns {
			if diff := cmp.Diff(want.FindAll(p), got.FindAll(p)); diff != "" {
				t.Errorf("split %d, FindAll(%q) mismatch (-want +got):\n%s", k, p, diff)
			}
		}
	}
}

func TestReset(t *testing.T) {
	input := []byte("axabtxabxagg")
	tr := Build([]byte("mississippi"))
	old := tr.Finalize()
	tr.Reset()
	if tr.Len() != 0 || tr.NumNodes() != 1 || tr.Contains([]byte("s")) {
		t.Fatalf("Reset did not empty the tree: len %d, nodes %d", tr.Len(), tr.NumNodes())
	}
	tr.Write(input)

	want := Build(input)
	if got, want := tr.String(), want.String(); got != want {
		t.Errorf("mismatching trees after Reset:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if !old.Contains([]byte("ssiss")) || old.Contains([]byte("xab")) {
		t.Errorf("Reset modified an earlier Index")
	}
}

func TestFinalizeLive(t *testing.T) {
	tr := Build([]byte("abcab"))
	x1 := tr.Finalize()
	tr.WriteString("cabd")
	x2 := tr.Finalize()

	if diff := cmp.Diff([]int{0, 3}, x1.FindAll([]byte("ab"))); diff != "" {
		t.Errorf("first Index changed (-want +got):\n%s", diff)
	}
	if x1.Contains([]byte("abd")) {
		t.Errorf("first Index contains a later symbol")
	}
	if diff := cmp.Diff([]int{0, 3, 6}, x2.FindAll([]byte("ab"))); diff != "" {
		t.Errorf("second Index mismatch (-want +got):\n%s", diff)
	}
	if got, want := x1.Len(), 5; got != want {
		t.Errorf("first Index length: got %d, want %d", got, want)
	}
	if got, want := tr.Len(), 9; got != want {
		t.Errorf("tree length: got %d, want %d", got, want)
	}
}

func TestIsSuffix(t *testing.T) {
	x := Build([]byte("abcabcab")).Finalize()
	for _, v := range []struct {
		pattern string
		want    bool
	}{
		{"", true},
		{"b", true},
		{"ab", true},
		{"cab", true},
		{"abcab", true},
		{"abcabcab", true},
		{"a", false},
		{"abc", false},
		{"ca", false},
		{"xab", false},
		{"abcabcabc", false},
	} {
		if got := x.IsSuffix([]byte(v.pattern)); got != v.want {
			t.Errorf("IsSuffix(%q): got %v, want %v", v.pattern, got, v.want)
		}
	}
}

func TestLongestRepeat(t *testing.T) {
	var vectors = []struct {
		input string
		pos   int
		n     int
	}{
		{"", 0, 0},
		{"abcd", 0, 0},
		{"banana", 1, 3},
		{"mississippi", 1, 4},
		{"aaaa", 0, 3},
		{"abcabxabcd", 0, 3},
		{"xabcyabcz", 1, 3},
	}

	for i, v := range vectors {
		pos, n := Build([]byte(v.input)).Finalize().LongestRepeat()
		if pos != v.pos || n != v.n {
			t.Errorf("test %d, LongestRepeat(%q): got (%d, %d), want (%d, %d)", i, v.input, pos, n, v.pos, v.n)
		}
	}
}

func TestReadFrom(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")
	errBuggy := errors.New("buggy reader")

	tr := New()
	n, err := tr.ReadFrom(bytes.NewReader(input))
	if n != int64(len(input)) || err != nil {
		t.Fatalf("ReadFrom: got (%d, %v), want (%d, nil)", n, err, len(input))
	}
	if !tr.Contains([]byte("lazy dog")) {
		t.Errorf("missing suffix after ReadFrom")
	}

	tr.Reset()
	n, err = tr.ReadFrom(&testutil.BuggyReader{R: bytes.NewReader(input), N: 10, Err: errBuggy})
	if n != 10 || err != errBuggy {
		t.Fatalf("ReadFrom: got (%d, %v), want (10, %v)", n, err, errBuggy)
	}
	if tr.Len() != 10 || !tr.Contains(input[:10]) {
		t.Errorf("ReadFrom kept %d symbols, want 10", tr.Len())
	}
}

func TestCorpus(t *testing.T) {
	rand := testutil.NewRand(2)
	for _, f := range []string{"fibonacci.txt", "thuemorse.txt.gz", "dna.txt.xz"} {
		input := testutil.MustLoadFile("../testdata/"+f, 1<<12)
		t.Run(fmt.Sprintf("File:%v", f), func(t *testing.T) {
			tr := Build(input)
			tr.checkInvariants()
			x := tr.Finalize()
			for _, p := range rand.Patterns(input, 200, 24) {
				if diff := cmp.Diff(testutil.FindAll(input, p), x.FindAll(p)); diff != "" {
					t.Errorf("FindAll(%q) mismatch (-want +got):\n%s", p, diff)
				}
			}
		})
	}
}

func BenchmarkAppend(b *testing.B) {
	input := testutil.NewRand(0).Symbols(1<<16, 4)
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		Build(input)
	}
}
