// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of the index implementations
// with respect to build speed, query speed, and size.
package bench

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/suffix"
	"github.com/dsnet/suffix/internal/testutil"
)

const (
	TestBuildRate = iota
	TestQueryRate
	TestNodeRatio
)

// Index is a built index that can report its in-memory size.
type Index interface {
	suffix.Index

	// NumNodes reports the number of arena entries (nodes, states, or
	// suffix array slots) used by the index.
	NumNodes() int
}

// Builder builds an Index over the entire input.
type Builder func(input []byte) Index

var (
	Builders map[string]Builder

	// List of search paths for test files.
	Paths []string
)

// Number and maximum length of the patterns looked up by the query test.
const (
	numPatterns   = 1 << 10
	maxPatternLen = 32
)

func RegisterBuilder(name string, b Builder) {
	if Builders == nil {
		Builders = make(map[string]Builder)
	}
	Builders[name] = b
}

// BenchmarkBuilder benchmarks a single builder on the given input data and
// reports the result.
func BenchmarkBuilder(input []byte, b Builder) testing.BenchmarkResult {
	return testing.Benchmark(func(tb *testing.B) {
		tb.StopTimer()
		if b == nil {
			tb.Fatalf("unexpected error: nil Builder")
		}
		runtime.GC()
		tb.StartTimer()
		for i := 0; i < tb.N; i++ {
			b(input)
			tb.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkQuery benchmarks substring lookups of every pattern on an index
// that is built beforehand and reports the result.
func BenchmarkQuery(idx Index, patterns [][]byte) testing.BenchmarkResult {
	var n int64
	for _, p := range patterns {
		n += int64(len(p))
	}
	return testing.Benchmark(func(tb *testing.B) {
		runtime.GC()
		tb.ResetTimer()
		for i := 0; i < tb.N; i++ {
			for _, p := range patterns {
				idx.Contains(p)
			}
			tb.SetBytes(n)
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (nodes/byte)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkBuildSuite runs multiple benchmarks across all builder
// implementations, files, and sizes.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(builders)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkBuildSuite(builders, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(builders, files, sizes, tick,
		func(input []byte, name string) Result {
			return rate(BenchmarkBuilder(input, Builders[name]))
		})
}

// BenchmarkQuerySuite runs multiple benchmarks across all builder
// implementations, files, and sizes. Half of the patterns occur in the input.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(builders)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkQuerySuite(builders, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(builders, files, sizes, tick,
		func(input []byte, name string) Result {
			b := Builders[name]
			if b == nil || len(input) == 0 {
				return Result{}
			}
			patterns := testutil.NewRand(0).Patterns(input, numPatterns, maxPatternLen)
			return rate(BenchmarkQuery(b(input), patterns))
		})
}

// BenchmarkNodeSuite reports the number of arena entries per input byte
// across all builder implementations, files, and sizes.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(builders)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkNodeSuite(builders, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(builders, files, sizes, tick,
		func(input []byte, name string) Result {
			b := Builders[name]
			if b == nil || len(input) == 0 {
				return Result{}
			}
			return Result{R: float64(b(input).NumNodes()) / float64(len(input))}
		})
}

func rate(result testing.BenchmarkResult) Result {
	if result.N == 0 {
		return Result{}
	}
	us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
	return Result{R: float64(result.Bytes) / us}
}

type benchFunc func(input []byte, builder string) Result

func benchmarkSuite(builders, files []string, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(files) * len(sizes)
	d1 := len(builders)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every builder, file, and size.
	var i int
	for _, f := range files {
		for _, n := range sizes {
			b, err := testutil.LoadFile(getPath(f), n)
			name := getName(f, len(b))
			for j, c := range builders {
				if tick != nil {
					tick()
				}
				names[i] = name
				if err == nil {
					results[i][j] = run(b, c)
				}
				results[i][j].D = results[i][j].R / results[i][0].R
			}
			i++
		}
	}
	return results, names
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", path.Base(f), sn)
}
