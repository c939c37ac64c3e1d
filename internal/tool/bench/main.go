// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare performance between multiple index
// implementations. Individual implementations are referred to as builders.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests    build,nodes        \
//		-builders tree,dawg,sarray   \
//		-files    dna.txt.xz         \
//		-sizes    1e4,1e5
//
// Each test prints one table with a row per file and size, and for every
// builder a column with the result and a delta column relative to the first
// builder listed.
package main

import (
	"flag"
	"fmt"
	"go/build"
	"io/ioutil"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/suffix/internal/tool/bench"
)

// By default, the benchmark tool will look for test data in this "package".
const testPkg = "github.com/dsnet/suffix/testdata"

const defaultSizes = "1e4,1e5"

// refBuilders defines the priority order for which builder appears first and
// thereby serves as the reference for the delta column.
var refBuilders = []string{"tree", "dawg", "sarray"}

var (
	testToEnum = map[string]int{
		"build": bench.TestBuildRate,
		"query": bench.TestQueryRate,
		"nodes": bench.TestNodeRatio,
	}
	enumToTest = map[int]string{
		bench.TestBuildRate: "build",
		bench.TestQueryRate: "query",
		bench.TestNodeRatio: "nodes",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultFiles() string {
	p := strings.Split(defaultPaths(), ",")[0]
	fis, err := ioutil.ReadDir(p)
	if err != nil {
		return ""
	}
	var s []string
	for _, fi := range fis {
		if !strings.HasSuffix(fi.Name(), ".go") {
			s = append(s, fi.Name())
		}
	}
	return strings.Join(s, ",")
}

func defaultBuilders() string {
	m := make(map[string]bool)
	for k := range bench.Builders {
		m[k] = true
	}
	var s []string
	for _, k := range refBuilders {
		if m[k] {
			s = append(s, k) // Known builders appear in priority order
			delete(m, k)
		}
	}
	var rest []string
	for k := range m {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return strings.Join(append(s, rest...), ",")
}

func defaultPaths() string {
	pkg, err := build.Import(testPkg, "", build.FindOnly)
	if err != nil {
		return ""
	}
	return pkg.Dir
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f1 := flag.String("builders", defaultBuilders(), "List of builders to benchmark")
	f2 := flag.String("paths", defaultPaths(), "List of paths to search for test files")
	f3 := flag.String("files", defaultFiles(), "List of input files to benchmark")
	f4 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var builders, paths, files []string
	var tests, sizes []int
	paths = sep.Split(*f2, -1)
	files = sep.Split(*f3, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			panic("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f1, -1) {
		if _, ok := bench.Builders[s]; !ok {
			panic("invalid builder")
		}
		builders = append(builders, s)
	}
	for _, s := range sep.Split(*f4, -1) {
		var size int
		if nf, err := strconv.ParsePrefix(s, strconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, builders, tests, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func runBenchmarks(files, builders []string, tests, sizes []int) {
	for _, t := range tests {
		var results [][]bench.Result
		var names []string
		var title string

		fmt.Printf("BENCHMARK: %s\n", enumToTest[t])
		if len(builders) == 0 {
			fmt.Print("\tSKIP: There are no builders available.\n\n")
			continue
		}

		// Progress ticker.
		var cnt int
		tick := func() {
			total := len(builders) * len(files) * len(sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		switch t {
		case bench.TestBuildRate:
			title = "MB/s"
			results, names = bench.BenchmarkBuildSuite(builders, files, sizes, tick)
		case bench.TestQueryRate:
			title = "MB/s"
			results, names = bench.BenchmarkQuerySuite(builders, files, sizes, tick)
		case bench.TestNodeRatio:
			title = "nodes/B"
			results, names = bench.BenchmarkNodeSuite(builders, files, sizes, tick)
		default:
			panic("unknown test")
		}

		// Print all of the results.
		printResults(results, names, builders, title)
		fmt.Println()
	}
	fmt.Println()
}

func printResults(results [][]bench.Result, names, builders []string, title string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(builders))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range builders {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R)
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(builders))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
