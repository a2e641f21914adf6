// Command benchtable turns `go test -bench` output from the vec package into
// a markdown table with per-element costs and speedups against a baseline
// case in each benchmark group.
//
// Usage:
//
//	go test -bench=. -benchmem ./vec | go run scripts/benchtable.go
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// Result is one parsed benchmark line.
type Result struct {
	Group       string
	Case        string
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

var (
	inputFile = flag.String("input", "", "Benchmark output file (stdin if not specified)")
	jsonOut   = flag.Bool("json", false, "Emit parsed results as JSON instead of markdown")
	baseline  = flag.String("baseline", "Append", "Case name speedups are computed against")
	elems     = flag.Int("elems", 4096, "Elements per op, for the ns/elem column")
)

var benchLine = regexp.MustCompile(
	`^Benchmark([A-Za-z0-9]+)/(.+?)-\d+\s+(\d+)\s+([0-9.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)

func main() {
	flag.Parse()

	in := os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results, err := parse(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing benchmarks: %v\n", err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "No benchmark lines found")
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
		return
	}
	writeMarkdown(os.Stdout, results)
}

func parse(f *os.File) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := benchLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		iters, _ := strconv.Atoi(m[3])
		ns, _ := strconv.ParseFloat(m[4], 64)
		r := Result{Group: m[1], Case: m[2], Iterations: iters, NsPerOp: ns}
		if m[5] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(m[5], 10, 64)
		}
		if m[6] != "" {
			r.AllocsPerOp, _ = strconv.ParseInt(m[6], 10, 64)
		}
		results = append(results, r)
	}
	return results, scanner.Err()
}

func writeMarkdown(out *os.File, results []Result) {
	groups := map[string][]Result{}
	var names []string
	for _, r := range results {
		if _, ok := groups[r.Group]; !ok {
			names = append(names, r.Group)
		}
		groups[r.Group] = append(groups[r.Group], r)
	}
	sort.Strings(names)

	for _, name := range names {
		rs := groups[name]
		base := 0.0
		for _, r := range rs {
			if r.Case == *baseline {
				base = r.NsPerOp
			}
		}

		fmt.Fprintf(out, "## %s\n\n", name)
		fmt.Fprintf(out, "| case | ns/op | ns/elem | B/op | allocs/op | vs %s |\n", *baseline)
		fmt.Fprintln(out, "|---|---:|---:|---:|---:|---:|")
		for _, r := range rs {
			speedup := "-"
			if base > 0 {
				speedup = fmt.Sprintf("%.2fx", base/r.NsPerOp)
			}
			fmt.Fprintf(out, "| %s | %.0f | %.2f | %d | %d | %s |\n",
				r.Case, r.NsPerOp, r.NsPerOp/float64(*elems), r.BytesPerOp, r.AllocsPerOp, speedup)
		}
		fmt.Fprintln(out)
	}
}
