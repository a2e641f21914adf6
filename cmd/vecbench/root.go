package main

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Global flags
	elems    int
	listOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "vecbench",
	Short: "Measure veckit containers against builtin slices",
	Long: `vecbench times the veckit growable array against the builtin slice
and a textbook doubling vector, with and without the local-capture calling
convention, and reports per-element cost and allocation behavior.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		IntVarP(&elems, "elems", "n", 100000, "Elements per workload iteration")
	rootCmd.PersistentFlags().
		BoolVar(&listOnly, "list", false, "List workloads without running them")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printBanner reports the toolchain the numbers were produced with, since
// per-element costs are meaningless without it.
func printBanner() {
	fmt.Printf("vecbench %s\n", version)
	fmt.Printf("  go: %s\n", runtime.Version())
	fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  cpus: %d\n", runtime.NumCPU())
	fmt.Println()
}

// workload is one named benchmark body. units is how many elements one call
// of fn processes, which scales the ns/elem column.
type workload struct {
	name  string
	units int
	fn    func()
}

// runWorkloads benchmarks each workload and prints one result line per row.
func runWorkloads(ws []workload) {
	if listOnly {
		for _, w := range ws {
			fmt.Println(w.name)
		}
		return
	}
	printBanner()

	p := message.NewPrinter(language.English)
	p.Printf("%-24s %14s %12s %12s %14s\n",
		"workload", "ns/op", "ns/elem", "allocs/op", "bytes/op")
	for _, w := range ws {
		fn := w.fn
		r := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				fn()
			}
		})
		p.Printf("%-24s %14d %12.2f %12d %14s\n",
			w.name,
			r.NsPerOp(),
			float64(r.NsPerOp())/float64(w.units),
			r.AllocsPerOp(),
			humanize.Bytes(uint64(r.AllocedBytesPerOp())),
		)
	}
}
