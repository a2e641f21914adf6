package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/vec"
)

var poppushDepth int

func init() {
	cmd := newPopPushCmd()
	cmd.Flags().IntVar(&poppushDepth, "depth", 64, "Elements popped and re-pushed per cycle")
	rootCmd.AddCommand(cmd)
}

func newPopPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "poppush",
		Short: "Time steady-state pop/push churn at full capacity",
		Long: `The poppush command pre-fills a container, then repeatedly pops and
re-pushes a block of elements. No growth happens, so the numbers isolate
per-element bookkeeping from the growth policy measured by push.

Example:
  vecbench poppush
  vecbench poppush --elems 100000 --depth 256`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runWorkloads(popPushWorkloads(elems, poppushDepth))
			return nil
		},
	}
}

func popPushWorkloads(n, depth int) []workload {
	if depth > n {
		depth = n
	}
	v := vec.Repeat(n, 0)
	w := vec.Repeat(n, 0)
	s := make([]int, n)
	nv := &naiveVec[int]{}
	for i := 0; i < n; i++ {
		nv.push(0)
	}
	units := 2 * depth

	return []workload{
		{"vec", units, func() {
			for i := 0; i < depth; i++ {
				sink = v.Pop()
			}
			for i := 0; i < depth; i++ {
				v.Push(i)
			}
		}},
		{"vec/captured", units, func() {
			c := vec.NewCapture(w)
			for i := 0; i < depth; i++ {
				sink = c.Pop()
			}
			for i := 0; i < depth; i++ {
				c.Push(i)
			}
			c.Release()
		}},
		{"slice", units, func() {
			for i := 0; i < depth; i++ {
				sink = s[len(s)-1]
				s = s[:len(s)-1]
			}
			for i := 0; i < depth; i++ {
				s = append(s, i)
			}
		}},
		{"naive", units, func() {
			for i := 0; i < depth; i++ {
				sink = nv.pop()
			}
			for i := 0; i < depth; i++ {
				nv.push(i)
			}
		}},
	}
}
