package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/vec"
	"github.com/joshuapare/veckit/vec/mem"
)

func init() {
	rootCmd.AddCommand(newPushCmd())
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Time appending n elements from empty",
		Long: `The push command grows an empty container to n elements, one append at
a time, so every implementation pays its own growth policy.

Example:
  vecbench push
  vecbench push --elems 1000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runWorkloads(pushWorkloads(elems))
			return nil
		},
	}
}

func pushWorkloads(n int) []workload {
	arena := mem.NewArena(1 << 20)
	return []workload{
		{"vec", n, func() {
			var v vec.Vec[int]
			for i := 0; i < n; i++ {
				v.Push(i)
			}
			sink = v.Len()
		}},
		{"vec/captured", n, func() {
			var v vec.Vec[int]
			c := vec.NewCapture(&v)
			for i := 0; i < n; i++ {
				c.Push(i)
			}
			c.Release()
			sink = v.Len()
		}},
		{"vec/reserved", n, func() {
			var v vec.Vec[int]
			v.Reserve(n)
			for i := 0; i < n; i++ {
				v.Push(i)
			}
			sink = v.Len()
		}},
		{"vec/arena", n, func() {
			arena.Reset()
			v := vec.NewIn[int](arena)
			for i := 0; i < n; i++ {
				v.Push(i)
			}
			sink = v.Len()
		}},
		{"slice/append", n, func() {
			var s []int
			for i := 0; i < n; i++ {
				s = append(s, i)
			}
			sink = len(s)
		}},
		{"slice/prealloc", n, func() {
			s := make([]int, 0, n)
			for i := 0; i < n; i++ {
				s = append(s, i)
			}
			sink = len(s)
		}},
		{"naive", n, func() {
			var v naiveVec[int]
			for i := 0; i < n; i++ {
				v.push(i)
			}
			sink = v.n
		}},
	}
}

// sink defeats dead-code elimination across workloads.
var sink int
