// Package parallel fans independent lanes out over the available cores and
// joins them.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Do calls fn(i) for every i in [0, n) on a bounded set of goroutines and
// blocks until all calls have returned. At most GOMAXPROCS calls run at once;
// the Go scheduler balances the rest.
func Do(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	var g errgroup.Group
	g.SetLimit(min(n, runtime.GOMAXPROCS(0)))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// Map applies fn to every item concurrently and returns the results indexed
// like items, whatever order the lanes finish in. fn gets a pointer into items
// so large lanes are not copied; it must not touch any other item.
func Map[T, R any](items []T, fn func(i int, item *T) R) []R {
	out := make([]R, len(items))
	Do(len(items), func(i int) {
		out[i] = fn(i, &items[i])
	})
	return out
}

// Generate builds n values concurrently, value i being fn(i).
func Generate[T any](n int, fn func(i int) T) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	Do(n, func(i int) {
		out[i] = fn(i)
	})
	return out
}
