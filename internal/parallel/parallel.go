// Package parallel provides the small data-parallel "for-each over a range"
// helper used by the Delta-Stepping and connected-components kernels. The
// core contract (spec §5) only requires that callers be able to express
// "for-each over a frontier/range" without committing to a specific
// scheduler; a bounded goroutine pool over a shared index counter is the
// idiomatic Go shape of that requirement.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// For calls fn(i) for every i in [0, n) and returns once all calls complete.
// Work is distributed across workers goroutines pulling from a shared atomic
// cursor; workers <= 0 defaults to runtime.GOMAXPROCS(0). When n is smaller
// than workers, For starts only n goroutines, and with a single worker it
// runs fn serially on the calling goroutine. fn must be safe for concurrent
// invocation with distinct i.
func For(n, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}

	var cursor int64 = -1
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := atomic.AddInt64(&cursor, 1)
				if i >= int64(n) {
					return
				}
				fn(int(i))
			}
		}()
	}
	wg.Wait()
}
