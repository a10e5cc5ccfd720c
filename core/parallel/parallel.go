package parallel

import (
	"runtime"
	"sync"
)

// For divides the index range [0, n) according to the number of CPU cores
// and executes fn(i) for every index. Each worker walks one contiguous chunk,
// so callers observe a dense, per-worker index order. The call returns once
// all workers finish.
func For(n int, fn func(i int)) {
	if n == 0 {
		return
	}

	// Get the number of available CPU cores
	numWorkers := runtime.NumCPU()
	if numWorkers > n {
		numWorkers = n // No need for more workers than tasks
	}

	// Calculate the number of tasks each worker handles (ceiling division)
	chunkSize := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		// Skip if there's no range to handle
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}

	// Wait for all workers to finish processing
	wg.Wait()
}

// ForWithThreshold performs parallelization only when n exceeds the threshold.
// If at or below the threshold, normal sequential processing is performed.
func ForWithThreshold(n, threshold int, fn func(i int)) {
	if n <= threshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	For(n, fn)
}
