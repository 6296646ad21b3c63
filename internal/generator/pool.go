package generator

import (
	"context"
	"runtime"
	"sync"
)

// maxWorkers caps the automatic pool size.
const maxWorkers = 8

// ResolveWorkers returns n when positive, else a size derived from
// GOMAXPROCS (container-aware once automaxprocs has run), clamped to 1..8.
func ResolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	auto := runtime.GOMAXPROCS(0)
	if auto < 1 {
		return 1
	}
	if auto > maxWorkers {
		return maxWorkers
	}
	return auto
}

// runIndexed calls fn for every index in 0..n-1 on up to workers goroutines.
// Results keep index order. Indices not started before ctx is cancelled
// record ctx.Err().
func runIndexed[T any](ctx context.Context, workers, n int, fn func(context.Context, int) (T, error)) ([]T, []error) {
	results := make([]T, n)
	errs := make([]error, n)
	if n == 0 {
		return results, errs
	}

	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan int, n)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				results[idx], errs[idx] = fn(ctx, idx)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results, errs
}

// firstError returns the lowest-index non-nil error.
func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
