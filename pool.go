package mdview

import (
	"context"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps automatic sizing; rendering is CPU-bound.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for I/O and highlighting goroutines.
	cpuDivisor = 2
)

// ResolvePoolSize determines the worker count for batch rendering.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}

// RenderAll renders every document with up to workers goroutines
// (0 picks ResolvePoolSize). Output order matches input order.
// Returns ctx.Err() if ctx is cancelled before all documents are rendered;
// the slice then holds "" for documents that were skipped.
func (r *Renderer) RenderAll(ctx context.Context, docs []string, workers int) ([]string, error) {
	out := make([]string, len(docs))
	if len(docs) == 0 {
		return out, nil
	}

	workers = min(ResolvePoolSize(workers), len(docs))

	jobs := make(chan int, len(docs))
	for i := range docs {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				out[i] = r.Render(docs[i])
			}
		}()
	}
	wg.Wait()

	return out, ctx.Err()
}
