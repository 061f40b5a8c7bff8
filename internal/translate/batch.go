package translate

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// batchFunc performs one provider API request for a batch of items.
type batchFunc func(
	ctx context.Context,
	items []TranslationItem,
) ([]TranslationResult, error)

func splitBatches(
	items []TranslationItem,
	size int,
) [][]TranslationItem {
	var batches [][]TranslationItem
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}
	return batches
}

// runBatches fans the batches out to at most concurrency workers and
// collects the results sorted by item index. The first failed batch
// cancels the remaining work and is returned as the error. Both
// providers share this loop; only the per-batch request differs.
func runBatches(
	ctx context.Context,
	batches [][]TranslationItem,
	concurrency int,
	fn batchFunc,
) ([]TranslationResult, error) {
	if len(batches) == 0 {
		return []TranslationResult{}, nil
	}
	if concurrency <= 0 {
		concurrency = 3
	}
	if len(batches) == 1 {
		return fn(ctx, batches[0])
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type batchResult struct {
		index   int
		results []TranslationResult
		err     error
	}

	work := make(chan int)
	out := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < concurrency && i < len(batches); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-work:
					if !ok {
						return
					}
					results, err := fn(ctx, batches[idx])
					if err != nil {
						cancel()
					}
					out <- batchResult{index: idx, results: results, err: err}
				}
			}
		}()
	}

	go func() {
		defer close(work)
		for i := range batches {
			select {
			case <-ctx.Done():
				return
			case work <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	var all []TranslationResult
	var firstErr error
	for result := range out {
		if result.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf(
					"batch %d failed: %w", result.index, result.err)
			}
			continue
		}
		all = append(all, result.results...)
	}

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Index < all[j].Index
	})

	return all, nil
}
