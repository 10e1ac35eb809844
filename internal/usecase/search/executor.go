package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/domain/search/query"
	"github.com/pacsight/studyfind/internal/domain/study"
)

// execute issues all query specs concurrently and collects result batches in
// dispatch order, regardless of which response arrives first. All specs are
// dispatched before any result is awaited. One failed sub-query fails the
// whole batch; the first failure in dispatch order is surfaced wrapped in
// ErrRemoteSearch.
func execute(ctx context.Context, remote domain.Remote, specs []query.Spec) ([][]study.Study, error) {
	if len(specs) == 0 {
		return nil, domain.ErrNoQuerySpecs
	}

	batches := make([][]study.Study, len(specs))
	errs := make([]error, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec query.Spec) {
			defer wg.Done()
			batches[i], errs[i] = remote.FindStudies(ctx, spec)
		}(i, spec)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: query %d of %d: %w", domain.ErrRemoteSearch, i+1, len(specs), err)
		}
	}
	return batches, nil
}
