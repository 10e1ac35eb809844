// Package search implements the query fan-out pipeline: a combined filter set
// is decomposed into single-field remote queries, executed concurrently, then
// reconciled, sorted and truncated to one page.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/domain/search/criteria"
	"github.com/pacsight/studyfind/internal/domain/search/density"
	"github.com/pacsight/studyfind/internal/domain/search/page"
	"github.com/pacsight/studyfind/internal/domain/search/sortspec"
	"github.com/pacsight/studyfind/internal/domain/study"
	"github.com/pacsight/studyfind/internal/logger"
	"github.com/pacsight/studyfind/internal/metrics"
)

// Service runs study searches against a remote catalog that only supports
// single-field-combination queries.
type Service struct {
	remote domain.Remote
	fuzzy  bool
	now    func() time.Time
}

// New creates a search service.
func New(remote domain.Remote) *Service {
	return &Service{remote: remote, now: time.Now}
}

// WithFuzzyMatching enables the fuzzy-matching flag on every issued query.
// Enable only when the connection declares support.
func (s *Service) WithFuzzyMatching(enabled bool) *Service {
	s.fuzzy = enabled
	return s
}

// Search executes one full search invocation. An empty result with a nil
// error means "no matches"; a search failure always returns a non-nil error
// wrapping ErrRemoteSearch. The returned page never exceeds pg.Size records.
func (s *Service) Search(
	ctx context.Context,
	crit criteria.Criteria,
	sortBy sortspec.Spec,
	pg page.Request,
	mode density.Mode,
) ([]study.Study, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	specs, err := expand(crit, mode, pg, s.fuzzy, s.now())
	if err != nil {
		return nil, fmt.Errorf("expand criteria: %w", err)
	}
	metrics.ObserveFanout(len(specs))

	batches, err := execute(ctx, s.remote, specs)
	if err != nil {
		metrics.ObserveSearch(time.Since(start), string(mode), "error")
		return nil, err
	}

	merged := reconcile(batches)
	sorted := sortStudies(merged, sortBy)
	pageOut := paginate(sorted, pg.Size())

	metrics.ObserveSearch(time.Since(start), string(mode), "ok")
	log.Debug("study search completed",
		zap.Int("specs", len(specs)),
		zap.Int("merged", len(merged)),
		zap.Int("returned", len(pageOut)),
		zap.Duration("elapsed", time.Since(start)))

	return pageOut, nil
}
