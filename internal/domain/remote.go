package domain

import (
	"context"

	"github.com/pacsight/studyfind/internal/domain/search/query"
	"github.com/pacsight/studyfind/internal/domain/study"
)

// Remote is the external study-search capability the pipeline fans out over.
// One call executes exactly one single-combination query; OR semantics across
// fields are produced by issuing several Specs, never by one call.
type Remote interface {
	FindStudies(ctx context.Context, spec query.Spec) ([]study.Study, error)
}
