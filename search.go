package studyfind

import (
	"context"
	"fmt"

	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/domain/search/criteria"
	"github.com/pacsight/studyfind/internal/domain/search/density"
	"github.com/pacsight/studyfind/internal/domain/search/page"
	"github.com/pacsight/studyfind/internal/domain/search/query"
	"github.com/pacsight/studyfind/internal/domain/search/sortspec"
	"github.com/pacsight/studyfind/internal/domain/study"
)

// ErrRemoteSearch marks any failure of the remote catalog. One failed
// sub-query aborts the whole search.
var ErrRemoteSearch = domain.ErrRemoteSearch

// Study is one study record returned by a search.
type Study struct {
	StudyInstanceUID string
	PatientID        string
	PatientName      string
	AccessionNumber  string
	Modalities       string
	StudyDate        string
	Description      string
}

// Criteria is the combined filter set of one search invocation. Composite
// fields (PatientNameOrID, AccessionOrModalityOrDescription, AllFields)
// match their value against several record fields at once.
type Criteria struct {
	PatientID        string
	PatientName      string
	AccessionNumber  string
	StudyDescription string
	Modalities       string
	DateFrom         string
	DateTo           string

	PatientNameOrID                  string
	AccessionOrModalityOrDescription string
	AllFields                        string
}

// Density selects how a combined filter set decomposes into remote queries.
type Density string

// Density modes.
const (
	DensityCompact  Density = Density(density.Compact)
	DensityStandard Density = Density(density.Standard)
	DensityFull     Density = Density(density.Full)
)

// SortDirection orders search results.
type SortDirection string

// Sort directions. SortNone preserves the merged first-seen order.
const (
	SortAscending  SortDirection = SortDirection(sortspec.Ascending)
	SortDescending SortDirection = SortDirection(sortspec.Descending)
	SortNone       SortDirection = SortDirection(sortspec.None)
)

// SearchOptions configures one search invocation. The zero value sorts by
// the default order and returns the first page at the client's defaults.
type SearchOptions struct {
	SortBy        string
	SortDirection SortDirection
	PageNumber    int
	PageSize      int
	Density       Density
}

// SearchService executes study searches.
type SearchService struct {
	svc      searcher
	defaults queryDefaults
}

type searcher interface {
	Search(
		ctx context.Context,
		crit criteria.Criteria,
		sortBy sortspec.Spec,
		pg page.Request,
		mode density.Mode,
	) ([]study.Study, error)
}

// Query runs one study search.
func (s *SearchService) Query(ctx context.Context, crit Criteria, opts *SearchOptions) ([]Study, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}

	sortBy := sortspec.Default()
	if opts.SortBy != "" || opts.SortDirection != "" {
		dir := sortspec.Direction(opts.SortDirection)
		if dir == "" {
			dir = sortspec.Descending
		}
		sortBy = sortspec.New(opts.SortBy, dir)
	}

	size := opts.PageSize
	if size <= 0 {
		size = s.defaults.pageSize
	}
	pg, err := page.New(opts.PageNumber, size)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	mode := density.Mode(opts.Density)
	if mode == "" {
		mode = density.Mode(s.defaults.density)
	}

	results, err := s.svc.Search(ctx, toInternalCriteria(crit), sortBy, pg, mode)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return fromInternalStudies(results), nil
}

func toInternalCriteria(c Criteria) criteria.Criteria {
	return criteria.Criteria{
		PatientID:                        c.PatientID,
		PatientName:                      c.PatientName,
		AccessionNumber:                  c.AccessionNumber,
		StudyDescription:                 c.StudyDescription,
		Modalities:                       c.Modalities,
		DateFrom:                         c.DateFrom,
		DateTo:                           c.DateTo,
		PatientNameOrID:                  c.PatientNameOrID,
		AccessionOrModalityOrDescription: c.AccessionOrModalityOrDescription,
		AllFields:                        c.AllFields,
	}
}

func fromInternalStudies(in []study.Study) []Study {
	out := make([]Study, len(in))
	for i := range in {
		out[i] = Study{
			StudyInstanceUID: in[i].StudyInstanceUID(),
			PatientID:        in[i].PatientID(),
			PatientName:      in[i].PatientName(),
			AccessionNumber:  in[i].AccessionNumber(),
			Modalities:       in[i].Modalities(),
			StudyDate:        in[i].StudyDate(),
			Description:      in[i].Description(),
		}
	}
	return out
}

// RemoteQuery is one single-field-combination query issued to a custom
// backend.
type RemoteQuery struct {
	PatientID        string
	PatientName      string
	AccessionNumber  string
	StudyDescription string
	Modalities       string
	DateFrom         string
	DateTo           string
	Limit            int
	Offset           int
	FuzzyMatching    bool
}

// Remote is a pluggable study catalog backend.
type Remote interface {
	FindStudies(ctx context.Context, q RemoteQuery) ([]Study, error)
}

// remoteAdapter wraps the public Remote to satisfy internal domain.Remote.
type remoteAdapter struct {
	inner Remote
}

func (a *remoteAdapter) FindStudies(ctx context.Context, spec query.Spec) ([]study.Study, error) {
	results, err := a.inner.FindStudies(ctx, RemoteQuery{
		PatientID:        spec.PatientID(),
		PatientName:      spec.PatientName(),
		AccessionNumber:  spec.AccessionNumber(),
		StudyDescription: spec.StudyDescription(),
		Modalities:       spec.Modalities(),
		DateFrom:         spec.DateFrom(),
		DateTo:           spec.DateTo(),
		Limit:            spec.Limit(),
		Offset:           spec.Offset(),
		FuzzyMatching:    spec.FuzzyMatching(),
	})
	if err != nil {
		return nil, fmt.Errorf("find studies: %w", err)
	}

	out := make([]study.Study, len(results))
	for i, r := range results {
		out[i] = study.Reconstruct(
			r.StudyInstanceUID, r.PatientID, r.PatientName,
			r.AccessionNumber, r.Modalities, r.StudyDate, r.Description,
		)
	}
	return out, nil
}
