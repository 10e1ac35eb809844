package query

import "fmt"

// Paging limits.
const (
	DefaultLimit = 25
	MaxLimit     = 500
)

// Fields bundles the scalar filter values for one Spec.
type Fields struct {
	PatientID        string
	PatientName      string
	AccessionNumber  string
	StudyDescription string
	Modalities       string
}

// Spec is one concrete, remote-compatible filter combination.
// Immutable once constructed.
type Spec struct {
	fields   Fields
	dateFrom string
	dateTo   string
	limit    int
	offset   int
	fuzzy    bool
}

// New validates and creates a Spec.
// Limit defaults to 25 and is clamped to 500.
func New(fields Fields, dateFrom, dateTo string, limit, offset int, fuzzy bool) (Spec, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		return Spec{}, fmt.Errorf("offset must not be negative, got %d", offset)
	}
	return Spec{
		fields:   fields,
		dateFrom: dateFrom,
		dateTo:   dateTo,
		limit:    limit,
		offset:   offset,
		fuzzy:    fuzzy,
	}, nil
}

// PatientID returns the patient ID filter.
func (s *Spec) PatientID() string { return s.fields.PatientID }

// PatientName returns the patient name filter.
func (s *Spec) PatientName() string { return s.fields.PatientName }

// AccessionNumber returns the accession number filter.
func (s *Spec) AccessionNumber() string { return s.fields.AccessionNumber }

// StudyDescription returns the study description filter.
func (s *Spec) StudyDescription() string { return s.fields.StudyDescription }

// Modalities returns the modality filter.
func (s *Spec) Modalities() string { return s.fields.Modalities }

// DateFrom returns the inclusive lower study-date bound ("YYYYMMDD").
func (s *Spec) DateFrom() string { return s.dateFrom }

// DateTo returns the inclusive upper study-date bound ("YYYYMMDD").
func (s *Spec) DateTo() string { return s.dateTo }

// Limit returns the maximum records requested from the remote.
func (s *Spec) Limit() int { return s.limit }

// Offset returns the record offset passed to the remote.
func (s *Spec) Offset() int { return s.offset }

// FuzzyMatching reports whether fuzzy matching is requested.
func (s *Spec) FuzzyMatching() bool { return s.fuzzy }
