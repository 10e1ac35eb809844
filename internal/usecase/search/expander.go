package search

import (
	"fmt"
	"time"

	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/domain/search/criteria"
	"github.com/pacsight/studyfind/internal/domain/search/density"
	"github.com/pacsight/studyfind/internal/domain/search/page"
	"github.com/pacsight/studyfind/internal/domain/search/query"
)

// unboundedPastDays pushes the default lower date bound far enough back to be
// effectively unbounded.
const unboundedPastDays = 25000

// Decomposition field names, iterated in this fixed order so spec output is
// deterministic.
var (
	allFieldsGroup = []string{
		"patientId", "patientName", "accessionNumber", "studyDescription", "modalities",
	}
	nameOrIDGroup               = []string{"patientId", "patientName"}
	accessionModalityDescrGroup = []string{"accessionNumber", "studyDescription", "modalities"}
)

// expand decomposes one combined filter set into 1..N remote-compatible query
// specs per the density policy. Every spec in the batch carries identical date
// bounds, paging and fuzzy flag; decomposed specs set exactly one field to the
// composite's value and leave the other scalar filters empty. The result is
// never empty: when no composite applies, a single spec built from the plain
// scalar fields is returned.
func expand(
	crit criteria.Criteria, mode density.Mode,
	pg page.Request, fuzzy bool, now time.Time,
) ([]query.Spec, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDensity, mode)
	}

	dateFrom, dateTo := dateBounds(crit, now)
	build := func(fields query.Fields) (query.Spec, error) {
		return query.New(fields, dateFrom, dateTo, pg.Size(), pg.Offset(), fuzzy)
	}

	var specs []query.Spec
	addGroup := func(names []string, value string) error {
		for _, name := range names {
			spec, err := build(singleField(name, value))
			if err != nil {
				return fmt.Errorf("build query spec for %s: %w", name, err)
			}
			specs = append(specs, spec)
		}
		return nil
	}

	switch mode {
	case density.Compact:
		if crit.AllFields != "" {
			if err := addGroup(allFieldsGroup, crit.AllFields); err != nil {
				return nil, err
			}
		}
	case density.Standard:
		if crit.PatientNameOrID != "" {
			if err := addGroup(nameOrIDGroup, crit.PatientNameOrID); err != nil {
				return nil, err
			}
		}
		if crit.AccessionOrModalityOrDescription != "" {
			if err := addGroup(accessionModalityDescrGroup, crit.AccessionOrModalityOrDescription); err != nil {
				return nil, err
			}
		}
	case density.Full:
		// Composites are unused in full density; always one scalar spec.
	}

	if len(specs) == 0 {
		spec, err := build(scalarFields(crit))
		if err != nil {
			return nil, fmt.Errorf("build scalar query spec: %w", err)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// dateBounds resolves the inclusive study-date window. Missing bounds default
// to effectively-unbounded past and today; explicit bounds pass through.
func dateBounds(crit criteria.Criteria, now time.Time) (from, to string) {
	from = crit.DateFrom
	if from == "" {
		from = now.AddDate(0, 0, -unboundedPastDays).Format("20060102")
	}
	to = crit.DateTo
	if to == "" {
		to = now.Format("20060102")
	}
	return from, to
}

// singleField builds a field set with only the named field populated.
func singleField(name, value string) query.Fields {
	var f query.Fields
	switch name {
	case "patientId":
		f.PatientID = value
	case "patientName":
		f.PatientName = value
	case "accessionNumber":
		f.AccessionNumber = value
	case "studyDescription":
		f.StudyDescription = value
	case "modalities":
		f.Modalities = value
	}
	return f
}

// scalarFields carries the plain per-field filters over unchanged.
func scalarFields(crit criteria.Criteria) query.Fields {
	return query.Fields{
		PatientID:        crit.PatientID,
		PatientName:      crit.PatientName,
		AccessionNumber:  crit.AccessionNumber,
		StudyDescription: crit.StudyDescription,
		Modalities:       crit.Modalities,
	}
}
