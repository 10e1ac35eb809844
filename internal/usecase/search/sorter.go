package search

import (
	"sort"

	"github.com/pacsight/studyfind/internal/domain/search/sortspec"
	"github.com/pacsight/studyfind/internal/domain/study"
)

// sortStudies orders records by the spec's canonical field and direction.
// Study dates are normalized to a fully ordered timestamp key before
// comparison; values matching neither accepted date encoding are retained but
// sort after every valid date. All other fields compare lexically on the raw
// value. Descending puts larger values first. The sort is stable, and an
// inactive spec returns the input order untouched.
func sortStudies(records []study.Study, spec sortspec.Spec) []study.Study {
	if !spec.IsActive() || len(records) < 2 {
		return records
	}

	type keyed struct {
		key   string
		valid bool
	}
	keys := make([]keyed, len(records))
	for i := range records {
		k, ok := sortValue(&records[i], spec.Field())
		keys[i] = keyed{key: k, valid: ok}
	}

	sorted := make([]study.Study, len(records))
	copy(sorted, records)
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.valid != kb.valid {
			// best-effort: unparseable values sort last in either direction
			return ka.valid
		}
		if ka.key == kb.key {
			return false
		}
		if spec.Direction() == sortspec.Descending {
			return ka.key > kb.key
		}
		return ka.key < kb.key
	})

	out := make([]study.Study, len(records))
	for i, j := range idx {
		out[i] = sorted[j]
	}
	return out
}

// sortValue extracts the comparison key for one record. The second return is
// false only for date values that match no accepted encoding.
func sortValue(st *study.Study, field string) (string, bool) {
	switch field {
	case sortspec.FieldStudyDate:
		d, err := study.ParseDate(st.StudyDate())
		if err != nil {
			return "", false
		}
		return d.SortKey(), true
	case sortspec.FieldPatientID:
		return st.PatientID(), true
	case sortspec.FieldPatientName:
		return st.PatientName(), true
	case sortspec.FieldAccessionNumber:
		return st.AccessionNumber(), true
	case sortspec.FieldModalities:
		return st.Modalities(), true
	case sortspec.FieldDescription:
		return st.Description(), true
	default:
		return "", true
	}
}
