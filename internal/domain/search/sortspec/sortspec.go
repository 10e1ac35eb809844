package sortspec

// Direction orders comparison results.
type Direction string

// Sort direction constants.
const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
	// None leaves the reconciled first-seen order untouched.
	None Direction = "none"
)

// Sortable record field names.
const (
	FieldPatientID       = "patientId"
	FieldPatientName     = "patientName"
	FieldAccessionNumber = "accessionNumber"
	FieldModalities      = "modalities"
	FieldDescription     = "description"
	FieldStudyDate       = "studyDate"
)

// Surrogate keys used by combined filter inputs. A sort request naming one of
// these is remapped to a concrete record field before comparison.
const (
	KeyPatientNameOrID                  = "patientNameOrId"
	KeyAccessionOrModalityOrDescription = "accessionOrModalityOrDescription"
	KeyAllFields                        = "allFields"
)

// Spec is a chosen sort field and direction. The zero Spec applies no order.
type Spec struct {
	field string
	dir   Direction
}

// New creates a sort spec. Surrogate keys are canonicalized here.
func New(field string, dir Direction) Spec {
	return Spec{field: CanonicalField(field), dir: dir}
}

// Default returns the initial sort order: descending by patient name.
func Default() Spec {
	return Spec{field: FieldPatientName, dir: Descending}
}

// CanonicalField remaps composite surrogate keys to concrete record fields.
func CanonicalField(field string) string {
	switch field {
	case KeyPatientNameOrID, KeyAllFields:
		return FieldPatientName
	case KeyAccessionOrModalityOrDescription:
		return FieldModalities
	default:
		return field
	}
}

// Field returns the canonical sort field, empty when no sort is active.
func (s Spec) Field() string { return s.field }

// Direction returns the sort direction.
func (s Spec) Direction() Direction { return s.dir }

// IsActive reports whether the spec requests any reordering.
func (s Spec) IsActive() bool {
	return s.field != "" && (s.dir == Ascending || s.dir == Descending)
}
