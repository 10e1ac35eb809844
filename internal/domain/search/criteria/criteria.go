// Package criteria holds the caller-owned filter snapshot for one search
// invocation. The caller constructs a fresh value per user interaction and
// passes an immutable copy into the pipeline.
package criteria

// Criteria is the combined filter set. Scalar fields map directly to remote
// query fields. Composite fields mean "match any of several underlying
// fields"; they are never sent to the remote and exist only to drive
// decomposition.
type Criteria struct {
	PatientID        string
	PatientName      string
	AccessionNumber  string
	StudyDescription string
	Modalities       string

	// Date bounds in compact "YYYYMMDD" form, inclusive.
	// Empty bounds are defaulted at expansion time.
	DateFrom string
	DateTo   string

	// PatientNameOrID matches either the patient name or the patient ID.
	PatientNameOrID string
	// AccessionOrModalityOrDescription matches accession number, modalities
	// or study description.
	AccessionOrModalityOrDescription string
	// AllFields matches any remote-queryable field.
	AllFields string
}
