package density

// Mode classifies how much filter granularity the active presentation shows.
// The remote cannot express OR across fields, so the mode decides how a
// composite filter value is decomposed into single-field queries.
type Mode string

// Presentation density constants.
const (
	// Compact collapses every filter into a single all-fields box.
	Compact Mode = "compact"
	// Standard shows a name-or-id box and an accession/modality/description box.
	Standard Mode = "standard"
	// Full shows one input per remote-queryable field; composites are unused.
	Full Mode = "full"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Compact || m == Standard || m == Full
}
