package study

import "fmt"

// Study is a projected view of one matched study record. The study instance
// UID is the sole dedup identity; every other field is display data.
type Study struct {
	studyInstanceUID string
	patientID        string
	patientName      string
	accessionNumber  string
	modalities       string
	studyDate        string
	description      string
}

// New validates and creates a Study. The instance UID is required.
func New(
	studyInstanceUID, patientID, patientName,
	accessionNumber, modalities, studyDate, description string,
) (Study, error) {
	if studyInstanceUID == "" {
		return Study{}, fmt.Errorf("study instance UID is required")
	}
	return Study{
		studyInstanceUID: studyInstanceUID,
		patientID:        patientID,
		patientName:      patientName,
		accessionNumber:  accessionNumber,
		modalities:       modalities,
		studyDate:        studyDate,
		description:      description,
	}, nil
}

// Reconstruct creates a Study from trusted stored data without validation.
func Reconstruct(
	studyInstanceUID, patientID, patientName,
	accessionNumber, modalities, studyDate, description string,
) Study {
	return Study{
		studyInstanceUID: studyInstanceUID,
		patientID:        patientID,
		patientName:      patientName,
		accessionNumber:  accessionNumber,
		modalities:       modalities,
		studyDate:        studyDate,
		description:      description,
	}
}

// StudyInstanceUID returns the globally unique study identifier.
func (s *Study) StudyInstanceUID() string { return s.studyInstanceUID }

// PatientID returns the patient identifier.
func (s *Study) PatientID() string { return s.patientID }

// PatientName returns the patient name, empty when absent.
func (s *Study) PatientName() string { return s.patientName }

// AccessionNumber returns the accession number.
func (s *Study) AccessionNumber() string { return s.accessionNumber }

// Modalities returns the modalities in the study.
func (s *Study) Modalities() string { return s.modalities }

// StudyDate returns the raw study date as the remote reported it.
func (s *Study) StudyDate() string { return s.studyDate }

// Description returns the study description.
func (s *Study) Description() string { return s.description }
