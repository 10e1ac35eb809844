package cache

import (
	"encoding/json"
	"fmt"

	"github.com/pacsight/studyfind/internal/domain/study"
)

// studyDTO is the cache wire form of one study record.
type studyDTO struct {
	StudyInstanceUID string `json:"uid"`
	PatientID        string `json:"pid,omitempty"`
	PatientName      string `json:"pname,omitempty"`
	AccessionNumber  string `json:"acc,omitempty"`
	Modalities       string `json:"mod,omitempty"`
	StudyDate        string `json:"date,omitempty"`
	Description      string `json:"desc,omitempty"`
}

func encodeStudies(studies []study.Study) ([]byte, error) {
	dtos := make([]studyDTO, len(studies))
	for i := range studies {
		s := &studies[i]
		dtos[i] = studyDTO{
			StudyInstanceUID: s.StudyInstanceUID(),
			PatientID:        s.PatientID(),
			PatientName:      s.PatientName(),
			AccessionNumber:  s.AccessionNumber(),
			Modalities:       s.Modalities(),
			StudyDate:        s.StudyDate(),
			Description:      s.Description(),
		}
	}
	data, err := json.Marshal(dtos)
	if err != nil {
		return nil, fmt.Errorf("marshal studies: %w", err)
	}
	return data, nil
}

func decodeStudies(data []byte) ([]study.Study, error) {
	var dtos []studyDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("unmarshal studies: %w", err)
	}
	studies := make([]study.Study, len(dtos))
	for i, d := range dtos {
		studies[i] = study.Reconstruct(
			d.StudyInstanceUID, d.PatientID, d.PatientName,
			d.AccessionNumber, d.Modalities, d.StudyDate, d.Description,
		)
	}
	return studies, nil
}
