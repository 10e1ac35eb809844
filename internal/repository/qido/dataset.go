package qido

import (
	"encoding/json"
	"strings"
)

// DICOM tags used at the study level of the QIDO response.
const (
	tagStudyInstanceUID  = "0020000D"
	tagPatientName       = "00100010"
	tagPatientID         = "00100020"
	tagAccessionNumber   = "00080050"
	tagModalitiesInStudy = "00080061"
	tagStudyDate         = "00080020"
	tagStudyDescription  = "00081030"
)

// attribute is one DICOM JSON model attribute: a VR plus zero or more values.
type attribute struct {
	VR    string            `json:"vr"`
	Value []json.RawMessage `json:"Value"`
}

// dataset maps DICOM tags to attributes as QIDO-RS returns them.
type dataset map[string]attribute

// str returns the first value of a plain string attribute.
func (ds dataset) str(tag string) string {
	attr, ok := ds[tag]
	if !ok || len(attr.Value) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(attr.Value[0], &s); err != nil {
		return ""
	}
	return s
}

// personName returns the alphabetic representation of a PN attribute.
// Some servers return PN values as plain strings; both forms are accepted.
func (ds dataset) personName(tag string) string {
	attr, ok := ds[tag]
	if !ok || len(attr.Value) == 0 {
		return ""
	}
	var pn struct {
		Alphabetic string `json:"Alphabetic"`
	}
	if err := json.Unmarshal(attr.Value[0], &pn); err == nil && pn.Alphabetic != "" {
		return pn.Alphabetic
	}
	var s string
	if err := json.Unmarshal(attr.Value[0], &s); err == nil {
		return s
	}
	return ""
}

// multi joins a multi-valued string attribute with the DICOM value separator.
func (ds dataset) multi(tag string) string {
	attr, ok := ds[tag]
	if !ok || len(attr.Value) == 0 {
		return ""
	}
	values := make([]string, 0, len(attr.Value))
	for _, raw := range attr.Value {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			values = append(values, s)
		}
	}
	return strings.Join(values, "\\")
}
