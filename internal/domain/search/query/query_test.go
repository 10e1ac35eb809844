package query

import "testing"

func TestNew_Defaults(t *testing.T) {
	s, err := New(Fields{PatientName: "SMITH"}, "19570101", "20260830", 0, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want default %d", s.Limit(), DefaultLimit)
	}
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", s.Offset())
	}
}

func TestNew_ClampsLimit(t *testing.T) {
	s, err := New(Fields{}, "", "", MaxLimit+1, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want clamped to %d", s.Limit(), MaxLimit)
	}
}

func TestNew_RejectsNegativeOffset(t *testing.T) {
	if _, err := New(Fields{}, "", "", 25, -1, false); err == nil {
		t.Fatal("expected error for negative offset")
	}
}

func TestNew_Getters(t *testing.T) {
	s, err := New(Fields{
		PatientID:        "42",
		PatientName:      "DOE",
		AccessionNumber:  "ACC",
		StudyDescription: "CHEST",
		Modalities:       "CT",
	}, "19570101", "20260830", 50, 100, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PatientID() != "42" || s.PatientName() != "DOE" {
		t.Errorf("patient filters = %q / %q", s.PatientID(), s.PatientName())
	}
	if s.AccessionNumber() != "ACC" || s.StudyDescription() != "CHEST" || s.Modalities() != "CT" {
		t.Errorf("unexpected field filters")
	}
	if s.DateFrom() != "19570101" || s.DateTo() != "20260830" {
		t.Errorf("date bounds = %q / %q", s.DateFrom(), s.DateTo())
	}
	if s.Limit() != 50 || s.Offset() != 100 {
		t.Errorf("paging = %d / %d", s.Limit(), s.Offset())
	}
	if !s.FuzzyMatching() {
		t.Error("expected fuzzy matching enabled")
	}
}
