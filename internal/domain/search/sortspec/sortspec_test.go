package sortspec

import "testing"

func TestCanonicalField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{KeyPatientNameOrID, FieldPatientName},
		{KeyAllFields, FieldPatientName},
		{KeyAccessionOrModalityOrDescription, FieldModalities},
		{FieldStudyDate, FieldStudyDate},
		{FieldAccessionNumber, FieldAccessionNumber},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CanonicalField(tt.in); got != tt.want {
			t.Errorf("CanonicalField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.Field() != FieldPatientName || d.Direction() != Descending {
		t.Errorf("Default() = %q/%q, want patientName/descending", d.Field(), d.Direction())
	}
	if !d.IsActive() {
		t.Error("default spec should be active")
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want bool
	}{
		{"ascending", New(FieldStudyDate, Ascending), true},
		{"descending", New(FieldStudyDate, Descending), true},
		{"none direction", New(FieldStudyDate, None), false},
		{"empty direction", New(FieldStudyDate, Direction("")), false},
		{"no field", New("", Descending), false},
		{"zero spec", Spec{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_RemapsSurrogates(t *testing.T) {
	s := New(KeyAccessionOrModalityOrDescription, Ascending)
	if s.Field() != FieldModalities {
		t.Errorf("Field() = %q, want remapped %q", s.Field(), FieldModalities)
	}
}
