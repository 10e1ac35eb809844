package density

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{Compact, true},
		{Standard, true},
		{Full, true},
		{Mode(""), false},
		{Mode("wide"), false},
	}
	for _, tt := range tests {
		if got := tt.mode.IsValid(); got != tt.want {
			t.Errorf("Mode(%q).IsValid() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
