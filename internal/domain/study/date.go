package study

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedDate signals a study date matching no accepted encoding.
var ErrMalformedDate = errors.New("malformed study date")

// Study date encodings accepted by the normalizer.
const (
	// DisplayLayout is the human-readable form ("Jun 29, 2002").
	DisplayLayout = "Jan 02, 2006"
	// CompactLayout is the compact numeric form the remote usually returns.
	CompactLayout = "20060102"
)

// Date is a normalized study date.
type Date struct {
	t     time.Time
	raw   string
	valid bool
}

// ParseDate normalizes a raw study date. A value already in display form is
// accepted as-is; anything else is parsed as compact "YYYYMMDD". A value
// matching neither encoding yields an invalid Date that preserves the raw
// value, wrapping ErrMalformedDate.
func ParseDate(raw string) (Date, error) {
	if raw == "" {
		return Date{raw: raw}, fmt.Errorf("%w: empty value", ErrMalformedDate)
	}
	if t, err := time.Parse(DisplayLayout, raw); err == nil {
		return Date{t: t, raw: raw, valid: true}, nil
	}
	if t, err := time.Parse(CompactLayout, raw); err == nil {
		return Date{t: t, raw: raw, valid: true}, nil
	}
	return Date{raw: raw}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
}

// Raw returns the original textual value.
func (d Date) Raw() string { return d.raw }

// IsValid reports whether the value matched an accepted encoding.
func (d Date) IsValid() bool { return d.valid }

// Display returns the date in display form, or the raw value when invalid.
func (d Date) Display() string {
	if !d.valid {
		return d.raw
	}
	return d.t.Format(DisplayLayout)
}

// SortKey returns a fully ordered ISO timestamp for comparisons.
// Invalid dates return "" and are ordered after every valid date.
func (d Date) SortKey() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(time.RFC3339)
}
