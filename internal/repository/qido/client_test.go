package qido

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"

	"github.com/pacsight/studyfind/internal/domain/search/query"
)

const sampleResponse = `[
	{
		"0020000D": {"vr": "UI", "Value": ["1.2.840.1"]},
		"00100010": {"vr": "PN", "Value": [{"Alphabetic": "DOE^JANE"}]},
		"00100020": {"vr": "LO", "Value": ["P-42"]},
		"00080050": {"vr": "SH", "Value": ["ACC-7"]},
		"00080061": {"vr": "CS", "Value": ["CT", "SR"]},
		"00080020": {"vr": "DA", "Value": ["20240315"]},
		"00081030": {"vr": "LO", "Value": ["CHEST CT"]}
	},
	{
		"00100020": {"vr": "LO", "Value": ["NO-UID"]}
	},
	{
		"0020000D": {"vr": "UI", "Value": ["1.2.840.2"]},
		"00100010": {"vr": "PN", "Value": ["SMITH^JOHN"]}
	}
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Config{BaseURL: srv.URL, Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, srv
}

func specWith(t *testing.T, fields query.Fields, fuzzy bool) query.Spec {
	t.Helper()
	s, err := query.New(fields, "19570101", "20260830", 25, 50, fuzzy)
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	return s
}

func TestFindStudies_ParsesDatasets(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/dicom+json")
		_, _ = w.Write([]byte(sampleResponse))
	})

	studies, err := c.FindStudies(context.Background(), specWith(t, query.Fields{PatientName: "DOE"}, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The record without a study instance UID is skipped.
	if len(studies) != 2 {
		t.Fatalf("expected 2 studies, got %d", len(studies))
	}

	first := studies[0]
	if first.StudyInstanceUID() != "1.2.840.1" {
		t.Errorf("uid = %q", first.StudyInstanceUID())
	}
	if first.PatientName() != "DOE^JANE" {
		t.Errorf("PN alphabetic form not extracted: %q", first.PatientName())
	}
	if first.Modalities() != "CT\\SR" {
		t.Errorf("modalities = %q, want multi-value join", first.Modalities())
	}
	if first.StudyDate() != "20240315" || first.Description() != "CHEST CT" {
		t.Errorf("date/description = %q / %q", first.StudyDate(), first.Description())
	}

	// PN as plain string is also accepted.
	if studies[1].PatientName() != "SMITH^JOHN" {
		t.Errorf("plain-string PN = %q", studies[1].PatientName())
	}
}

func TestFindStudies_QueryParameters(t *testing.T) {
	var got url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		if r.URL.Path != "/studies" {
			t.Errorf("path = %q, want /studies", r.URL.Path)
		}
		if accept := r.Header.Get("Accept"); accept != "application/dicom+json" {
			t.Errorf("Accept = %q", accept)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	spec := specWith(t, query.Fields{PatientName: "SMITH", Modalities: "CT"}, true)
	if _, err := c.FindStudies(context.Background(), spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"PatientName":       "SMITH",
		"ModalitiesInStudy": "CT",
		"StudyDate":         "19570101-20260830",
		"limit":             "25",
		"offset":            "50",
		"fuzzymatching":     "true",
	}
	for name, value := range want {
		if got.Get(name) != value {
			t.Errorf("param %s = %q, want %q", name, got.Get(name), value)
		}
	}
	if got.Has("PatientID") || got.Has("AccessionNumber") {
		t.Error("empty filters must be omitted")
	}
}

func TestFindStudies_FuzzyOmittedWhenUnsupported(t *testing.T) {
	var got url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.WriteHeader(http.StatusNoContent)
	})

	if _, err := c.FindStudies(context.Background(), specWith(t, query.Fields{}, false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Has("fuzzymatching") {
		t.Error("fuzzymatching must be omitted when the connection lacks support")
	}
}

func TestFindStudies_NoContent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	studies, err := c.FindStudies(context.Background(), specWith(t, query.Fields{}, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(studies) != 0 {
		t.Fatalf("expected empty result, got %d", len(studies))
	}
}

func TestFindStudies_ErrorStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	if _, err := c.FindStudies(context.Background(), specWith(t, query.Fields{}, false)); err == nil {
		t.Fatal("expected error for non-2xx status")
	}
}

func TestFindStudies_BearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, AuthToken: "secret", Logger: zap.NewNop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.FindStudies(context.Background(), specWith(t, query.Fields{}, false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q", auth)
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
}
