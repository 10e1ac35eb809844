package studyfind

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type fakeRemote struct {
	mu      sync.Mutex
	queries []RemoteQuery
	studies []Study
	err     error
}

func (r *fakeRemote) FindStudies(ctx context.Context, q RemoteQuery) ([]Study, error) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.studies, nil
}

func (r *fakeRemote) seen() []RemoteQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RemoteQuery(nil), r.queries...)
}

func TestNew_RequiresRemote(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when no remote backend is configured")
	}
}

func TestClient_QueryRoundTrip(t *testing.T) {
	remote := &fakeRemote{
		studies: []Study{
			{StudyInstanceUID: "1.2.3", PatientName: "DOE^JANE", StudyDate: "20240315"},
		},
	}
	c, err := New(WithRemote(remote))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	results, err := c.Search().Query(context.Background(), Criteria{PatientName: "DOE"}, nil)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	// Identical records from every fanned-out query collapse to one.
	if len(results) != 1 {
		t.Fatalf("expected 1 study, got %d", len(results))
	}
	if results[0].StudyInstanceUID != "1.2.3" || results[0].PatientName != "DOE^JANE" {
		t.Errorf("unexpected study: %+v", results[0])
	}
}

func TestClient_CompositeCriteriaFanOut(t *testing.T) {
	remote := &fakeRemote{}
	c, err := New(WithRemote(remote))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	_, err = c.Search().Query(context.Background(),
		Criteria{PatientNameOrID: "42"}, nil)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	queries := remote.seen()
	if len(queries) != 2 {
		t.Fatalf("expected 2 decomposed queries, got %d", len(queries))
	}
	var sawName, sawID bool
	for _, q := range queries {
		if q.PatientName == "42" && q.PatientID == "" {
			sawName = true
		}
		if q.PatientID == "42" && q.PatientName == "" {
			sawID = true
		}
	}
	if !sawName || !sawID {
		t.Errorf("composite filter not decomposed per field: %+v", queries)
	}
}

func TestClient_FuzzyMatchingPropagates(t *testing.T) {
	remote := &fakeRemote{}
	c, err := New(WithRemote(remote), WithFuzzyMatching())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if _, err := c.Search().Query(context.Background(), Criteria{PatientName: "DOE"}, nil); err != nil {
		t.Fatalf("Query: %v", err)
	}

	for _, q := range remote.seen() {
		if !q.FuzzyMatching {
			t.Fatal("expected fuzzy matching on every issued query")
		}
	}
}

func TestClient_RemoteFailureWrapsSentinel(t *testing.T) {
	remote := &fakeRemote{err: errors.New("association rejected")}
	c, err := New(WithRemote(remote))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	_, err = c.Search().Query(context.Background(), Criteria{PatientName: "DOE"}, nil)
	if !errors.Is(err, ErrRemoteSearch) {
		t.Fatalf("expected ErrRemoteSearch, got %v", err)
	}
}

func TestClient_PageSizeOption(t *testing.T) {
	var studies []Study
	for _, uid := range []string{"1", "2", "3", "4"} {
		studies = append(studies, Study{StudyInstanceUID: "1.2." + uid})
	}
	remote := &fakeRemote{studies: studies}
	c, err := New(WithRemote(remote), WithPageSize(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	results, err := c.Search().Query(context.Background(), Criteria{PatientName: "X"}, nil)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected page of 2, got %d", len(results))
	}
}

func TestClient_PingWithoutCache(t *testing.T) {
	c, err := New(WithRemote(&fakeRemote{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping without cache must be a no-op, got %v", err)
	}
}
