// Package qido implements the Remote search capability over DICOMweb QIDO-RS.
package qido

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/domain/search/query"
	"github.com/pacsight/studyfind/internal/domain/study"
	"github.com/pacsight/studyfind/internal/metrics"
)

const defaultTimeout = 30 * time.Second

// Compile-time check: Client implements domain.Remote.
var _ domain.Remote = (*Client)(nil)

// Config holds connection parameters for a QIDO-RS endpoint.
type Config struct {
	// BaseURL is the DICOMweb root, e.g. "https://pacs.example.com/dicomweb".
	BaseURL string
	// AuthToken, when set, is sent as a bearer token.
	AuthToken string
	Timeout   time.Duration
	Logger    *zap.Logger
}

// Client queries the study level of a QIDO-RS service.
type Client struct {
	base   string
	token  string
	http   *http.Client
	logger *zap.Logger
}

// New creates a QIDO-RS client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		token:  cfg.AuthToken,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

// FindStudies executes one single-combination study query.
func (c *Client) FindStudies(ctx context.Context, spec query.Spec) ([]study.Study, error) {
	u := c.base + "/studies?" + queryParams(&spec).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/dicom+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.IncRemoteQuery("error")
		return nil, fmt.Errorf("qido request: %w", err)
	}
	defer resp.Body.Close()

	// 204: the query matched nothing.
	if resp.StatusCode == http.StatusNoContent {
		metrics.IncRemoteQuery("ok")
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		metrics.IncRemoteQuery("error")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("qido returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var datasets []dataset
	if err := json.NewDecoder(resp.Body).Decode(&datasets); err != nil {
		metrics.IncRemoteQuery("error")
		return nil, fmt.Errorf("decode qido response: %w", err)
	}

	metrics.IncRemoteQuery("ok")
	return c.toStudies(datasets), nil
}

// queryParams maps a query spec to QIDO-RS query parameters. Empty filters
// are omitted; the date range is always present because expansion defaults
// both bounds.
func queryParams(spec *query.Spec) url.Values {
	params := url.Values{}
	setIfPresent := func(name, value string) {
		if value != "" {
			params.Set(name, value)
		}
	}
	setIfPresent("PatientID", spec.PatientID())
	setIfPresent("PatientName", spec.PatientName())
	setIfPresent("AccessionNumber", spec.AccessionNumber())
	setIfPresent("StudyDescription", spec.StudyDescription())
	setIfPresent("ModalitiesInStudy", spec.Modalities())

	if spec.DateFrom() != "" || spec.DateTo() != "" {
		params.Set("StudyDate", spec.DateFrom()+"-"+spec.DateTo())
	}

	params.Set("limit", strconv.Itoa(spec.Limit()))
	params.Set("offset", strconv.Itoa(spec.Offset()))
	if spec.FuzzyMatching() {
		params.Set("fuzzymatching", "true")
	}
	params.Add("includefield", "StudyDescription")
	params.Add("includefield", "ModalitiesInStudy")
	return params
}

// toStudies projects QIDO datasets onto study records. Entries without a
// study instance UID are logged and skipped rather than failing the batch.
func (c *Client) toStudies(datasets []dataset) []study.Study {
	studies := make([]study.Study, 0, len(datasets))
	for i := range datasets {
		ds := datasets[i]
		st, err := study.New(
			ds.str(tagStudyInstanceUID),
			ds.str(tagPatientID),
			ds.personName(tagPatientName),
			ds.str(tagAccessionNumber),
			ds.multi(tagModalitiesInStudy),
			ds.str(tagStudyDate),
			ds.str(tagStudyDescription),
		)
		if err != nil {
			c.logger.Warn("Skipping malformed qido record", zap.Int("index", i), zap.Error(err))
			continue
		}
		studies = append(studies, st)
	}
	return studies
}
