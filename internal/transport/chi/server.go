package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/domain/search/criteria"
	"github.com/pacsight/studyfind/internal/domain/search/density"
	"github.com/pacsight/studyfind/internal/domain/search/page"
	"github.com/pacsight/studyfind/internal/domain/search/sortspec"
	"github.com/pacsight/studyfind/internal/domain/study"
	searchuc "github.com/pacsight/studyfind/internal/usecase/search"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest    = "bad_request"
	codeRemoteFailure = "remote_search_failed"
	codeInternalError = "internal_error"
)

// Pinger reports reachability of an optional backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Defaults carries request-level fallbacks taken from configuration.
type Defaults struct {
	PageSize    int
	MaxPageSize int
	Density     density.Mode
}

// Server exposes the study search pipeline over HTTP.
type Server struct {
	search   *searchuc.Service
	cache    Pinger // nil when the result cache is disabled
	defaults Defaults
	logger   *zap.Logger
}

// NewServer creates an HTTP API server. cache may be nil.
func NewServer(search *searchuc.Service, cache Pinger, defaults Defaults, logger *zap.Logger) *Server {
	if defaults.PageSize <= 0 {
		defaults.PageSize = page.DefaultSize
	}
	if defaults.MaxPageSize <= 0 {
		defaults.MaxPageSize = 500
	}
	if defaults.Density == "" {
		defaults.Density = density.Standard
	}
	return &Server{
		search:   search,
		cache:    cache,
		defaults: defaults,
		logger:   logger,
	}
}

type studyResponse struct {
	StudyInstanceUID string `json:"studyInstanceUid"`
	PatientID        string `json:"patientId,omitempty"`
	PatientName      string `json:"patientName,omitempty"`
	AccessionNumber  string `json:"accessionNumber,omitempty"`
	Modalities       string `json:"modalities,omitempty"`
	StudyDate        string `json:"studyDate,omitempty"`
	StudyDateDisplay string `json:"studyDateDisplay,omitempty"`
	Description      string `json:"description,omitempty"`
}

type searchResponse struct {
	Studies    []studyResponse `json:"studies"`
	PageNumber int             `json:"pageNumber"`
	PageSize   int             `json:"pageSize"`
	Count      int             `json:"count"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SearchStudies handles GET /api/v1/studies.
func (s *Server) SearchStudies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	crit := criteria.Criteria{
		PatientID:                        q.Get("patientId"),
		PatientName:                      q.Get("patientName"),
		AccessionNumber:                  q.Get("accessionNumber"),
		StudyDescription:                 q.Get("studyDescription"),
		Modalities:                       q.Get("modalities"),
		DateFrom:                         q.Get("dateFrom"),
		DateTo:                           q.Get("dateTo"),
		PatientNameOrID:                  q.Get("patientNameOrId"),
		AccessionOrModalityOrDescription: q.Get("accessionOrModalityOrDescription"),
		AllFields:                        q.Get("allFields"),
	}

	sortBy, err := s.parseSort(q.Get("sortBy"), q.Get("sortDir"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	pg, err := s.parsePage(q.Get("pageNumber"), q.Get("pageSize"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	mode := s.defaults.Density
	if v := q.Get("density"); v != "" {
		mode = density.Mode(v)
		if !mode.IsValid() {
			writeError(w, http.StatusBadRequest, codeBadRequest,
				fmt.Sprintf("density must be compact, standard or full, got %q", v))
			return
		}
	}

	studies, err := s.search.Search(r.Context(), crit, sortBy, pg, mode)
	if err != nil {
		s.handleSearchError(w, err)
		return
	}

	items := make([]studyResponse, len(studies))
	for i := range studies {
		items[i] = studyToResponse(&studies[i])
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Studies:    items,
		PageNumber: pg.Number(),
		PageSize:   pg.Size(),
		Count:      len(items),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	status := "ok"

	if s.cache != nil {
		if err := s.cache.Ping(r.Context()); err != nil {
			// The result cache degrades gracefully, so a down cache
			// does not make the service unavailable.
			checks["cache"] = "down"
			status = "degraded"
			s.logger.Warn("cache health check failed", zap.Error(err))
		} else {
			checks["cache"] = "up"
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) parseSort(field, dir string) (sortspec.Spec, error) {
	if field == "" && dir == "" {
		return sortspec.Default(), nil
	}

	direction := sortspec.Descending
	switch dir {
	case "", string(sortspec.Descending):
	case string(sortspec.Ascending):
		direction = sortspec.Ascending
	case string(sortspec.None):
		direction = sortspec.None
	default:
		return sortspec.Spec{}, fmt.Errorf("sortDir must be ascending, descending or none, got %q", dir)
	}

	return sortspec.New(field, direction), nil
}

func (s *Server) parsePage(numberStr, sizeStr string) (page.Request, error) {
	number := 0
	if numberStr != "" {
		n, err := strconv.Atoi(numberStr)
		if err != nil || n < 0 {
			return page.Request{}, fmt.Errorf("pageNumber must be a non-negative integer, got %q", numberStr)
		}
		number = n
	}

	size := s.defaults.PageSize
	if sizeStr != "" {
		n, err := strconv.Atoi(sizeStr)
		if err != nil || n <= 0 {
			return page.Request{}, fmt.Errorf("pageSize must be a positive integer, got %q", sizeStr)
		}
		if n > s.defaults.MaxPageSize {
			return page.Request{}, fmt.Errorf("pageSize must not exceed %d, got %d", s.defaults.MaxPageSize, n)
		}
		size = n
	}

	return page.New(number, size)
}

func (s *Server) handleSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRemoteSearch):
		s.logger.Warn("remote search failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, codeRemoteFailure, "remote study search failed")
	case errors.Is(err, domain.ErrInvalidDensity), errors.Is(err, domain.ErrNoQuerySpecs):
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func studyToResponse(st *study.Study) studyResponse {
	resp := studyResponse{
		StudyInstanceUID: st.StudyInstanceUID(),
		PatientID:        st.PatientID(),
		PatientName:      st.PatientName(),
		AccessionNumber:  st.AccessionNumber(),
		Modalities:       st.Modalities(),
		StudyDate:        st.StudyDate(),
		Description:      st.Description(),
	}
	if st.StudyDate() != "" {
		d, _ := study.ParseDate(st.StudyDate())
		resp.StudyDateDisplay = d.Display()
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
