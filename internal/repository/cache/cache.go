// Package cache decorates a Remote with a short-lived per-query result cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pacsight/studyfind/internal/db"
	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/domain/search/query"
	"github.com/pacsight/studyfind/internal/domain/study"
)

var cacheKeyPrefix = domain.KeyPrefix + "result_cache:"

// DefaultTTL bounds staleness of cached remote results.
const DefaultTTL = 60 * time.Second

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedRemote caches per-spec remote results in a key-value store.
// Cache failures never fail the search; they degrade to a remote call.
type CachedRemote struct {
	inner      domain.Remote
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator. cacheTotal is a counter vec with label
// "result" ("hit"/"miss"), passed explicitly. A non-positive ttl takes the
// default.
func New(
	inner domain.Remote,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedRemote {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedRemote{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// FindStudies returns cached results for an identical spec or calls the
// inner remote.
func (c *CachedRemote) FindStudies(ctx context.Context, spec query.Spec) ([]study.Study, error) {
	key := cacheKey(&spec)

	if studies, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return studies, nil
	}

	c.incCache("miss")

	studies, err := c.inner.FindStudies(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("find studies: %w", err)
	}

	c.putToCache(ctx, key, studies)
	return studies, nil
}

func (c *CachedRemote) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey derives a stable key from every spec dimension; two specs collide
// only when the remote would answer them identically.
func cacheKey(spec *query.Spec) string {
	parts := []string{
		spec.PatientID(), spec.PatientName(), spec.AccessionNumber(),
		spec.StudyDescription(), spec.Modalities(),
		spec.DateFrom(), spec.DateTo(),
		strconv.Itoa(spec.Limit()), strconv.Itoa(spec.Offset()),
		strconv.FormatBool(spec.FuzzyMatching()),
	}
	h := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedRemote) getFromCache(ctx context.Context, key string) ([]study.Study, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached results", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	studies, err := decodeStudies(data)
	if err != nil {
		c.logger.Warn("Failed to parse cached results", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return studies, true
}

func (c *CachedRemote) putToCache(ctx context.Context, key string, studies []study.Study) {
	data, err := encodeStudies(studies)
	if err != nil {
		c.logger.Warn("Failed to encode results for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache results", zap.String("key", key), zap.Error(err))
	}
}
