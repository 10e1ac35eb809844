package studyfind

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	remote        Remote
	qidoBaseURL   string
	qidoAuthToken string
	qidoTimeout   time.Duration

	cacheAddrs    []string
	cachePassword string
	cacheTTL      time.Duration

	fuzzyMatching bool
	density       Density
	pageSize      int

	logger *zap.Logger
}

// WithRemote plugs in a custom study catalog backend.
func WithRemote(r Remote) Option {
	return func(c *clientConfig) {
		c.remote = r
	}
}

// WithQIDO points the client at a DICOMweb QIDO-RS endpoint,
// e.g. "https://pacs.example.com/dicom-web".
func WithQIDO(baseURL string) Option {
	return func(c *clientConfig) {
		c.qidoBaseURL = baseURL
	}
}

// WithAuthToken sets the bearer token sent to the QIDO-RS endpoint.
func WithAuthToken(token string) Option {
	return func(c *clientConfig) {
		c.qidoAuthToken = token
	}
}

// WithRemoteTimeout bounds each remote query round-trip.
func WithRemoteTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.qidoTimeout = d
	}
}

// WithResultCache enables the short-lived per-query result cache backed by
// a Redis-compatible store.
func WithResultCache(addrs []string, password string) Option {
	return func(c *clientConfig) {
		c.cacheAddrs = addrs
		c.cachePassword = password
	}
}

// WithCacheTTL overrides the result cache entry lifetime.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) {
		c.cacheTTL = ttl
	}
}

// WithFuzzyMatching marks the remote connection as supporting fuzzy
// person-name matching, enabling the flag on every issued query.
func WithFuzzyMatching() Option {
	return func(c *clientConfig) {
		c.fuzzyMatching = true
	}
}

// WithDensity sets the default query decomposition density.
func WithDensity(d Density) Option {
	return func(c *clientConfig) {
		c.density = d
	}
}

// WithPageSize sets the default result page size.
func WithPageSize(n int) Option {
	return func(c *clientConfig) {
		c.pageSize = n
	}
}

// WithLogger sets the logger used by the client and its remote adapters.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}
