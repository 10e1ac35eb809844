// Package studyfind searches a remote study catalog that only answers
// single-field-combination queries. A combined filter set is decomposed into
// concurrent single-field queries whose results are merged, deduplicated by
// study instance UID, sorted and truncated to one page.
package studyfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pacsight/studyfind/internal/db"
	dbRedis "github.com/pacsight/studyfind/internal/db/redis"
	"github.com/pacsight/studyfind/internal/domain"
	"github.com/pacsight/studyfind/internal/metrics"
	cacherepo "github.com/pacsight/studyfind/internal/repository/cache"
	"github.com/pacsight/studyfind/internal/repository/qido"
	searchuc "github.com/pacsight/studyfind/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the studyfind SDK entry point.
type Client struct {
	store     db.Store // nil when the result cache is disabled
	searchSvc *searchuc.Service
	defaults  queryDefaults
	logger    *zap.Logger
}

type queryDefaults struct {
	density  Density
	pageSize int
}

// New creates a studyfind Client. A remote backend is required: either a
// QIDO-RS endpoint via WithQIDO or a custom backend via WithRemote.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		density: DensityStandard,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	remote, err := createRemote(cfg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if len(cfg.cacheAddrs) > 0 {
		store, err = createStore(cfg)
		if err != nil {
			return nil, err
		}
		remote = cacherepo.New(remote, store, cfg.cacheTTL, metrics.ResultCacheCounter(), cfg.logger)
	}

	searchSvc := searchuc.New(remote).WithFuzzyMatching(cfg.fuzzyMatching)

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		defaults: queryDefaults{
			density:  cfg.density,
			pageSize: cfg.pageSize,
		},
		logger: cfg.logger,
	}, nil
}

func createRemote(cfg *clientConfig) (domain.Remote, error) {
	if cfg.remote != nil {
		return &remoteAdapter{inner: cfg.remote}, nil
	}
	if cfg.qidoBaseURL == "" {
		return nil, errors.New("studyfind: remote backend required (use WithQIDO or WithRemote)")
	}

	client, err := qido.New(qido.Config{
		BaseURL:   cfg.qidoBaseURL,
		AuthToken: cfg.qidoAuthToken,
		Timeout:   cfg.qidoTimeout,
		Logger:    cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("studyfind: create qido client: %w", err)
	}
	return client, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.cacheAddrs,
		Password: cfg.cachePassword,
	})
	if err != nil {
		return nil, fmt.Errorf("studyfind: create cache store: %w", err)
	}

	if err := store.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("studyfind: cache store not ready: %w", err)
	}
	return store, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks cache store connectivity. Returns nil when no cache is
// configured.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search returns the study search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc, defaults: c.defaults}
}
