package faunakit

import (
	"context"
	"errors"
	"time"

	f "github.com/fauna/faunadb-go/v4/faunadb"

	"github.com/faunakit/faunakit/internal/engine"
)

// defaultPageSize bounds paginated calls that do not specify a size.
const defaultPageSize = 64

// Client is the faunakit entry point. It holds one driver client for its
// lifetime; concurrent calls are independent and share no mutable state.
type Client struct {
	engine   engine.Engine
	pageSize int
	obs      *observer
}

// New creates a Client bound to the given secret credential.
func New(secret string, opts ...Option) (*Client, error) {
	if secret == "" {
		return nil, errors.New("faunakit: secret credential required")
	}

	cfg := &clientConfig{pageSize: defaultPageSize}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.pageSize <= 0 {
		cfg.pageSize = defaultPageSize
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	eng := engine.NewFauna(engine.Config{
		Secret:     secret,
		Endpoint:   cfg.endpoint,
		HTTPClient: cfg.httpClient,
	})
	return &Client{engine: eng, pageSize: cfg.pageSize, obs: obs}, nil
}

// Query forwards a caller-built expression to the engine unchanged. Escape
// hatch for queries the convenience surface does not cover.
func (c *Client) Query(ctx context.Context, expr f.Expr) (f.Value, error) {
	return c.query(ctx, "query", expr)
}

// Databases returns the database management service.
func (c *Client) Databases() *DatabaseService {
	return &DatabaseService{c: c}
}

// Collections returns the collection management service.
func (c *Client) Collections() *CollectionService {
	return &CollectionService{c: c}
}

// Indexes returns the index and indexed-pagination service.
func (c *Client) Indexes() *IndexService {
	return &IndexService{c: c}
}

// Documents returns the document service for a given collection.
func (c *Client) Documents(collection string) *DocumentService {
	return &DocumentService{c: c, collection: collection}
}

// query is the single funnel to the engine: one expression in, the engine's
// value or error out, untouched either way.
func (c *Client) query(ctx context.Context, op string, expr f.Expr) (f.Value, error) {
	start := time.Now()
	v, err := c.engine.Query(ctx, expr)
	c.obs.observe(op, start, err)
	return v, err
}
