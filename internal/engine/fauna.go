package engine

import (
	"context"
	"net/http"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// Config holds the connection settings for the Fauna driver.
type Config struct {
	Secret     string
	Endpoint   string       // empty = driver default (https://db.fauna.com)
	HTTPClient *http.Client // optional, controls transport timeouts
}

// Fauna adapts the driver's network client to the Engine interface.
type Fauna struct {
	inner *f.FaunaClient
}

// NewFauna builds a driver client bound to the given credential.
func NewFauna(cfg Config) *Fauna {
	var configs []f.ClientConfig
	if cfg.Endpoint != "" {
		configs = append(configs, f.Endpoint(cfg.Endpoint))
	}
	if cfg.HTTPClient != nil {
		configs = append(configs, f.HTTP(cfg.HTTPClient))
	}
	return &Fauna{inner: f.NewFaunaClient(cfg.Secret, configs...)}
}

// Query submits an expression and returns the driver's response unchanged.
// The v4 driver does not take a context; cancellation mid-flight is whatever
// the configured HTTP client's timeout provides. The context is still
// honored before the request is issued.
func (e *Fauna) Query(ctx context.Context, expr f.Expr) (f.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.inner.Query(expr)
}
