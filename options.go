package faunakit

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	endpoint   string
	httpClient *http.Client
	pageSize   int

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithEndpoint points the client at a non-default Fauna endpoint
// (self-hosted or a local dev instance).
func WithEndpoint(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.endpoint = url
	})
}

// WithHTTPClient sets the HTTP client used by the driver's transport.
// Transport timeouts (and with them request cancellation) live here.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithDefaultPageSize sets the page size used when a paginated call does not
// specify one. Default: 64.
func WithDefaultPageSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.pageSize = size
	})
}

// WithLogger enables per-operation debug/warn logging.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = logger
	})
}

// WithMetrics registers per-operation counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
