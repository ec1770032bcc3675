package numstats

import (
	"github.com/hyp3rd/numstats/internal/constants"
	"github.com/hyp3rd/numstats/pkg/backend"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// Config bundles the configuration of a Monitor and of its backend.
type Config[F stats.Float] struct {
	// BackendType selects the backend constructor registered in the BackendManager.
	BackendType string
	// InMemoryOptions configure the `InMemory` backend.
	InMemoryOptions []backend.Option[backend.InMemory[F]]
	// RedisOptions configure the `Redis` backend.
	RedisOptions []backend.Option[backend.Redis[F]]
	// MonitorOptions configure the `Monitor`.
	MonitorOptions []Option[F]
}

// NewConfig returns a Config for the given backend type, with no options set.
// An empty backendType selects the in-memory backend.
func NewConfig[F stats.Float](backendType string) *Config[F] {
	if backendType == "" {
		backendType = constants.InMemoryBackend
	}

	return &Config[F]{
		BackendType:     backendType,
		InMemoryOptions: []backend.Option[backend.InMemory[F]]{},
		RedisOptions:    []backend.Option[backend.Redis[F]]{},
		MonitorOptions:  []Option[F]{},
	}
}

// Option is a function type that can be used to configure the `Monitor`.
type Option[F stats.Float] func(*Monitor[F])

// ApplyMonitorOptions applies the given options to the given monitor.
func ApplyMonitorOptions[F stats.Float](monitor *Monitor[F], options ...Option[F]) {
	for _, option := range options {
		option(monitor)
	}
}

// WithManagementHTTP enables the management HTTP server on addr.
func WithManagementHTTP[F stats.Float](addr string, opts ...ManagementHTTPOption) Option[F] {
	return func(monitor *Monitor[F]) {
		monitor.mgmtHTTP = NewManagementHTTPServer(addr, opts...)
	}
}

// WithSummaryWorkers sets how many series SummarizeMany summarizes concurrently.
// Values below 1 summarize sequentially.
func WithSummaryWorkers[F stats.Float](workers int) Option[F] {
	return func(monitor *Monitor[F]) {
		monitor.summaryWorkers = workers
	}
}
