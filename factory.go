package numstats

import (
	"context"

	"github.com/hyp3rd/numstats/internal/constants"
	"github.com/hyp3rd/numstats/pkg/backend"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// IBackendConstructor builds a backend from a Config.
type IBackendConstructor[F stats.Float] interface {
	Create(ctx context.Context, cfg *Config[F]) (backend.IBackend[F], error)
}

// InMemoryBackendConstructor constructs InMemory backends.
type InMemoryBackendConstructor[F stats.Float] struct{}

// Create creates a new InMemory backend.
func (InMemoryBackendConstructor[F]) Create(_ context.Context, cfg *Config[F]) (backend.IBackend[F], error) {
	inm, err := backend.NewInMemory(cfg.InMemoryOptions...)
	if err != nil {
		return nil, err
	}

	return inm, nil
}

// RedisBackendConstructor constructs Redis backends.
type RedisBackendConstructor[F stats.Float] struct{}

// Create creates a new Redis backend.
func (RedisBackendConstructor[F]) Create(_ context.Context, cfg *Config[F]) (backend.IBackend[F], error) {
	rb, err := backend.NewRedis(cfg.RedisOptions...)
	if err != nil {
		return nil, err
	}

	return rb, nil
}

// BackendManager is a registry of named backend constructors.
type BackendManager[F stats.Float] struct {
	backendRegistry map[string]IBackendConstructor[F]
}

// getDefaultBackends returns the default set of backend constructors.
func getDefaultBackends[F stats.Float]() map[string]IBackendConstructor[F] {
	return map[string]IBackendConstructor[F]{
		constants.InMemoryBackend: InMemoryBackendConstructor[F]{},
		constants.RedisBackend:    RedisBackendConstructor[F]{},
	}
}

// NewBackendManager creates a new BackendManager with default backends pre-registered.
func NewBackendManager[F stats.Float]() *BackendManager[F] {
	manager := NewEmptyBackendManager[F]()
	for name, constructor := range getDefaultBackends[F]() {
		manager.RegisterBackend(name, constructor)
	}

	return manager
}

// NewEmptyBackendManager creates a new BackendManager without default backends.
func NewEmptyBackendManager[F stats.Float]() *BackendManager[F] {
	return &BackendManager[F]{
		backendRegistry: make(map[string]IBackendConstructor[F]),
	}
}

// RegisterBackend registers a backend constructor under name, replacing any previous one.
func (m *BackendManager[F]) RegisterBackend(name string, constructor IBackendConstructor[F]) {
	m.backendRegistry[name] = constructor
}

// constructor returns the constructor registered under name.
func (m *BackendManager[F]) constructor(name string) (IBackendConstructor[F], bool) {
	constructor, ok := m.backendRegistry[name]

	return constructor, ok
}
