package backend

import (
	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/numstats/internal/libs/serializer"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// iConfigurableBackend is implemented by backends whose capacity can be set through WithCapacity.
type iConfigurableBackend interface {
	// setCapacity sets the per-series capacity.
	setCapacity(capacity int)
}

// setCapacity sets the `capacity` field of the `InMemory` backend.
func (inm *InMemory[F]) setCapacity(capacity int) {
	inm.capacity = capacity
}

// setCapacity sets the `capacity` field of the `Redis` backend.
func (rb *Redis[F]) setCapacity(capacity int) {
	rb.capacity = capacity
}

// Option is a function type that can be used to configure a backend.
type Option[T any] func(*T)

// ApplyOptions applies the given options to the given backend.
func ApplyOptions[T any](backend *T, options ...Option[T]) {
	for _, option := range options {
		option(backend)
	}
}

// WithCapacity sets the maximum number of samples retained per series.
func WithCapacity[T any](capacity int) Option[T] {
	return func(a *T) {
		if configurable, ok := any(a).(iConfigurableBackend); ok {
			configurable.setCapacity(capacity)
		}
	}
}

// WithShardCount sets the number of shards of the `InMemory` backend. Values below 1 are ignored.
func WithShardCount[F stats.Float](count int) Option[InMemory[F]] {
	return func(backend *InMemory[F]) {
		if count > 0 {
			backend.shardCount = count
		}
	}
}

// WithRedisClient sets the redis client to use.
func WithRedisClient[F stats.Float](client *redis.Client) Option[Redis[F]] {
	return func(backend *Redis[F]) {
		backend.rdb = client
	}
}

// WithKeysSetName sets the name of the Redis set that tracks series names.
func WithKeysSetName[F stats.Float](keysSetName string) Option[Redis[F]] {
	return func(backend *Redis[F]) {
		backend.keysSetName = keysSetName
	}
}

// WithKeyPrefix sets the prefix of the Redis list key of every series.
func WithKeyPrefix[F stats.Float](prefix string) Option[Redis[F]] {
	return func(backend *Redis[F]) {
		backend.keyPrefix = prefix
	}
}

// WithSerializer sets the serializer used to encode samples.
//   - The default serializer is `serializer.MsgpackSerializer`.
//   - `serializer.CBORSerializer` also preserves NaN samples.
//   - `serializer.DefaultJSONSerializer` cannot encode NaN samples and is only
//     suitable for series that never record NaN.
func WithSerializer[F stats.Float](ser serializer.ISerializer) Option[Redis[F]] {
	return func(backend *Redis[F]) {
		backend.Serializer = ser
	}
}
