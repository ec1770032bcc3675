// Package constants defines default configuration values and backend types
// for the numstats system.
package constants

const (
	// DefaultMaxSamples is the default number of samples retained per series.
	// Zero keeps every recorded sample.
	DefaultMaxSamples = 0
	// InMemoryBackend is the in-memory backend type.
	// Samples live in application memory, sharded by series name.
	InMemoryBackend = "in-memory"
	// RedisBackend is the name of the Redis backend.
	// Each series is persisted as a Redis list of serialized samples.
	RedisBackend = "redis"
	// DefaultSerializer is the serializer used by backends that persist samples.
	// msgpack is the default because it preserves NaN samples, which JSON cannot encode.
	DefaultSerializer = "msgpack"
	// DefaultSummaryWorkers is the number of series summarized concurrently by SummarizeMany.
	DefaultSummaryWorkers = 4
)
