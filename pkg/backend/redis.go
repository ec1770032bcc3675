package backend

import (
	"context"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/numstats/internal/constants"
	"github.com/hyp3rd/numstats/internal/libs/serializer"
	"github.com/hyp3rd/numstats/internal/sentinel"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// Redis is a backend that persists every series as a Redis list of serialized samples,
// plus a Redis set tracking the series names.
type Redis[F stats.Float] struct {
	rdb         *redis.Client          // redis client to interact with the redis server
	capacity    int                    // maximum number of samples retained per series, 0 keeps everything
	keysSetName string                 // name of the set that holds the series names
	keyPrefix   string                 // prefix of the list key of every series
	Serializer  serializer.ISerializer // Serializer encodes each sample before it is pushed
}

// NewRedis creates a new redis backend with the given options.
func NewRedis[F stats.Float](redisOptions ...Option[Redis[F]]) (*Redis[F], error) {
	rb := &Redis[F]{}
	// Apply the backend options
	ApplyOptions(rb, redisOptions...)

	if rb.rdb == nil {
		return nil, sentinel.ErrNilClient
	}

	if rb.capacity < 0 {
		return nil, sentinel.ErrInvalidCapacity
	}

	if rb.keysSetName == "" {
		rb.keysSetName = constants.RedisKeySetName
	}

	if rb.keyPrefix == "" {
		rb.keyPrefix = constants.RedisKeyPrefix
	}

	if rb.Serializer == nil {
		var err error

		rb.Serializer, err = serializer.New(constants.DefaultSerializer)
		if err != nil {
			return nil, err
		}
	}

	return rb, nil
}

// Capacity returns the maximum number of samples retained per series.
func (rb *Redis[F]) Capacity() int {
	return rb.capacity
}

// key returns the list key of the series.
func (rb *Redis[F]) key(series string) string {
	return rb.keyPrefix + series
}

// encode serializes each sample into one list element.
func (rb *Redis[F]) encode(values []F) ([]any, error) {
	encoded := make([]any, 0, len(values))

	for _, value := range values {
		data, err := rb.Serializer.Marshal(value)
		if err != nil {
			return nil, ewrap.Wrap(err, "failed to encode sample")
		}

		encoded = append(encoded, data)
	}

	return encoded, nil
}

// decode deserializes list elements read back from Redis.
func (rb *Redis[F]) decode(raw []string) ([]F, error) {
	values := make([]F, len(raw))

	for i, data := range raw {
		err := rb.Serializer.Unmarshal([]byte(data), &values[i])
		if err != nil {
			return nil, ewrap.Wrap(err, "failed to decode sample")
		}
	}

	return values, nil
}

// Append pushes values to the end of the series list in one transaction,
// trimming the list to capacity when one is configured.
func (rb *Redis[F]) Append(ctx context.Context, series string, values ...F) error {
	err := ValidSeries(series)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	encoded, err := rb.encode(values)
	if err != nil {
		return err
	}

	pipe := rb.rdb.TxPipeline()
	pipe.RPush(ctx, rb.key(series), encoded...)

	if rb.capacity > 0 {
		pipe.LTrim(ctx, rb.key(series), int64(-rb.capacity), -1)
	}

	pipe.SAdd(ctx, rb.keysSetName, series)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return ewrap.Wrap(err, "failed to execute redis pipeline")
	}

	return nil
}

// Samples reads the whole series list and decodes it.
func (rb *Redis[F]) Samples(ctx context.Context, series string) ([]F, error) {
	err := ValidSeries(series)
	if err != nil {
		return nil, err
	}

	isMember, err := rb.rdb.SIsMember(ctx, rb.keysSetName, series).Result()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to check series membership")
	}

	if !isMember {
		return nil, ewrap.Wrap(sentinel.ErrSeriesNotFound, series)
	}

	raw, err := rb.rdb.LRange(ctx, rb.key(series), 0, -1).Result()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read series from redis")
	}

	return rb.decode(raw)
}

// List returns the sorted names of all series.
func (rb *Redis[F]) List(ctx context.Context) ([]string, error) {
	names, err := rb.rdb.SMembers(ctx, rb.keysSetName).Result()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to get series names from redis")
	}

	slices.Sort(names)

	return names, nil
}

// Count returns the number of series, or 0 when Redis cannot be reached.
func (rb *Redis[F]) Count(ctx context.Context) int {
	count, err := rb.rdb.SCard(ctx, rb.keysSetName).Result()
	if err != nil {
		return 0
	}

	return int(count)
}

// Remove deletes the named series lists and their entries in the names set.
func (rb *Redis[F]) Remove(ctx context.Context, series ...string) error {
	if len(series) == 0 {
		return nil
	}

	keys := make([]string, 0, len(series))
	members := make([]any, 0, len(series))

	for _, name := range series {
		if strings.TrimSpace(name) == "" {
			continue
		}

		keys = append(keys, rb.key(name))
		members = append(members, name)
	}

	if len(keys) == 0 {
		return nil
	}

	pipe := rb.rdb.TxPipeline()
	pipe.Del(ctx, keys...)
	pipe.SRem(ctx, rb.keysSetName, members...)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return ewrap.Wrap(err, "failed to remove series from redis")
	}

	return nil
}

// Clear removes every series tracked by the names set, and the set itself.
func (rb *Redis[F]) Clear(ctx context.Context) error {
	names, err := rb.rdb.SMembers(ctx, rb.keysSetName).Result()
	if err != nil {
		return ewrap.Wrap(err, "failed to get series names from redis")
	}

	keys := make([]string, 0, len(names)+1)
	for _, name := range names {
		keys = append(keys, rb.key(name))
	}

	keys = append(keys, rb.keysSetName)

	err = rb.rdb.Del(ctx, keys...).Err()
	if err != nil {
		return ewrap.Wrap(err, "failed to clear redis")
	}

	return nil
}
