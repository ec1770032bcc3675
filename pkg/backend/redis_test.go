package backend

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/longbridgeapp/assert"
	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/numstats/internal/libs/serializer"
	"github.com/hyp3rd/numstats/internal/sentinel"
)

func TestNewRedis_NilClient(t *testing.T) {
	_, err := NewRedis[float64]()
	assert.True(t, errors.Is(err, sentinel.ErrNilClient))
}

func TestNewRedis_Defaults(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	rb, err := NewRedis(WithRedisClient[float64](client), WithCapacity[Redis[float64]](10))
	assert.Nil(t, err)
	assert.Equal(t, 10, rb.Capacity())
	assert.Equal(t, "numstats", rb.keysSetName)
	assert.Equal(t, "numstats:series:rtt", rb.key("rtt"))

	_, ok := rb.Serializer.(*serializer.MsgpackSerializer)
	assert.True(t, ok)

	_, err = NewRedis(WithRedisClient[float64](client), WithCapacity[Redis[float64]](-1))
	assert.True(t, errors.Is(err, sentinel.ErrInvalidCapacity))
}

func TestRedis_SampleEncodingKeepsNaN(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	want := []float64{1, math.NaN(), math.Inf(-1), -0.5}

	for _, name := range []string{"msgpack", "cbor"} {
		ser, err := serializer.New(name)
		assert.Nil(t, err)

		rb, err := NewRedis(WithRedisClient[float64](client), WithSerializer[float64](ser))
		assert.Nil(t, err)

		encoded, err := rb.encode(want)
		assert.Nil(t, err)
		assert.Equal(t, len(want), len(encoded))

		// LRANGE hands the elements back as strings
		raw := make([]string, 0, len(encoded))
		for _, element := range encoded {
			data, ok := element.([]byte)
			assert.True(t, ok)

			raw = append(raw, string(data))
		}

		got, err := rb.decode(raw)
		assert.Nil(t, err)
		assert.Equal(t, len(want), len(got))
		assert.Equal(t, 1.0, got[0])
		assert.True(t, math.IsNaN(got[1]))
		assert.True(t, math.IsInf(got[2], -1))
		assert.Equal(t, -0.5, got[3])
	}
}

func TestRedis_DefaultEncodingFloat32(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	rb, err := NewRedis(WithRedisClient[float32](client))
	assert.Nil(t, err)

	encoded, err := rb.encode([]float32{0.1, float32(math.NaN())})
	assert.Nil(t, err)

	got, err := rb.decode([]string{string(encoded[0].([]byte)), string(encoded[1].([]byte))})
	assert.Nil(t, err)
	assert.Equal(t, float32(0.1), got[0])
	assert.True(t, math.IsNaN(float64(got[1])))
}

// newTestRedis connects to NUMSTATS_REDIS_ADDR and skips the test when it is unset.
func newTestRedis(t *testing.T, capacity int) *Redis[float64] {
	t.Helper()

	addr := os.Getenv("NUMSTATS_REDIS_ADDR")
	if addr == "" {
		t.Skip("NUMSTATS_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	rb, err := NewRedis(
		WithRedisClient[float64](client),
		WithCapacity[Redis[float64]](capacity),
		WithKeysSetName[float64]("numstats-test"),
		WithKeyPrefix[float64]("numstats-test:"),
	)
	assert.Nil(t, err)

	ctx := context.Background()
	assert.Nil(t, rb.Clear(ctx))
	t.Cleanup(func() { _ = rb.Clear(ctx) })

	return rb
}

func TestRedis_AppendAndSamples(t *testing.T) {
	rb := newTestRedis(t, 0)
	ctx := context.Background()

	assert.Nil(t, rb.Append(ctx, "latency", 1, math.NaN(), 2, 4))

	values, err := rb.Samples(ctx, "latency")
	assert.Nil(t, err)
	assert.Equal(t, 4, len(values))
	assert.True(t, math.IsNaN(values[1]))
	assert.Equal(t, 4.0, values[3])

	_, err = rb.Samples(ctx, "missing")
	assert.True(t, errors.Is(err, sentinel.ErrSeriesNotFound))
}

func TestRedis_CapacityListRemove(t *testing.T) {
	rb := newTestRedis(t, 2)
	ctx := context.Background()

	assert.Nil(t, rb.Append(ctx, "b", 1, 2, 3))
	assert.Nil(t, rb.Append(ctx, "a", 1))

	values, err := rb.Samples(ctx, "b")
	assert.Nil(t, err)
	assert.Equal(t, []float64{2, 3}, values)

	names, err := rb.List(ctx)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, 2, rb.Count(ctx))

	assert.Nil(t, rb.Remove(ctx, "a"))
	assert.Equal(t, 1, rb.Count(ctx))
}
