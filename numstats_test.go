package numstats_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/numstats"
	"github.com/hyp3rd/numstats/internal/constants"
	"github.com/hyp3rd/numstats/internal/sentinel"
	"github.com/hyp3rd/numstats/pkg/backend"
	"github.com/hyp3rd/numstats/pkg/stats/statstest"
)

func TestMonitor_RecordAndSummarize(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	defer monitor.Stop(ctx)

	assert.Nil(t, monitor.Record(ctx, "rtt", 1, math.NaN(), 2))
	assert.Nil(t, monitor.Record(ctx, "rtt", 4))

	values, err := monitor.Samples(ctx, "rtt")
	assert.Nil(t, err)
	assert.Equal(t, 4, len(values))
	assert.True(t, math.IsNaN(values[1]))

	all, err := monitor.Summarize(ctx, "rtt")
	assert.Nil(t, err)
	assert.True(t, all.Defined())
	assert.Equal(t, 1.0, all.Min)
	assert.Equal(t, 4.0, all.Max)
	statstest.AssertApproxEqual(t, 2.3333333333333335, all.Average)
	statstest.AssertApproxEqual(t, 2.333333333333333, all.Variance)
	statstest.AssertApproxEqual(t, 1.5275252316519465, all.StandardDeviation)
}

func TestMonitor_Float32(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float32](ctx, 0)
	assert.Nil(t, err)

	assert.Nil(t, monitor.Record(ctx, "rtt", 1, 2, 4))

	all, err := monitor.Summarize(ctx, "rtt")
	assert.Nil(t, err)
	assert.Equal(t, "min: 1.0\nmax: 4.0\naverage: 2.3333333\nvariance: 2.3333335\nstandard deviation: 1.5275253\n", all.String())
}

func TestMonitor_AllNaNSeriesIsUndefined(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	assert.Nil(t, monitor.Record(ctx, "gaps", math.NaN(), math.NaN()))

	all, err := monitor.Summarize(ctx, "gaps")
	assert.Nil(t, err)
	assert.False(t, all.Defined())
	statstest.AssertNaN(t, all.Min)
	statstest.AssertNaN(t, all.StandardDeviation)
}

func TestMonitor_SingleSample(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	assert.Nil(t, monitor.Record(ctx, "one", 7))

	all, err := monitor.Summarize(ctx, "one")
	assert.Nil(t, err)
	assert.Equal(t, 7.0, all.Average)
	assert.Equal(t, 0.0, all.Variance)
	assert.Equal(t, 0.0, all.StandardDeviation)
}

func TestMonitor_Errors(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	_, err = monitor.Summarize(ctx, "missing")
	assert.True(t, errors.Is(err, sentinel.ErrSeriesNotFound))

	err = monitor.Record(ctx, "  ", 1)
	assert.True(t, errors.Is(err, sentinel.ErrInvalidSeries))

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	err = monitor.Record(canceled, "rtt", 1)
	assert.True(t, errors.Is(err, sentinel.ErrTimeoutOrCanceled))
}

func TestMonitor_Capacity(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 2)
	assert.Nil(t, err)
	assert.Equal(t, 2, monitor.Capacity())

	assert.Nil(t, monitor.Record(ctx, "rtt", 1, 2, 3))

	values, err := monitor.Samples(ctx, "rtt")
	assert.Nil(t, err)
	assert.Equal(t, []float64{2, 3}, values)

	_, err = numstats.NewInMemoryWithDefaults[float64](ctx, -1)
	assert.True(t, errors.Is(err, sentinel.ErrInvalidCapacity))
}

func TestMonitor_SummarizeMany(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	assert.Nil(t, monitor.Record(ctx, "a", 1, 3))
	assert.Nil(t, monitor.Record(ctx, "b", 10))

	res, failed := monitor.SummarizeMany(ctx, "a", "b", "c")
	assert.Equal(t, 2, len(res))
	assert.Equal(t, 1, len(failed))
	assert.Equal(t, 2.0, res["a"].Average)
	assert.Equal(t, 10.0, res["b"].Max)
	assert.True(t, errors.Is(failed["c"], sentinel.ErrSeriesNotFound))
}

func TestMonitor_SummarizeManySequential(t *testing.T) {
	ctx := context.Background()

	inm, err := backend.NewInMemory[float64]()
	assert.Nil(t, err)

	monitor, err := numstats.NewWithBackend(ctx, backend.IBackend[float64](inm), numstats.WithSummaryWorkers[float64](0))
	assert.Nil(t, err)

	assert.Nil(t, monitor.Record(ctx, "a", 2, 4))

	res, failed := monitor.SummarizeMany(ctx, "a", "missing")
	assert.Equal(t, 3.0, res["a"].Average)
	assert.True(t, errors.Is(failed["missing"], sentinel.ErrSeriesNotFound))

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	res, failed = monitor.SummarizeMany(canceled, "a")
	assert.Equal(t, 0, len(res))
	assert.True(t, errors.Is(failed["a"], sentinel.ErrTimeoutOrCanceled))
}

func TestMonitor_SummarizeManyConcurrent(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	names := make([]string, 0, 50)

	for i := range 50 {
		name := fmt.Sprintf("series-%02d", i)
		names = append(names, name)
		assert.Nil(t, monitor.Record(ctx, name, float64(i), float64(i+2)))
	}

	res, failed := monitor.SummarizeMany(ctx, names...)
	assert.Equal(t, 50, len(res))
	assert.Equal(t, 0, len(failed))
	assert.Equal(t, 11.0, res["series-10"].Average)
}

func TestMonitor_ListRemoveClear(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	for _, name := range []string{"c", "a", "b"} {
		assert.Nil(t, monitor.Record(ctx, name, 1))
	}

	names, err := monitor.List(ctx)
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 3, monitor.Count(ctx))

	assert.Nil(t, monitor.Remove(ctx, "b"))
	assert.Equal(t, 2, monitor.Count(ctx))

	assert.Nil(t, monitor.Clear(ctx))
	assert.Equal(t, 0, monitor.Count(ctx))
}

func TestNew_Config(t *testing.T) {
	ctx := context.Background()

	cfg := numstats.NewConfig[float64]("")
	assert.Equal(t, constants.InMemoryBackend, cfg.BackendType)

	cfg.InMemoryOptions = append(cfg.InMemoryOptions,
		backend.WithCapacity[backend.InMemory[float64]](8),
		backend.WithShardCount[float64](4),
	)

	monitor, err := numstats.New(ctx, numstats.NewBackendManager[float64](), cfg)
	assert.Nil(t, err)
	assert.Equal(t, 8, monitor.Capacity())
	assert.Equal(t, "", monitor.ManagementHTTPAddress())
}

func TestNew_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := numstats.New(ctx, nil, numstats.NewConfig[float64](""))
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))

	_, err = numstats.New[float64](ctx, numstats.NewBackendManager[float64](), nil)
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))

	_, err = numstats.New(ctx, numstats.NewEmptyBackendManager[float64](), numstats.NewConfig[float64](""))
	assert.True(t, errors.Is(err, sentinel.ErrBackendNotFound))

	_, err = numstats.New(ctx, numstats.NewBackendManager[float64](), numstats.NewConfig[float64](constants.RedisBackend))
	assert.True(t, errors.Is(err, sentinel.ErrNilClient))

	_, err = numstats.NewWithBackend[float64](ctx, nil)
	assert.True(t, errors.Is(err, sentinel.ErrParamCannotBeEmpty))
}

type fixedBackend struct {
	backend.IBackend[float64]
}

type fixedConstructor struct{}

func (fixedConstructor) Create(_ context.Context, _ *numstats.Config[float64]) (backend.IBackend[float64], error) {
	inm, err := backend.NewInMemory[float64]()
	if err != nil {
		return nil, err
	}

	return fixedBackend{IBackend: inm}, nil
}

func TestBackendManager_RegisterBackend(t *testing.T) {
	ctx := context.Background()

	manager := numstats.NewEmptyBackendManager[float64]()
	manager.RegisterBackend("fixed", fixedConstructor{})

	monitor, err := numstats.New(ctx, manager, numstats.NewConfig[float64]("fixed"))
	assert.Nil(t, err)

	assert.Nil(t, monitor.Record(ctx, "rtt", 2, 4))

	all, err := monitor.Summarize(ctx, "rtt")
	assert.Nil(t, err)
	assert.Equal(t, 3.0, all.Average)
}

type countingService struct {
	numstats.Service[float64]

	calls *int
}

func (s countingService) Record(ctx context.Context, series string, values ...float64) error {
	*s.calls++

	return s.Service.Record(ctx, series, values...)
}

func TestApplyMiddleware_Order(t *testing.T) {
	ctx := context.Background()

	monitor, err := numstats.NewInMemoryWithDefaults[float64](ctx, 0)
	assert.Nil(t, err)

	var calls int

	var order []string

	wrap := func(name string) numstats.Middleware[float64] {
		return func(next numstats.Service[float64]) numstats.Service[float64] {
			order = append(order, name)

			return countingService{Service: next, calls: &calls}
		}
	}

	svc := numstats.ApplyMiddleware[float64](monitor, wrap("first"), wrap("second"))
	assert.Nil(t, svc.Record(ctx, "rtt", 1))
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 2, calls)

	all, err := svc.Summarize(ctx, "rtt")
	assert.Nil(t, err)
	assert.Equal(t, 1.0, all.Min)
}

var _ numstats.Service[float32] = (*numstats.Monitor[float32])(nil)

