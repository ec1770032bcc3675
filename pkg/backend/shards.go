package backend

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/hyp3rd/numstats/pkg/stats"
)

// DefaultShardCount is the number of shards of the in-memory series map.
const DefaultShardCount = 32

// seriesMap is a concurrent map from series name to samples.
// To avoid lock bottlenecks the map is divided into shards selected by an xxhash of the name.
type seriesMap[F stats.Float] struct {
	shards []*seriesShard[F]
}

// seriesShard is a mutex-guarded partition of the series map.
type seriesShard[F stats.Float] struct {
	sync.RWMutex // guards access to series

	series map[string][]F
}

func newSeriesMap[F stats.Float](shardCount int) seriesMap[F] {
	m := seriesMap[F]{
		shards: make([]*seriesShard[F], shardCount),
	}
	for i := range shardCount {
		m.shards[i] = &seriesShard[F]{series: make(map[string][]F)}
	}

	return m
}

// shard returns the shard owning name.
func (m seriesMap[F]) shard(name string) *seriesShard[F] {
	return m.shards[xxhash.Sum64String(name)%uint64(len(m.shards))]
}

// appendTrim appends values to the series and trims it to capacity while holding the shard lock.
func (m seriesMap[F]) appendTrim(name string, capacity int, values []F) {
	shard := m.shard(name)
	shard.Lock()

	shard.series[name] = trim(append(shard.series[name], values...), capacity)
	shard.Unlock()
}

// snapshot returns a copy of the series samples.
func (m seriesMap[F]) snapshot(name string) ([]F, bool) {
	shard := m.shard(name)
	shard.RLock()
	defer shard.RUnlock()

	values, ok := shard.series[name]
	if !ok {
		return nil, false
	}

	out := make([]F, len(values))
	copy(out, values)

	return out, true
}

// keys returns the names of all series, unsorted.
func (m seriesMap[F]) keys() []string {
	var names []string

	for _, shard := range m.shards {
		shard.RLock()

		for name := range shard.series {
			names = append(names, name)
		}

		shard.RUnlock()
	}

	return names
}

// count returns the number of series.
func (m seriesMap[F]) count() int {
	n := 0

	for _, shard := range m.shards {
		shard.RLock()
		n += len(shard.series)
		shard.RUnlock()
	}

	return n
}

// remove deletes the series.
func (m seriesMap[F]) remove(name string) {
	shard := m.shard(name)
	shard.Lock()

	delete(shard.series, name)
	shard.Unlock()
}

// clear removes every series.
func (m seriesMap[F]) clear() {
	for _, shard := range m.shards {
		shard.Lock()
		clear(shard.series)
		shard.Unlock()
	}
}
