package numstats

import (
	"bytes"
	"context"
	"math"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/numstats/internal/sentinel"
	"github.com/hyp3rd/numstats/pkg/stats"
)

// Report is the JSON form of a series summary.
// Undefined statistics (NaN) and infinities are encoded as null, since JSON has no way to express them.
type Report struct {
	Series            string       `json:"series"`
	Samples           int          `json:"samples"`
	Valid             int          `json:"valid"`
	Min               *json.Number `json:"min"`
	Max               *json.Number `json:"max"`
	Average           *json.Number `json:"average"`
	Variance          *json.Number `json:"variance"`
	StandardDeviation *json.Number `json:"standard_deviation"`
}

// NewReport summarizes values and returns the JSON-safe report of the summary.
// Numbers are written with the shortest representation that round-trips in the width of F.
func NewReport[F stats.Float](series string, values []F) Report {
	return reportOf(series, values, stats.NewAll(values))
}

// reportOf builds the report of values from their already computed summary.
func reportOf[F stats.Float](series string, values []F, all stats.All[F]) Report {
	return Report{
		Series:            series,
		Samples:           len(values),
		Valid:             stats.Count(values),
		Min:               number(all.Min),
		Max:               number(all.Max),
		Average:           number(all.Average),
		Variance:          number(all.Variance),
		StandardDeviation: number(all.StandardDeviation),
	}
}

func number[F stats.Float](value F) *json.Number {
	v := float64(value)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	n := json.Number(strconv.FormatFloat(v, 'g', -1, stats.BitSize[F]()))

	return &n
}

// ParseSamples decodes a JSON array of numbers. A null entry is a missing
// measurement and becomes NaN. Numbers are parsed directly in the width of F.
// Any other entry, quoted numbers included, is rejected.
func ParseSamples[F stats.Float](data []byte) ([]F, error) {
	var raw []json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, ewrap.Wrap(sentinel.ErrInvalidSamples, err.Error())
	}

	if raw == nil {
		return nil, ewrap.Wrap(sentinel.ErrInvalidSamples, "expected a JSON array")
	}

	values := make([]F, len(raw))

	for i, entry := range raw {
		token := bytes.TrimSpace(entry)

		switch {
		case bytes.Equal(token, []byte("null")):
			values[i] = stats.NaN[F]()

			continue
		case !isNumberToken(token):
			return nil, ewrap.Wrapf(sentinel.ErrInvalidSamples, "entry %d: %s is not a number", i, token)
		}

		v, err := strconv.ParseFloat(string(token), stats.BitSize[F]())
		if err != nil {
			return nil, ewrap.Wrapf(sentinel.ErrInvalidSamples, "entry %d: %v", i, err)
		}

		values[i] = F(v)
	}

	return values, nil
}

// isNumberToken reports whether a JSON value token is a number literal.
func isNumberToken(token []byte) bool {
	return len(token) > 0 && (token[0] == '-' || (token[0] >= '0' && token[0] <= '9'))
}

// report reads one snapshot of the series and returns both its JSON report and its text rendering.
func (m *Monitor[F]) report(ctx context.Context, series string) (Report, string, error) {
	values, err := m.backend.Samples(ctx, series)
	if err != nil {
		return Report{}, "", err
	}

	all := stats.NewAll(values)

	return reportOf(series, values, all), all.String(), nil
}

// recordJSON decodes a JSON samples payload and records it.
func (m *Monitor[F]) recordJSON(ctx context.Context, series string, body []byte) (int, error) {
	values, err := ParseSamples[F](body)
	if err != nil {
		return 0, err
	}

	err = m.Record(ctx, series, values...)
	if err != nil {
		return 0, err
	}

	return len(values), nil
}
