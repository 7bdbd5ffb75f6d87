// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"fmt"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tswizard/errs"
)

// Series represents a univariate time series. Timestamps are optional
// carried metadata: no operation in this library interprets them, and
// derived series inherit the aligned suffix of the parent's timestamps.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from values. Timestamps are left nil.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("timeseries: %d timestamps for %d values: %w",
			len(timestamps), len(values), errs.ErrShapeMismatch)
	}
	return &Series{Timestamps: timestamps, Values: values}, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the unbiased sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Std calculates the sample standard deviation of the series.
func (s *Series) Std() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.StdDev(s.Values, nil)
}

// Sum returns the sum of the series values.
func (s *Series) Sum() float64 {
	return floats.Sum(s.Values)
}

// Min returns the minimum value, or NaN for an empty series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the maximum value, or NaN for an empty series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Median returns the median value, or NaN for an empty series.
func (s *Series) Median() float64 {
	return s.Quantile(0.5)
}

// Quantile returns the q-th quantile (q in [0, 1]) using linear
// interpolation between order statistics. Returns NaN for an empty
// series or an out-of-range q.
func (s *Series) Quantile(q float64) float64 {
	if len(s.Values) == 0 || q < 0 || q > 1 {
		return math.NaN()
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)

	h := q * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// Diff calculates the first difference of the series.
func (s *Series) Diff() *Series {
	return s.DiffN(1)
}

// DiffN calculates the n-th order lag difference of the series. The
// result is n observations shorter; invalid n yields an empty series.
func (s *Series) DiffN(n int) *Series {
	if n <= 0 || len(s.Values) <= n {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, len(s.Values)-n)
	for i := n; i < len(s.Values); i++ {
		values[i-n] = s.Values[i] - s.Values[i-n]
	}

	return &Series{
		Timestamps: s.tailTimestamps(len(values)),
		Values:     values,
		Name:       s.derivedName("diff"),
	}
}

// Lag returns the series shifted back by k steps, aligned with the
// timestamps of the observations it predicts.
func (s *Series) Lag(k int) *Series {
	if k <= 0 || k >= len(s.Values) {
		return &Series{Values: []float64{}}
	}

	values := slices.Clone(s.Values[:len(s.Values)-k])
	return &Series{
		Timestamps: s.tailTimestamps(len(values)),
		Values:     values,
		Name:       s.derivedName("lag"),
	}
}

// Slice returns a copy of the series between start and end (exclusive).
// Out-of-range bounds are clamped.
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	out := &Series{
		Values: slices.Clone(s.Values[start:end]),
		Name:   s.Name,
	}
	if len(s.Timestamps) == len(s.Values) {
		out.Timestamps = slices.Clone(s.Timestamps[start:end])
	}
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	return &Series{
		Timestamps: slices.Clone(s.Timestamps),
		Values:     slices.Clone(s.Values),
		Name:       s.Name,
	}
}

// Log applies the natural logarithm. Non-positive values map to NaN.
func (s *Series) Log() *Series {
	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v > 0 {
			values[i] = math.Log(v)
		} else {
			values[i] = math.NaN()
		}
	}

	return &Series{
		Timestamps: slices.Clone(s.Timestamps),
		Values:     values,
		Name:       s.derivedName("log"),
	}
}

// Normalize standardizes the series to zero mean and unit variance.
// A constant series is returned unchanged.
func (s *Series) Normalize() *Series {
	mean := s.Mean()
	std := s.Std()
	if std == 0 {
		return s.Copy()
	}

	values := make([]float64, len(s.Values))
	for i, v := range s.Values {
		values[i] = (v - mean) / std
	}

	return &Series{
		Timestamps: slices.Clone(s.Timestamps),
		Values:     values,
		Name:       s.derivedName("normalized"),
	}
}

// MovingAverage calculates a simple moving average over the given
// window, aligned to the end of each window. The result is window-1
// observations shorter; invalid windows yield an empty series.
func (s *Series) MovingAverage(window int) *Series {
	if window <= 0 || window > len(s.Values) {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, len(s.Values)-window+1)
	sum := floats.Sum(s.Values[:window])
	values[0] = sum / float64(window)
	for i := window; i < len(s.Values); i++ {
		sum += s.Values[i] - s.Values[i-window]
		values[i-window+1] = sum / float64(window)
	}

	return &Series{
		Timestamps: s.tailTimestamps(len(values)),
		Values:     values,
		Name:       s.derivedName("ma"),
	}
}

// RollingStd calculates the sample standard deviation over the given
// window, aligned to the end of each window like MovingAverage.
func (s *Series) RollingStd(window int) *Series {
	if window <= 1 || window > len(s.Values) {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, len(s.Values)-window+1)
	for i := range values {
		values[i] = stat.StdDev(s.Values[i:i+window], nil)
	}

	return &Series{
		Timestamps: s.tailTimestamps(len(values)),
		Values:     values,
		Name:       s.derivedName("std"),
	}
}

// tailTimestamps returns the last n timestamps when the series carries
// a full timestamp axis, nil otherwise.
func (s *Series) tailTimestamps(n int) []time.Time {
	if len(s.Timestamps) != len(s.Values) || n > len(s.Timestamps) {
		return nil
	}
	return slices.Clone(s.Timestamps[len(s.Timestamps)-n:])
}

func (s *Series) derivedName(suffix string) string {
	if s.Name == "" {
		return ""
	}
	return s.Name + "_" + suffix
}
