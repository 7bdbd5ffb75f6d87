package aggregate

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tswizard/errs"
)

// AggFunc reduces a group of values to a single number.
type AggFunc func([]float64) float64

// Quantile estimation methods, following numpy's naming. Linear is the
// default and matches numpy's default percentile behavior.
const (
	MethodLinear   = "linear"
	MethodLower    = "lower"
	MethodHigher   = "higher"
	MethodNearest  = "nearest"
	MethodMidpoint = "midpoint"
)

// Percentile computes the n-th percentile of the values, n in [0, 100].
// An empty method selects linear interpolation.
func Percentile(values []float64, n float64, method string) (float64, error) {
	if n < 0 || n > 100 || math.IsNaN(n) {
		return 0, fmt.Errorf("aggregate: percentile %v outside [0, 100]: %w",
			n, errs.ErrInvalidParameter)
	}
	return Quantile(values, n/100, method)
}

// Quantile computes the q-th quantile of the values, q in [0, 1].
// An empty method selects linear interpolation.
func Quantile(values []float64, q float64, method string) (float64, error) {
	if q < 0 || q > 1 || math.IsNaN(q) {
		return 0, fmt.Errorf("aggregate: quantile %v outside [0, 1]: %w",
			q, errs.ErrInvalidParameter)
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("aggregate: quantile of empty input: %w", errs.ErrShortSeries)
	}
	if method == "" {
		method = MethodLinear
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	// Index of the quantile among the order statistics.
	h := q * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))

	switch method {
	case MethodLinear:
		return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo]), nil
	case MethodLower:
		return sorted[lo], nil
	case MethodHigher:
		return sorted[hi], nil
	case MethodNearest:
		return sorted[int(math.Round(h))], nil
	case MethodMidpoint:
		return (sorted[lo] + sorted[hi]) / 2, nil
	default:
		return 0, fmt.Errorf("aggregate: unknown quantile method %q: %w",
			method, errs.ErrInvalidParameter)
	}
}

// Sum returns the sum of the values.
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Mean returns the arithmetic mean, or NaN for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// Median returns the median, or NaN for empty input.
func Median(values []float64) float64 {
	v, err := Quantile(values, 0.5, MethodLinear)
	if err != nil {
		return math.NaN()
	}
	return v
}

// NamedAgg pairs an aggregation function with the output column name
// it produces under Grouped.Agg.
type NamedAgg struct {
	Name string
	Fn   AggFunc

	err error
}

// Named wraps an arbitrary aggregation function with an output name.
func Named(name string, fn AggFunc) NamedAgg {
	if fn == nil {
		return NamedAgg{Name: name, err: fmt.Errorf(
			"aggregate: nil aggregation %q: %w", name, errs.ErrInvalidParameter)}
	}
	return NamedAgg{Name: name, Fn: fn}
}

// PercentileAgg curries Percentile for use under Grouped.Agg. The
// output column is named QNN.NN; use Rename to override.
func PercentileAgg(n float64, method string) NamedAgg {
	agg := NamedAgg{
		Name: fmt.Sprintf("Q%.2f", n),
		Fn: func(values []float64) float64 {
			v, err := Percentile(values, n, method)
			if err != nil {
				return math.NaN()
			}
			return v
		},
	}
	if _, err := Percentile([]float64{0}, n, method); err != nil {
		agg.err = err
	}
	return agg
}

// QuantileAgg curries Quantile for use under Grouped.Agg.
func QuantileAgg(q float64, method string) NamedAgg {
	agg := NamedAgg{
		Name: fmt.Sprintf("Q%.2f", q),
		Fn: func(values []float64) float64 {
			v, err := Quantile(values, q, method)
			if err != nil {
				return math.NaN()
			}
			return v
		},
	}
	if _, err := Quantile([]float64{0}, q, method); err != nil {
		agg.err = err
	}
	return agg
}

// SumAgg curries Sum for use under Grouped.Agg.
func SumAgg() NamedAgg { return NamedAgg{Name: "sum", Fn: Sum} }

// MeanAgg curries Mean for use under Grouped.Agg.
func MeanAgg() NamedAgg { return NamedAgg{Name: "mean", Fn: Mean} }

// MedianAgg curries Median for use under Grouped.Agg.
func MedianAgg() NamedAgg { return NamedAgg{Name: "median", Fn: Median} }

// Rename sets the output column name of the aggregation.
func (a NamedAgg) Rename(name string) NamedAgg {
	a.Name = name
	return a
}
