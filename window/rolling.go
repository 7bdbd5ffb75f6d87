package window

import (
	"fmt"
	"math"
	"slices"

	"github.com/sartorproj/tswizard/errs"
)

// AggFunc reduces one window of values to a single number.
type AggFunc func([]float64) float64

// Rolling applies fn over every full window of the values and returns
// a result aligned to the input length: positions before the first
// full window are NaN. This keeps the output directly assignable as a
// derived feature column.
func Rolling(values []float64, size int, fn AggFunc) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window: rolling size must be positive, got %d: %w",
			size, errs.ErrInvalidParameter)
	}
	if fn == nil {
		return nil, fmt.Errorf("window: rolling function is nil: %w", errs.ErrInvalidParameter)
	}

	out := make([]float64, len(values))
	for i := range out {
		if i+1 < size {
			out[i] = math.NaN()
			continue
		}
		out[i] = fn(values[i+1-size : i+1])
	}
	return out, nil
}

// Weights builds a geometric decay weight series for weighted moving
// averages: initial, initial/rate, initial/rate^2, and so on. With
// decay set the series is reversed so the heaviest weight lands on the
// most recent observation of an ascending-ordered window.
func Weights(initial, rate float64, length int, decay bool) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("window: weights length must be positive, got %d: %w",
			length, errs.ErrInvalidParameter)
	}
	if rate == 0 {
		return nil, fmt.Errorf("window: weights rate must be non-zero: %w", errs.ErrInvalidParameter)
	}

	factors := make([]float64, length)
	factors[0] = initial
	for i := 1; i < length; i++ {
		factors[i] = factors[i-1] / rate
	}

	if decay {
		slices.Reverse(factors)
	}
	return factors, nil
}

// WeightedMean reduces a window with per-position weights. The usual
// pairing is Weights for the factors and Rolling for the sweep:
//
//	factors, _ := window.Weights(0.5, 2, 3, true)
//	wma, _ := window.Rolling(values, 3, func(win []float64) float64 {
//	    return window.WeightedMean(win, factors)
//	})
func WeightedMean(values, weights []float64) float64 {
	if len(values) != len(weights) {
		return math.NaN()
	}
	sum := 0.0
	for i, v := range values {
		sum += v * weights[i]
	}
	return sum
}
