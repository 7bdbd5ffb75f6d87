package forecast

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tswizard/errs"
)

// MovingAverage is a recursive moving-average baseline forecaster. It
// holds the last NLookback observations and forecasts by repeatedly
// averaging the window and feeding the average back in as the newest
// observation.
type MovingAverage struct {
	NLookback int
	NForecast int

	series    []float64
	truncated int
	fitted    bool
}

// NewMovingAverage creates a forecaster that looks back nLookback
// periods and forecasts nForecast periods ahead.
func NewMovingAverage(nLookback, nForecast int) *MovingAverage {
	return &MovingAverage{NLookback: nLookback, NForecast: nForecast}
}

// Fit loads the series into the forecaster. A series longer than the
// lookback is truncated to its most recent values (Truncated reports
// how many observations were dropped); a shorter series is an error.
func (m *MovingAverage) Fit(series []float64) error {
	if m.NLookback <= 0 {
		return fmt.Errorf("forecast: lookback must be positive, got %d: %w",
			m.NLookback, errs.ErrInvalidParameter)
	}
	if m.NForecast <= 0 {
		return fmt.Errorf("forecast: forecast must be positive, got %d: %w",
			m.NForecast, errs.ErrInvalidParameter)
	}
	if len(series) < m.NLookback {
		return fmt.Errorf("forecast: %d observations for lookback %d: %w",
			len(series), m.NLookback, errs.ErrShortSeries)
	}

	m.truncated = len(series) - m.NLookback
	m.series = slices.Clone(series[m.truncated:])
	m.fitted = true
	return nil
}

// Truncated returns the number of observations dropped by Fit.
func (m *MovingAverage) Truncated() int {
	return m.truncated
}

// Forecast produces NForecast values by simple moving average: each
// step appends the window mean and drops the oldest value.
func (m *MovingAverage) Forecast() ([]float64, error) {
	if !m.fitted {
		return nil, fmt.Errorf("forecast: model is not fitted: %w", errs.ErrInvalidParameter)
	}

	window := slices.Clone(m.series)
	out := make([]float64, m.NForecast)
	for i := range out {
		mean := stat.Mean(window, nil)
		copy(window, window[1:])
		window[len(window)-1] = mean
		out[i] = mean
	}
	return out, nil
}

// ForecastExponential produces NForecast values with half-life decay
// weights factor, factor/2, factor/4, ... applied most-recent-first,
// using the same append-and-drop recursion as Forecast. factor must be
// in (0, 1].
func (m *MovingAverage) ForecastExponential(factor float64) ([]float64, error) {
	if !m.fitted {
		return nil, fmt.Errorf("forecast: model is not fitted: %w", errs.ErrInvalidParameter)
	}
	if factor <= 0 || factor > 1 {
		return nil, fmt.Errorf("forecast: factor %v outside (0, 1]: %w",
			factor, errs.ErrInvalidParameter)
	}

	// weights[i] applies to window[i]; the window is oldest-first, so
	// the undecayed factor lands on the newest observation.
	weights := make([]float64, m.NLookback)
	w := factor
	for i := m.NLookback - 1; i >= 0; i-- {
		weights[i] = w
		w /= 2
	}

	window := slices.Clone(m.series)
	out := make([]float64, m.NForecast)
	for i := range out {
		next := floats.Dot(window, weights)
		copy(window, window[1:])
		window[len(window)-1] = next
		out[i] = next
	}
	return out, nil
}
