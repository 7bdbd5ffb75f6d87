package forecast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tswizard/errs"
)

func TestMovingAverageForecast(t *testing.T) {
	ma := NewMovingAverage(4, 5)
	require.NoError(t, ma.Fit([]float64{12, 7, 27, 34}))
	require.Zero(t, ma.Truncated())

	values, err := ma.Forecast()
	require.NoError(t, err)

	// Recursion by hand:
	// [12 7 27 34]        -> 20
	// [7 27 34 20]        -> 22
	// [27 34 20 22]       -> 25.75
	// [34 20 22 25.75]    -> 25.4375
	// [20 22 25.75 25.4375] -> 23.296875
	want := []float64{20, 22, 25.75, 25.4375, 23.296875}
	require.InDeltaSlice(t, want, values, 1e-10)
}

func TestMovingAverageConstantSeries(t *testing.T) {
	ma := NewMovingAverage(3, 4)
	require.NoError(t, ma.Fit([]float64{5, 5, 5}))

	values, err := ma.Forecast()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{5, 5, 5, 5}, values, 1e-10)
}

func TestMovingAverageTruncation(t *testing.T) {
	ma := NewMovingAverage(2, 1)
	require.NoError(t, ma.Fit([]float64{100, 200, 3, 5}))
	require.Equal(t, 2, ma.Truncated())

	values, err := ma.Forecast()
	require.NoError(t, err)
	// Only the last two observations survive.
	require.InDeltaSlice(t, []float64{4}, values, 1e-10)
}

func TestMovingAverageFitErrors(t *testing.T) {
	require.ErrorIs(t, NewMovingAverage(0, 1).Fit([]float64{1, 2}), errs.ErrInvalidParameter)
	require.ErrorIs(t, NewMovingAverage(2, 0).Fit([]float64{1, 2}), errs.ErrInvalidParameter)
	require.ErrorIs(t, NewMovingAverage(-1, 2).Fit([]float64{1, 2}), errs.ErrInvalidParameter)
	require.ErrorIs(t, NewMovingAverage(3, 1).Fit([]float64{1, 2}), errs.ErrShortSeries)
}

func TestMovingAverageUnfitted(t *testing.T) {
	ma := NewMovingAverage(2, 1)

	_, err := ma.Forecast()
	require.ErrorIs(t, err, errs.ErrInvalidParameter)

	_, err = ma.ForecastExponential(0.5)
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestForecastExponential(t *testing.T) {
	ma := NewMovingAverage(3, 2)
	require.NoError(t, ma.Fit([]float64{1, 2, 4}))

	values, err := ma.ForecastExponential(0.5)
	require.NoError(t, err)

	// Weights oldest-first: [0.125, 0.25, 0.5].
	// Step 1: 0.125*1 + 0.25*2 + 0.5*4 = 2.625
	// Step 2: 0.125*2 + 0.25*4 + 0.5*2.625 = 2.5625
	require.InDeltaSlice(t, []float64{2.625, 2.5625}, values, 1e-10)
}

func TestForecastExponentialFactorRange(t *testing.T) {
	ma := NewMovingAverage(2, 1)
	require.NoError(t, ma.Fit([]float64{1, 2}))

	for _, factor := range []float64{0, -0.5, 1.5} {
		_, err := ma.ForecastExponential(factor)
		require.ErrorIs(t, err, errs.ErrInvalidParameter, "factor %v", factor)
	}
}

func TestFitDoesNotAliasInput(t *testing.T) {
	series := []float64{1, 2, 3}
	ma := NewMovingAverage(3, 1)
	require.NoError(t, ma.Fit(series))

	series[0] = 99
	values, err := ma.Forecast()
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2}, values, 1e-10)
}
