// Package forecast implements simple moving-average baseline forecasters.
//
// A moving average is the simplest time series model and a useful
// baseline before reaching for anything heavier. The forecaster keeps
// the last NLookback observations and forecasts recursively: each
// predicted value is appended to the window and the oldest value is
// dropped, so multi-step forecasts feed on their own output.
//
// # Basic Usage
//
//	ma := forecast.NewMovingAverage(4, 5)
//	if err := ma.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//	values, _ := ma.Forecast()
//
// A series longer than the lookback is truncated to its most recent
// values; Truncated reports how many observations were dropped. A
// shorter series fails with errs.ErrShortSeries.
//
// # Exponential Weighting
//
// ForecastExponential gives recent observations more weight using
// half-life decay factors:
//
//	values, _ := ma.ForecastExponential(0.5)
package forecast
