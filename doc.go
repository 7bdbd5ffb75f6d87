// Package tswizard provides time series feature engineering and statistics utilities.
//
// TSWizard is a small Go library for preparing time series data for analysis
// and supervised learning: lookback/forecast sequence windowing, grouped
// percentile and quantile aggregation, stationarity testing, rolling-window
// helpers, and simple moving-average baseline forecasts.
//
// # Features
//
//   - Sequence windowing for supervised sequence models (lookback/forecast pairs)
//   - Percentile and quantile estimation with selectable interpolation methods
//   - Grouped aggregation over labeled feature tables
//   - Stationarity tests (ADF, KPSS) with a verbose check-and-report helper
//   - Rolling application of arbitrary functions with short-window padding
//   - Outlier detection (IQR rule, z-score)
//   - Moving-average baseline forecasters (simple, exponential)
//
// # Quick Start
//
// Window a series for model training:
//
//	w := window.NewWindower(24, 6) // 24 steps in, 6 steps out
//	pairs, _ := w.Slide(values)
//	for _, p := range pairs {
//	    train(p.Input, p.Target)
//	}
//
// Compute grouped percentiles:
//
//	grouped, _ := aggregate.GroupBy(frame, "region")
//	summary, _ := grouped.Agg("sales", aggregate.PercentileAgg(50, ""))
//
// Check stationarity:
//
//	report, _ := stats.CheckStationarity(series, nil)
//	if !report.Stationary {
//	    d := stats.NDiffs(series, 2, "kpss")
//	    // difference d times before modeling
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Series and Frame data structures, CSV I/O
//   - window: sequence windowing and rolling helpers
//   - aggregate: percentile/quantile estimation and grouped aggregation
//   - stats: stationarity tests, differencing analysis, outlier masks
//   - forecast: moving-average baseline forecasters
//   - errs: shared sentinel errors
package tswizard
