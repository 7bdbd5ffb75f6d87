// Package stats provides statistical tests and analysis functions for time series.
//
// This package includes stationarity tests, differencing analysis, and
// outlier detection.
//
// # Stationarity Tests
//
// Test whether a time series is stationary:
//
//	// Augmented Dickey-Fuller test
//	// H0: Series has unit root (non-stationary)
//	adf, err := stats.ADF(series, 0)
//	fmt.Printf("ADF: stat=%.4f, p=%.4f, stationary=%v\n",
//	    adf.Statistic, adf.PValue, adf.IsStationary)
//
//	// KPSS test
//	// H0: Series is stationary
//	kpss, err := stats.KPSS(series, "c", 0)
//	fmt.Printf("KPSS: stat=%.4f, p=%.4f, stationary=%v\n",
//	    kpss.Statistic, kpss.PValue, kpss.IsStationary)
//
// CheckStationarity wraps ADF with a printed observation report and
// returns rolling mean/std companion series for plotting:
//
//	report, err := stats.CheckStationarity(series, nil)
//	// report.Stationary, report.RollingMean, report.RollingStd
//
// # Differencing Analysis
//
// Determine how many first differences a series needs:
//
//	d := stats.NDiffs(series, 2, "kpss")
//
// # Outlier Detection
//
// Flag univariate outliers:
//
//	// Interquartile fence (box-plot rule)
//	mask := stats.QuantileOutliers(values)
//
//	// Z-score threshold
//	mask = stats.ZScoreOutliers(values, 2.0)
package stats
