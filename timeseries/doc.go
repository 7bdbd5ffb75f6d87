// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for univariate time series and the
// Frame type for fixed-width numeric feature tables, along with CSV loading
// and saving.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// Timestamps are optional metadata; nothing in the library interprets them:
//
//	series, err := timeseries.NewWithTimestamps(timestamps, values)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//	q90 := series.Quantile(0.9)
//
// # Transformations
//
// Each transform returns a new series and leaves the source untouched:
//
//	diff := series.Diff()            // First difference
//	diff2 := series.DiffN(2)         // Second difference
//	lagged := series.Lag(1)          // Lag by one step
//	logged := series.Log()           // Natural log
//	normalized := series.Normalize() // Z-score normalization
//	ma := series.MovingAverage(12)   // Rolling mean
//	sd := series.RollingStd(12)      // Rolling standard deviation
//
// # Frames
//
// A Frame holds numeric feature columns plus optional string label columns
// used as grouping keys:
//
//	frame, _ := timeseries.NewFrame(
//	    []string{"temp", "load"},
//	    [][]float64{{21.5, 830}, {22.1, 845}},
//	)
//	frame.SetLabels("region", []string{"north", "south"})
//
//	X, y, _ := frame.SplitXY("load") // features and target
//
// # CSV
//
// Load and save data:
//
//	series, err := timeseries.LoadCSV("data.csv", nil)
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "population"
//	opts.DateColumn = "date"
//	series, err = timeseries.LoadCSV("data.csv", opts)
//
//	frame, err := timeseries.LoadFrameCSV("features.csv", nil)
package timeseries
