// Package aggregate provides percentile/quantile estimation and grouped
// aggregation over labeled feature tables.
//
// # Percentiles and Quantiles
//
// Compute a percentile with a selectable estimation method:
//
//	p50, err := aggregate.Percentile(values, 50, "")          // linear (default)
//	p90, err := aggregate.Percentile(values, 90, aggregate.MethodNearest)
//	q75, err := aggregate.Quantile(values, 0.75, aggregate.MethodMidpoint)
//
// The method names follow numpy: linear, lower, higher, nearest,
// midpoint. Out-of-range probabilities and unknown methods fail with
// errs.ErrInvalidParameter; empty input fails with errs.ErrShortSeries.
//
// # Grouped Aggregation
//
// Partition a frame by a label column and reduce a value column per
// group, in the style of a groupby().agg() call:
//
//	grouped, _ := aggregate.GroupBy(frame, "region")
//	summary, _ := grouped.Agg("sales",
//	    aggregate.SumAgg(),
//	    aggregate.PercentileAgg(50, ""),
//	    aggregate.PercentileAgg(90, "").Rename("p90"),
//	)
//
// The result has one row per group in first-appearance order, one
// numeric column per aggregation, and the group keys as a label column.
//
// # Per-Group Transforms
//
// Apply runs a full-length transform per group and writes the result
// back as a derived column, for example an outlier mask per group:
//
//	flagged, _ := grouped.Apply("sales", outlierScore, "score")
package aggregate
