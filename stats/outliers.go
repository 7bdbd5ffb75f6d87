package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/tswizard/aggregate"
)

// QuantileOutliers flags values outside the interquartile fence
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR], the box-plot rule for univariate
// outliers. Fewer than four values produce an all-false mask.
func QuantileOutliers(values []float64) []bool {
	mask := make([]bool, len(values))
	if len(values) < 4 {
		return mask
	}

	q1, err1 := aggregate.Quantile(values, 0.25, "")
	q3, err3 := aggregate.Quantile(values, 0.75, "")
	if err1 != nil || err3 != nil {
		return mask
	}

	iqr := q3 - q1
	lo, hi := q1-1.5*iqr, q3+1.5*iqr
	for i, v := range values {
		mask[i] = v < lo || v > hi
	}
	return mask
}

// ZScoreOutliers flags values whose absolute z-score exceeds thresh.
// A non-positive thresh falls back to the conventional 2.0. A constant
// series produces an all-false mask.
func ZScoreOutliers(values []float64, thresh float64) []bool {
	if thresh <= 0 {
		thresh = 2.0
	}

	mask := make([]bool, len(values))
	if len(values) < 2 {
		return mask
	}

	mean := stat.Mean(values, nil)
	std := stat.StdDev(values, nil)
	if std == 0 {
		return mask
	}

	for i, v := range values {
		mask[i] = math.Abs((v-mean)/std) > thresh
	}
	return mask
}
