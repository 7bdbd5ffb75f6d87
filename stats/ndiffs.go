package stats

import "github.com/sartorproj/tswizard/timeseries"

// NDiffs determines the number of first differences required to make
// the series stationary, between 0 and maxD (default 2). testType
// selects the test: "kpss" (default) or "adf". A series too short to
// test is reported as needing no further differencing.
func NDiffs(series *timeseries.Series, maxD int, testType string) int {
	if maxD <= 0 {
		maxD = 2
	}
	if testType == "" {
		testType = "kpss"
	}

	current := series
	for d := 0; d < maxD; d++ {
		stationary := false
		if testType == "adf" {
			result, err := ADF(current, 0)
			stationary = err == nil && result.IsStationary
		} else {
			result, err := KPSS(current, "c", 0)
			stationary = err == nil && result.IsStationary
		}
		if stationary {
			return d
		}

		current = current.Diff()
		if current.Len() < minObservations {
			return d
		}
	}

	return maxD
}
