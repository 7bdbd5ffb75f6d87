package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sartorproj/tswizard/timeseries"
)

// CheckOptions configures CheckStationarity.
type CheckOptions struct {
	MaxLag  int       // ADF lag order; 0 picks the default
	Window  int       // rolling window for the companion series (default 12)
	Verbose bool      // print the observation report
	Writer  io.Writer // report destination (default os.Stdout)
}

// DefaultCheckOptions returns the default check configuration.
func DefaultCheckOptions() *CheckOptions {
	return &CheckOptions{Window: 12, Verbose: true, Writer: os.Stdout}
}

// StationarityReport bundles an ADF verdict with rolling mean/std
// companion series for visual inspection of the same window.
type StationarityReport struct {
	ADF         *ADFResult
	Stationary  bool
	RollingMean *timeseries.Series
	RollingStd  *timeseries.Series
}

// CheckStationarity runs the ADF test on the series, optionally prints
// an observation report, and returns the rolling mean and standard
// deviation over the configured window so the caller can plot the
// series against its local level and spread.
func CheckStationarity(series *timeseries.Series, opts *CheckOptions) (*StationarityReport, error) {
	if opts == nil {
		opts = DefaultCheckOptions()
	}
	window := opts.Window
	if window <= 0 {
		window = 12
	}
	out := opts.Writer
	if out == nil {
		out = os.Stdout
	}

	result, err := ADF(series, opts.MaxLag)
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		name := series.Name
		if name == "" {
			name = "series"
		}
		fmt.Fprintf(out, "Observations of ADF Test (%s)\n", name)
		fmt.Fprintf(out, "===========================%s\n", strings.Repeat("=", len(name)))
		fmt.Fprintf(out, "ADF Statistics  : %.3f\n", result.Statistic)
		fmt.Fprintf(out, "p-value         : %.3f\n", result.PValue)
		fmt.Fprintf(out, "Critical Values : 1%%: %.3f, 5%%: %.3f, 10%%: %.3f\n",
			result.CriticalVals.Pct1, result.CriticalVals.Pct5, result.CriticalVals.Pct10)
		verdict := "Non-stationary"
		if result.IsStationary {
			verdict = "Stationary"
		}
		fmt.Fprintf(out, "Data is         : %s\n", verdict)
	}

	return &StationarityReport{
		ADF:         result,
		Stationary:  result.IsStationary,
		RollingMean: series.MovingAverage(window),
		RollingStd:  series.RollingStd(window),
	}, nil
}
