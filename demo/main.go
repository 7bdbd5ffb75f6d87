// Package main walks through the tswizard surface with a synthetic series:
// sequence windowing, grouped aggregation, stationarity testing, and a
// moving-average baseline forecast.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/sartorproj/tswizard/aggregate"
	"github.com/sartorproj/tswizard/forecast"
	"github.com/sartorproj/tswizard/stats"
	"github.com/sartorproj/tswizard/timeseries"
	"github.com/sartorproj/tswizard/window"
)

func main() {
	series := syntheticLoad(240)

	section("Sequence Windowing")
	windowing(series)

	section("Grouped Aggregation")
	grouping()

	section("Stationarity")
	stationarity(series)

	section("Moving-Average Forecast")
	baseline(series)
}

// syntheticLoad builds a daily-load-like series: level, weekly swing,
// mild trend, deterministic noise.
func syntheticLoad(n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = 800 +
			float64(i)*0.4 +
			60*math.Sin(2*math.Pi*float64(i)/7) +
			float64((i*13)%17-8)
	}
	s := timeseries.New(values)
	s.Name = "load"
	return s
}

func windowing(series *timeseries.Series) {
	w := window.NewWindower(24, 6)
	pairs, err := w.SlideSeries(series)
	if err != nil {
		fail(err)
	}

	fmt.Printf("series length       : %d\n", series.Len())
	fmt.Printf("lookback / forecast : %d / %d\n", w.NLookback, w.NForecast)
	fmt.Printf("window pairs        : %d (Count says %d)\n", len(pairs), w.Count(series.Len()))
	fmt.Printf("first pair input    : %.1f ...\n", pairs[0].Input[:4])
	fmt.Printf("first pair target   : %.1f\n", pairs[0].Target)

	// The lazy iterator covers the same ground without materializing
	// every pair up front.
	seq, err := w.WithStride(24).Pairs(series.Values)
	if err != nil {
		fail(err)
	}
	count := 0
	for range seq {
		count++
	}
	fmt.Printf("stride-24 pairs     : %d\n", count)
}

func grouping() {
	frame, err := timeseries.NewFrame(
		[]string{"sales"},
		[][]float64{{120}, {95}, {143}, {210}, {187}, {102}, {96}, {250}},
	)
	if err != nil {
		fail(err)
	}
	err = frame.SetLabels("region", []string{"north", "south", "north", "east", "east", "south", "south", "east"})
	if err != nil {
		fail(err)
	}

	grouped, err := aggregate.GroupBy(frame, "region")
	if err != nil {
		fail(err)
	}
	summary, err := grouped.Agg("sales",
		aggregate.SumAgg(),
		aggregate.MeanAgg(),
		aggregate.PercentileAgg(50, ""),
		aggregate.PercentileAgg(90, "").Rename("p90"),
	)
	if err != nil {
		fail(err)
	}

	keys, _ := summary.LabelColumn("region")
	fmt.Printf("%-8s %10s %10s %10s %10s\n", "region", "sum", "mean", "Q50.00", "p90")
	for i, key := range keys {
		row := summary.Data[i]
		fmt.Printf("%-8s %10.1f %10.1f %10.1f %10.1f\n", key, row[0], row[1], row[2], row[3])
	}
}

func stationarity(series *timeseries.Series) {
	report, err := stats.CheckStationarity(series, nil)
	if err != nil {
		fail(err)
	}

	d := stats.NDiffs(series, 2, "kpss")
	fmt.Printf("suggested differences: %d\n", d)

	if !report.Stationary && d > 0 {
		diffed := series.Diff()
		result, err := stats.KPSS(diffed, "c", 0)
		if err != nil {
			fail(err)
		}
		fmt.Printf("KPSS after 1 diff    : stat=%.4f stationary=%v\n",
			result.Statistic, result.IsStationary)
	}
}

func baseline(series *timeseries.Series) {
	ma := forecast.NewMovingAverage(14, 7)
	if err := ma.Fit(series.Values); err != nil {
		fail(err)
	}

	simple, err := ma.Forecast()
	if err != nil {
		fail(err)
	}
	weighted, err := ma.ForecastExponential(0.5)
	if err != nil {
		fail(err)
	}

	fmt.Printf("dropped observations : %d\n", ma.Truncated())
	fmt.Printf("simple MA forecast   : %.1f\n", simple)
	fmt.Printf("exponential forecast : %.1f\n", weighted)
}

func section(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "demo:", err)
	os.Exit(1)
}
