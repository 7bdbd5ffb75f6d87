package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tswizard/errs"
	"github.com/sartorproj/tswizard/timeseries"
)

func TestCheckStationarity(t *testing.T) {
	series := stationarySeries(100)
	series.Name = "load"

	var buf bytes.Buffer
	report, err := CheckStationarity(series, &CheckOptions{
		Window:  12,
		Verbose: true,
		Writer:  &buf,
	})
	require.NoError(t, err)

	require.NotNil(t, report.ADF)
	require.Equal(t, report.ADF.IsStationary, report.Stationary)

	// Rolling companions align to the end of each window.
	require.Equal(t, series.Len()-11, report.RollingMean.Len())
	require.Equal(t, series.Len()-11, report.RollingStd.Len())

	out := buf.String()
	require.Contains(t, out, "Observations of ADF Test (load)")
	require.Contains(t, out, "ADF Statistics")
	require.Contains(t, out, "p-value")
	require.Contains(t, out, "Critical Values")
	require.Contains(t, out, "Data is")
}

func TestCheckStationarityQuiet(t *testing.T) {
	var buf bytes.Buffer
	_, err := CheckStationarity(stationarySeries(100), &CheckOptions{
		Window:  6,
		Verbose: false,
		Writer:  &buf,
	})
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestCheckStationarityShort(t *testing.T) {
	_, err := CheckStationarity(timeseries.New([]float64{1, 2, 3}), nil)
	require.ErrorIs(t, err, errs.ErrShortSeries)
}
