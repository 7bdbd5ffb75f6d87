package timeseries

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tswizard/errs"
)

func TestNewFrame(t *testing.T) {
	frame, err := NewFrame(
		[]string{"a", "b"},
		[][]float64{{1, 2}, {3, 4}, {5, 6}},
	)
	require.NoError(t, err)
	require.Equal(t, 3, frame.Rows())

	_, err = NewFrame([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestFrameColumn(t *testing.T) {
	frame, err := NewFrame(
		[]string{"a", "b"},
		[][]float64{{1, 2}, {3, 4}, {5, 6}},
	)
	require.NoError(t, err)

	col, err := frame.Column("b")
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6}, col)

	_, err = frame.Column("missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)

	s, err := frame.Series("a")
	require.NoError(t, err)
	require.Equal(t, "a", s.Name)
	require.Equal(t, []float64{1, 3, 5}, s.Values)
}

func TestFrameLabels(t *testing.T) {
	frame, err := NewFrame([]string{"v"}, [][]float64{{1}, {2}, {3}})
	require.NoError(t, err)

	require.ErrorIs(t, frame.SetLabels("g", []string{"x"}), errs.ErrShapeMismatch)
	require.NoError(t, frame.SetLabels("g", []string{"x", "y", "x"}))

	labels, err := frame.LabelColumn("g")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y", "x"}, labels)

	_, err = frame.LabelColumn("missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestFrameAddColumn(t *testing.T) {
	frame, err := NewFrame([]string{"v"}, [][]float64{{1}, {2}})
	require.NoError(t, err)

	require.ErrorIs(t, frame.AddColumn("w", []float64{1}), errs.ErrShapeMismatch)
	require.NoError(t, frame.AddColumn("w", []float64{10, 20}))
	require.Equal(t, []string{"v", "w"}, frame.Columns)
	require.Equal(t, []float64{2, 20}, frame.Data[1])
}

func TestFrameSplitXY(t *testing.T) {
	frame, err := NewFrame(
		[]string{"a", "b", "y"},
		[][]float64{{1, 2, 10}, {3, 4, 20}},
	)
	require.NoError(t, err)

	// Default target is the last column.
	x, y, err := frame.SplitXY("")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, x)
	require.Equal(t, []float64{10, 20}, y)

	// Target from the middle of the row.
	x, y, err = frame.SplitXY("b")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 10}, {3, 20}}, x)
	require.Equal(t, []float64{2, 4}, y)

	_, _, err = frame.SplitXY("missing")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}

func TestFrameCopy(t *testing.T) {
	frame, err := NewFrame([]string{"v"}, [][]float64{{1}, {2}})
	require.NoError(t, err)
	require.NoError(t, frame.SetLabels("g", []string{"a", "b"}))

	c := frame.Copy()
	c.Data[0][0] = 99
	c.Labels["g"][0] = "z"

	require.Equal(t, 1.0, frame.Data[0][0])
	require.Equal(t, "a", frame.Labels["g"][0])
}
